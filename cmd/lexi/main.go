package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/lexi/cmds"
	"github.com/reusee/lexi/lexiconfigs"
	"github.com/reusee/lexi/logs"
	"github.com/reusee/lexi/modes"
)

func main() {
	args := cmds.Execute(os.Args[1:])
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no path given")
		os.Exit(-1)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logLevel lexiconfigs.LogLevel,
		run Run,
	) {
		if level, ok := logLevel.Slog(); ok {
			logs.SetDefaultLevel(level)
		}
		if err := run(context.Background(), args[0]); err != nil {
			fmt.Fprintln(os.Stderr, diagnostic(err))
			os.Exit(-1)
		}
	})
}
