package cmds

import (
	"errors"
	"fmt"
	"os"
)

// ErrHelp is returned by Execute after usage has been printed
var ErrHelp = errors.New("help requested")

var GlobalExecutor = NewExecutor(os.Stderr)

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against GlobalExecutor and returns the positional
// arguments. It exits the process on error.
func Execute(args []string) []string {
	positional, err := GlobalExecutor.Execute(args)
	if errors.Is(err, ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	return positional
}
