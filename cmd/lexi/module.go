package main

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/lexi/cmds"
	"github.com/reusee/lexi/debugs"
	"github.com/reusee/lexi/lexiconfigs"
	"github.com/reusee/lexi/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs lexiconfigs.Module
	Debugs  debugs.Module
}

// Stdout receives the token listing.
type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

type Options struct {
	// Query replaces the token listing with the result of a starlark expression
	Query string
	// Tap opens a starlark REPL after tokenizing
	Tap bool
}

var (
	queryFlag = cmds.Var[string]("-query", "print the result of a starlark expression over tokens instead of the tokens")
	tapFlag   = cmds.Switch("-tap", "open a starlark REPL with tokens bound")
)

func (Module) Options() Options {
	return Options{
		Query: *queryFlag,
		Tap:   *tapFlag,
	}
}
