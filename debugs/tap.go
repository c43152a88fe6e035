package debugs

import (
	"context"

	"github.com/reusee/lexi/lexer"
	"github.com/reusee/lexi/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with tokens bound.
type Tap func(ctx context.Context, tokens []lexer.Token)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, tokens []lexer.Token) {
		logger.InfoContext(ctx, "tap",
			"tokens", len(tokens),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end")
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals(tokens))
	}
}
