package debugs

import (
	"context"

	"github.com/reusee/lexi/lexer"
	"github.com/reusee/lexi/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Query evaluates a starlark expression over tokens and returns its string form.
type Query func(ctx context.Context, expr string, tokens []lexer.Token) (string, error)

func (Module) Query(
	logger logs.Logger,
) Query {
	return func(ctx context.Context, expr string, tokens []lexer.Token) (string, error) {
		logger.DebugContext(ctx, "query",
			"expr", expr,
			"tokens", len(tokens),
		)
		thread := &starlark.Thread{
			Name: "query",
		}
		value, err := starlark.EvalOptions(
			&syntax.FileOptions{},
			thread,
			"query",
			expr,
			globals(tokens),
		)
		if err != nil {
			return "", err
		}
		if s, ok := value.(starlark.String); ok {
			return s.GoString(), nil
		}
		return value.String(), nil
	}
}
