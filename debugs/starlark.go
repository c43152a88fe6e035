package debugs

import (
	"github.com/reusee/lexi/lexer"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func tokenToStarlark(token lexer.Token) starlark.Value {
	d := starlark.NewDict(4)
	d.SetKey(starlark.String("Kind"), starlark.String(token.Kind.String()))
	d.SetKey(starlark.String("Int"), starlark.MakeInt64(token.Int))
	d.SetKey(starlark.String("Name"), starlark.String(token.Name))
	d.SetKey(starlark.String("Text"), starlark.String(token.String()))
	return d
}

func tokensToStarlark(tokens []lexer.Token) *starlark.List {
	elems := make([]starlark.Value, len(tokens))
	for i, token := range tokens {
		elems[i] = tokenToStarlark(token)
	}
	return starlark.NewList(elems)
}

// globals binds tokens and a count(kind) helper
func globals(tokens []lexer.Token) starlark.StringDict {
	return starlark.StringDict{
		"tokens": tokensToStarlark(tokens),
		"count": starlarkutil.MakeFunc("count", func(kind string) int {
			n := 0
			for _, token := range tokens {
				if token.Kind.String() == kind {
					n++
				}
			}
			return n
		}),
	}
}
