package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lexi/lexer"
	"github.com/reusee/lexi/logs"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), []lexer.Token{
			{Kind: lexer.TokenIntLiteral, Int: 1},
		})
	})
}
