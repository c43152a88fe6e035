package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lexi/lexer"
	"github.com/reusee/lexi/logs"
)

func TestQuery(t *testing.T) {
	tokens, err := lexer.Tokenize("if (x >= 10) { x = x - 1; }")
	if err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		new(logs.Module),
	).Call(func(
		query Query,
	) {
		tests := []struct {
			expr string
			want string
		}{
			{"len(tokens)", "14"},
			{`tokens[0]["Kind"]`, "If"},
			{`tokens[2]["Name"]`, "x"},
			{`tokens[4]["Int"] + 1`, "11"},
			{`tokens[4]["Text"]`, "IntLiteral(10)"},
			{`[t["Name"] for t in tokens if t["Kind"] == "Identifier"]`, `["x", "x", "x"]`},
			{`count("Identifier")`, "3"},
		}
		for _, test := range tests {
			got, err := query(t.Context(), test.expr, tokens)
			if err != nil {
				t.Fatalf("%s: %v", test.expr, err)
			}
			if got != test.want {
				t.Fatalf("%s: expected %q, got %q", test.expr, test.want, got)
			}
		}

		if _, err := query(t.Context(), "tokens[", tokens); err == nil {
			t.Fatal("should error")
		}
		if _, err := query(t.Context(), "undefined_name", tokens); err == nil {
			t.Fatal("should error")
		}
	})
}
