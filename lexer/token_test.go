package lexer

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		token Token
		str   string
	}{
		{intLit(42), "IntLiteral(42)"},
		{intLit(-1), "IntLiteral(-1)"},
		{ident("x"), `Identifier("x")`},
		{kind(TokenPlus), "Plus"},
		{kind(TokenIf), "If"},
		{kind(TokenGreaterThanOrEqual), "GreaterThanOrEqual"},
		{kind(TokenComma), "Comma"},
		{kind(TokenEOF), "EOF"},
	}
	for _, test := range tests {
		if got := test.token.String(); got != test.str {
			t.Errorf("expected %q, got %q", test.str, got)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	for k := TokenEOF; k <= TokenComma; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if got := TokenKind(200).String(); got != "TokenKind(200)" {
		t.Fatalf("got %q", got)
	}
}
