package lexer

import (
	"fmt"
	"strconv"
)

type Token struct {
	Kind TokenKind
	// Int is set for TokenIntLiteral
	Int int64
	// Name is set for TokenIdentifier
	Name string
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota

	// keywords
	TokenIf
	TokenElse

	// literals
	TokenIntLiteral
	TokenIdentifier

	// operators
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenAssign
	TokenEqual
	TokenNotEqual
	TokenLessThan
	TokenGreaterThan
	TokenLessThanOrEqual
	TokenGreaterThanOrEqual

	// delimiters
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenSemicolon
	TokenComma
)

var kindNames = [...]string{
	TokenEOF:                "EOF",
	TokenIf:                 "If",
	TokenElse:               "Else",
	TokenIntLiteral:         "IntLiteral",
	TokenIdentifier:         "Identifier",
	TokenPlus:               "Plus",
	TokenMinus:              "Minus",
	TokenMultiply:           "Multiply",
	TokenDivide:             "Divide",
	TokenAssign:             "Assign",
	TokenEqual:              "Equal",
	TokenNotEqual:           "NotEqual",
	TokenLessThan:           "LessThan",
	TokenGreaterThan:        "GreaterThan",
	TokenLessThanOrEqual:    "LessThanOrEqual",
	TokenGreaterThanOrEqual: "GreaterThanOrEqual",
	TokenLeftParen:          "LeftParen",
	TokenRightParen:         "RightParen",
	TokenLeftBrace:          "LeftBrace",
	TokenRightBrace:         "RightBrace",
	TokenSemicolon:          "Semicolon",
	TokenComma:              "Comma",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

var keywords = map[string]TokenKind{
	"if":   TokenIf,
	"else": TokenElse,
}

// String renders the token in debug form, e.g. IntLiteral(42) or Identifier("x").
func (t Token) String() string {
	switch t.Kind {
	case TokenIntLiteral:
		return "IntLiteral(" + strconv.FormatInt(t.Int, 10) + ")"
	case TokenIdentifier:
		return "Identifier(" + strconv.Quote(t.Name) + ")"
	}
	return t.Kind.String()
}
