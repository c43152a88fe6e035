package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer scans an in-memory source. The cursor only moves forward;
// disambiguation uses a single rune of lookahead.
type Tokenizer struct {
	source string
	cursor int
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		source: source,
	}
}

// Tokenize scans the whole input. On failure no tokens are returned.
func Tokenize(source string) ([]Token, error) {
	var tokens []Token
	for token, err := range NewTokenizer(source).All {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// All yields tokens until EOF, which is not yielded.
// After an error nothing more is yielded.
func (t *Tokenizer) All(yield func(Token, error) bool) {
	for {
		token, err := t.Next()
		if err != nil {
			yield(token, err)
			return
		}
		if token.Kind == TokenEOF {
			return
		}
		if !yield(token, nil) {
			return
		}
	}
}

// Next scans one token. At end of input it returns a TokenEOF token.
func (t *Tokenizer) Next() (Token, error) {
	t.skipWhitespaceAndComments()

	r, ok := t.readRune()
	if !ok {
		return Token{Kind: TokenEOF}, nil
	}

	switch {
	case isDigit(r):
		return t.scanNumber()
	case isAlpha(r) || r == '_':
		return t.scanIdentifier()
	}

	switch r {
	case '+':
		return Token{Kind: TokenPlus}, nil
	case '-':
		return Token{Kind: TokenMinus}, nil
	case '*':
		return Token{Kind: TokenMultiply}, nil
	case '/':
		return Token{Kind: TokenDivide}, nil
	case '=':
		return t.withEquals(TokenEqual, TokenAssign), nil
	case '<':
		return t.withEquals(TokenLessThanOrEqual, TokenLessThan), nil
	case '>':
		return t.withEquals(TokenGreaterThanOrEqual, TokenGreaterThan), nil
	case '!':
		if t.consumeIf('=') {
			return Token{Kind: TokenNotEqual}, nil
		}
		return Token{}, expectedEquals()
	case '(':
		return Token{Kind: TokenLeftParen}, nil
	case ')':
		return Token{Kind: TokenRightParen}, nil
	case '{':
		return Token{Kind: TokenLeftBrace}, nil
	case '}':
		return Token{Kind: TokenRightBrace}, nil
	case ';':
		return Token{Kind: TokenSemicolon}, nil
	case ',':
		return Token{Kind: TokenComma}, nil
	}

	return Token{}, unexpectedChar(r)
}

func (t *Tokenizer) peekRune() (rune, int, bool) {
	if t.cursor >= len(t.source) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(t.source[t.cursor:])
	return r, size, true
}

func (t *Tokenizer) readRune() (rune, bool) {
	r, size, ok := t.peekRune()
	if !ok {
		return 0, false
	}
	t.cursor += size
	return r, true
}

func (t *Tokenizer) consumeIf(want rune) bool {
	r, size, ok := t.peekRune()
	if !ok || r != want {
		return false
	}
	t.cursor += size
	return true
}

// withEquals returns long if the next rune is '=' (consuming it), short otherwise
func (t *Tokenizer) withEquals(long, short TokenKind) Token {
	if t.consumeIf('=') {
		return Token{Kind: long}
	}
	return Token{Kind: short}
}

// a comment runs from '#' to the next newline or the next '#', whichever comes first
func (t *Tokenizer) skipWhitespaceAndComments() {
	for {
		r, size, ok := t.peekRune()
		if !ok {
			return
		}
		switch {
		case unicode.IsSpace(r):
			t.cursor += size
		case r == '#':
			t.cursor += size
			t.skipComment()
		default:
			return
		}
	}
}

func (t *Tokenizer) skipComment() {
	for {
		r, ok := t.readRune()
		if !ok || r == '\n' || r == '#' {
			return
		}
	}
}

// scanNumber is called with the first digit already consumed
func (t *Tokenizer) scanNumber() (Token, error) {
	start := t.cursor - 1
	for t.cursor < len(t.source) && isDigit(rune(t.source[t.cursor])) {
		t.cursor++
	}
	digits := t.source[start:t.cursor]
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Token{}, notAnInteger(digits)
	}
	return Token{
		Kind: TokenIntLiteral,
		Int:  n,
	}, nil
}

// scanIdentifier is called with the first rune already consumed.
// Whitespace and ';' end the name and are left for the next scan; any other
// non-name rune is an error, even one that would start a valid token.
func (t *Tokenizer) scanIdentifier() (Token, error) {
	start := t.cursor - 1
	for {
		r, size, ok := t.peekRune()
		if !ok {
			break
		}
		if isAlpha(r) || isDigit(r) || r == '_' {
			t.cursor += size
			continue
		}
		if unicode.IsSpace(r) || r == ';' {
			break
		}
		return Token{}, unexpectedCharInName(r)
	}

	name := t.source[start:t.cursor]
	if kind, ok := keywords[name]; ok {
		return Token{Kind: kind}, nil
	}
	return Token{
		Kind: TokenIdentifier,
		Name: strings.Clone(name),
	}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
