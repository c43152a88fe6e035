package lexer

import "errors"

var (
	ErrUnexpectedChar = errors.New("unexpected char")
	ErrNotAnInteger   = errors.New("not an integer")
	ErrExpectedEquals = errors.New("expected equals")
)

// LexError is the single error a failed Tokenize call reports.
// Kind is one of ErrUnexpectedChar, ErrNotAnInteger or ErrExpectedEquals.
type LexError struct {
	Kind error
	// Text is the offending character or digit run
	Text string
	msg  string
}

func (e *LexError) Error() string {
	return e.msg
}

func (e *LexError) Unwrap() error {
	return e.Kind
}

func unexpectedChar(r rune) *LexError {
	return &LexError{
		Kind: ErrUnexpectedChar,
		Text: string(r),
		msg:  "Unexpected character: " + string(r),
	}
}

// unexpectedCharInName is reported for a character glued onto an identifier
func unexpectedCharInName(r rune) *LexError {
	return &LexError{
		Kind: ErrUnexpectedChar,
		Text: string(r),
		msg:  "Unexpected char " + string(r),
	}
}

func notAnInteger(digits string) *LexError {
	return &LexError{
		Kind: ErrNotAnInteger,
		Text: digits,
		msg:  "Not an integer " + digits,
	}
}

func expectedEquals() *LexError {
	return &LexError{
		Kind: ErrExpectedEquals,
		Text: "!",
		msg:  "Expected '=' after '!'",
	}
}
