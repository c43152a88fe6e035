package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/reusee/e5"
	"github.com/reusee/lexi/debugs"
	"github.com/reusee/lexi/lexer"
	"github.com/reusee/lexi/lexiconfigs"
	"github.com/reusee/lexi/logs"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var (
	ErrInputTooLarge = errors.New("input too large")
	ErrNotText       = errors.New("not valid UTF-8 text")
)

// Run tokenizes the file at path and writes the result to Stdout.
// Nothing is written if tokenizing fails.
type Run func(ctx context.Context, path string) error

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxInputBytes lexiconfigs.MaxInputBytes,
	stdout Stdout,
	options Options,
	query debugs.Query,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, path string) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		src, err := readSource(path, int64(maxInputBytes))
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "read source",
			"path", path,
			"bytes", len(src),
		)

		tokens, err := lexer.Tokenize(src)
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "tokenized",
			"path", path,
			"tokens", len(tokens),
		)

		w := bufio.NewWriter(stdout)
		if options.Query != "" {
			result, err := query(ctx, options.Query, tokens)
			if err != nil {
				return wrap(err)
			}
			fmt.Fprintln(w, result)
		} else {
			for _, token := range tokens {
				fmt.Fprintln(w, token)
			}
		}
		if err := w.Flush(); err != nil {
			return wrap(err)
		}

		if options.Tap {
			tap(ctx, tokens)
		}

		return nil
	}
}

func readSource(path string, limit int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", wrap(err)
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return "", wrap(err)
	}
	if int64(len(content)) == limit {
		var probe [1]byte
		if n, _ := f.Read(probe[:]); n > 0 {
			return "", fmt.Errorf("%s: %w: limit is %d bytes", path, ErrInputTooLarge, limit)
		}
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%s: %w", path, ErrNotText)
	}
	return string(content), nil
}

// diagnostic renders a Run error for stderr
func diagnostic(err error) string {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return "Lexing Error: " + lexErr.Error()
	}
	return err.Error()
}
