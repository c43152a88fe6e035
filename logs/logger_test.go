package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("tokenized", "tokens", 3)
		logger.With("path", "a.src").Info("read")
	})
	out := buf.String()
	if !strings.Contains(out, "tokens=3") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "path=a.src") {
		t.Fatalf("got %s", out)
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %q", got)
	}
}

func TestSetDefaultLevel(t *testing.T) {
	defer level.Set(slog.LevelInfo)
	SetDefaultLevel(slog.LevelWarn)
	if Level() != slog.LevelWarn {
		t.Fatalf("got %v", Level())
	}
}

func TestWrapSpan(t *testing.T) {
	errFoo := errors.New("foo")
	if err := WrapSpan(context.Background(), errFoo); err != errFoo {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, errFoo)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span: abc") {
		t.Fatalf("got %v", err)
	}
}
