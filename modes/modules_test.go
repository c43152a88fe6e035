package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModes(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
	})

	dscope.New(ForTest()).Call(func(
		mode Mode,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})

	if got := Mode(0).String(); got != "unknown" {
		t.Fatalf("got %q", got)
	}
}
