package lexiconfigs

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lexi/configs"
	"github.com/reusee/lexi/logs"
	"github.com/reusee/lexi/modes"
)

func writeConfig(t *testing.T, content string) configs.Loader {
	path := filepath.Join(t.TempDir(), "lexi.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return configs.NewLoader([]string{path}, schema)
}

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(),
	).Call(func(
		maxInputBytes MaxInputBytes,
		logLevel LogLevel,
	) {
		if maxInputBytes != math.MaxInt64 {
			t.Fatalf("got %d", maxInputBytes)
		}
		if logLevel != "" {
			t.Fatalf("got %q", logLevel)
		}
		if _, ok := logLevel.Slog(); ok {
			t.Fatal("should not be set")
		}
	})
}

func TestFromConfigFile(t *testing.T) {
	loader := writeConfig(t, `
max_input_bytes: 100
log_level: "warn"
`)
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(),
	).Fork(
		func() configs.Loader {
			return loader
		},
	).Call(func(
		maxInputBytes MaxInputBytes,
		logLevel LogLevel,
	) {
		if maxInputBytes != 100 {
			t.Fatalf("got %d", maxInputBytes)
		}
		level, ok := logLevel.Slog()
		if !ok || level != slog.LevelWarn {
			t.Fatalf("got %v %v", level, ok)
		}
	})
}

func TestFindConfigFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".lexi.cue"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	paths := findConfigFiles([]string{dir, filepath.Join(dir, "missing")})
	if len(paths) != 1 || paths[0] != filepath.Join(dir, ".lexi.cue") {
		t.Fatalf("got %v", paths)
	}
}
