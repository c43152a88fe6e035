package logs

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/reusee/lexi/cmds"
)

var (
	level       = new(slog.LevelVar)
	levelByFlag atomic.Bool
)

func init() {
	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		name := strings.ToLower(l.String())
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
			levelByFlag.Store(true)
		}).Desc("set log level to "+name))
	}
}

// SetDefaultLevel sets the level unless a -log-* flag already did.
func SetDefaultLevel(l slog.Level) {
	if levelByFlag.Load() {
		return
	}
	level.Set(l)
}

func Level() slog.Level {
	return level.Level()
}
