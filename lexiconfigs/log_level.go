package lexiconfigs

import (
	"log/slog"

	"github.com/reusee/lexi/configs"
)

// LogLevel is the configured log_level, empty if unset.
type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
) LogLevel {
	return LogLevel(configs.First[string](loader, "log_level"))
}

func (l LogLevel) Slog() (level slog.Level, ok bool) {
	if l == "" {
		return
	}
	if err := level.UnmarshalText([]byte(l)); err != nil {
		return
	}
	return level, true
}
