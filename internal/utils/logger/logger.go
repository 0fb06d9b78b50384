package logger

import (
	"os"
	"strings"

	"marketstore/internal/app/server/config"
	"marketstore/internal/utils/logger/slogpretty"

	"golang.org/x/exp/slog"
)

// New создает логгер для окружения:
//
//	local - цветной вывод, DEBUG
//	dev   - JSON, DEBUG
//	prod  - JSON, INFO
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel как New, но непустой level ("debug", "info", "warn",
// "error") заменяет уровень окружения.
func NewWithLevel(env, level string) *slog.Logger {
	lvl, ok := parseLevel(level)

	switch env {
	case config.EnvLocal:
		if !ok {
			lvl = slog.LevelDebug
		}
		return newPrettySlog(lvl)
	case config.EnvDev:
		if !ok {
			lvl = slog.LevelDebug
		}
	default:
		if !ok {
			lvl = slog.LevelInfo
		}
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func setupPrettySlog() *slog.Logger {
	return newPrettySlog(slog.LevelDebug)
}

func newPrettySlog(lvl slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: lvl},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

func parseLevel(s string) (slog.Level, bool) {
	if strings.TrimSpace(s) == "" {
		return 0, false
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, false
	}
	return lvl, true
}
