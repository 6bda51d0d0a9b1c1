// Package logging routes structured logs to a rotating file so they never
// interfere with the terminal interface
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
)

// Setup installs a JSON slog handler writing to cfg.System.LogPath as the
// default logger. The returned closer flushes and closes the log file.
func Setup(cfg *config.Config) io.Closer {
	w := &lumberjack.Logger{
		Filename:   cfg.System.LogPath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
	}

	slog.SetDefault(New(w, cfg.Log.SlogLevel()))

	return w
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
