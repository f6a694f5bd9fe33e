package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bookhive/bookhive-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it as
// the slog default. A nil w writes to stderr.
//
// Format "json" is for production; "text" adds source locations for local
// runs. Unknown levels fall back to info.
func NewLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With(slog.String("app", "bookhive"))
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
