package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/urbancode/chatbot-relay/internal/config"
)

// New creates a zerolog logger from config. Unknown levels fall back to info.
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Redact hides most of an email or phone number outside debug logging.
func Redact(s string, debug bool) string {
	if debug {
		return s
	}
	r := []rune(s)
	if len(r) <= 6 {
		return "***"
	}
	return string(r[:3]) + "***" + string(r[len(r)-2:])
}
