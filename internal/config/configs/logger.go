package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger is the LOG_* section. Every API request is logged at info, so
// LOG_LEVEL=warn keeps only failures and panics.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// Source adds the calling file:line to each record.
	Source bool `env:"SOURCE" envDefault:"false"`
}

// SlogLevel maps Level onto slog, accepting the short forms "warning" and
// "err". Anything unrecognised logs at info.
func (c Logger) SlogLevel() slog.Level {
	lvl := strings.ToLower(c.Level)
	switch lvl {
	case "warning":
		lvl = "warn"
	case "err":
		lvl = "error"
	}
	var out slog.Level
	if err := out.UnmarshalText([]byte(lvl)); err != nil {
		return slog.LevelInfo
	}
	return out
}

// SlogFormat is "json" when asked for (any case) and "text" otherwise.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}

// New builds the service logger writing to w.
func (c Logger) New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.Source}
	if c.SlogFormat() == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
