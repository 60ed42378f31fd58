// Package logger builds the diagnostic slog logger. The CLI points it at
// stderr so stdout carries nothing but the statblock.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/KirkDiggler/rpg-statblock/internal/config"
)

// Setup creates the logger for cfg writing to w and installs it as the
// slog default
func Setup(w io.Writer, cfg *config.Config) *slog.Logger {
	l := New(w, cfg)
	slog.SetDefault(l)
	return l
}

// New creates a logger writing to w. A nil cfg uses the defaults.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg == nil {
		cfg = &config.Config{LogLevel: "info", LogStyle: config.StyleAlways}
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(w, cfg.LogStyle))

	return slog.New(NewHandler(w, &HandlerOptions{
		Level:    cfg.Level(),
		Renderer: r,
	}))
}

func colorProfile(w io.Writer, style string) termenv.Profile {
	switch style {
	case config.StyleNever:
		return termenv.Ascii
	case config.StyleAuto:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return termenv.ANSI
		}
		return termenv.Ascii
	default:
		return termenv.ANSI
	}
}
