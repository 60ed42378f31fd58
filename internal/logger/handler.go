package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-statblock/internal/config"
)

const timeFormat = time.RFC3339

// HandlerOptions configures a Handler
type HandlerOptions struct {
	Level    slog.Leveler
	Renderer *lipgloss.Renderer
}

// Handler writes one line per record:
//
//	2024-01-02T15:04:05Z [WARN ] message key=value
//
// The level label is colored through the lipgloss renderer, so a renderer
// with the Ascii profile produces plain text.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	styles levelStyles
	prefix string
	attrs  string
}

type levelStyles struct {
	trace, debug, info, warn, err lipgloss.Style
}

// NewHandler creates a handler writing to w
func NewHandler(w io.Writer, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}

	return &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
		styles: levelStyles{
			trace: r.NewStyle().Foreground(lipgloss.Color("6")),
			debug: r.NewStyle().Foreground(lipgloss.Color("4")),
			info:  r.NewStyle().Foreground(lipgloss.Color("2")),
			warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
			err:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
	}
}

// Enabled reports whether records at level are written
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes r
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(timeFormat))
		b.WriteByte(' ')
	}

	label, style := h.label(r.Level)
	b.WriteByte('[')
	b.WriteString(style.Render(label))
	b.WriteString(strings.Repeat(" ", 5-len(label)))
	b.WriteString("] ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a handler that writes attrs on every record
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}

	h2 := *h
	h2.attrs = b.String()
	return &h2
}

// WithGroup returns a handler that qualifies later keys with name
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func (h *Handler) label(level slog.Level) (string, lipgloss.Style) {
	switch {
	case level >= slog.LevelError:
		return "ERROR", h.styles.err
	case level >= slog.LevelWarn:
		return "WARN", h.styles.warn
	case level >= slog.LevelInfo:
		return "INFO", h.styles.info
	case level > config.LevelTrace:
		return "DEBUG", h.styles.debug
	default:
		return "TRACE", h.styles.trace
	}
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, group, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(quote(formatValue(a.Value)))
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(timeFormat)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	default:
		return v.String()
	}
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}
	return s
}
