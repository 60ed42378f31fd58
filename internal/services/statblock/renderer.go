// Package statblock renders creatures as fenced statblock markup
package statblock

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/entities"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

//go:generate mockgen -destination=mock/mock_renderer.go -package=statblockmock github.com/KirkDiggler/rpg-statblock/internal/services/statblock Renderer

const (
	// FenceOpen starts every statblock
	FenceOpen = "```statblock"
	// FenceClose ends every statblock
	FenceClose = "```"

	// Columns is the fixed column layout requested from the renderer
	Columns = 2
)

// Renderer turns a creature into statblock markup
type Renderer interface {
	Render(creature *entities.Creature) (string, error)
}

// Config holds the dependencies for the renderer
type Config struct {
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Logger == nil {
		vb.RequiredField("Logger")
	}

	return vb.Build()
}

type renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a new statblock renderer
func NewRenderer(cfg *Config) (Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &renderer{logger: cfg.Logger}, nil
}

// Render emits every present section between the fences. The whole block is
// built in memory so a caller never writes partial output.
func (r *renderer) Render(creature *entities.Creature) (string, error) {
	if creature == nil {
		return "", errors.InvalidArgument("creature is required")
	}

	typeLine, ok := ParseTypeLine(creature.Type)
	if !ok {
		r.logger.Warn("type line not recognized, omitting size, type, subtype and alignment",
			"name", creature.Name,
			"type", creature.Type)
	}

	block := &view{creature: creature, typeLine: typeLine}
	w := &lineWriter{}

	w.line(FenceOpen)
	for _, s := range sections {
		if s.present(block) {
			s.render(w, block)
		}
	}
	w.line(FenceClose)

	return w.String(), nil
}

// view is what sections read from: the creature plus derived values
type view struct {
	creature *entities.Creature
	typeLine *TypeLine
}

type lineWriter struct {
	strings.Builder
}

func (w *lineWriter) line(s string) {
	w.WriteString(s)
	w.WriteByte('\n')
}

func (w *lineWriter) field(key, value string) {
	w.line(key + ": " + value)
}

func (w *lineWriter) quoted(key, value string) {
	w.line(fmt.Sprintf(`%s: "%s"`, key, value))
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
