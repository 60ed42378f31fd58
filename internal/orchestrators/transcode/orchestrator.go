// Package transcode reads a creature export and renders it as a statblock
package transcode

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/hitdice"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/textfmt"
	creaturefile "github.com/KirkDiggler/rpg-statblock/internal/repositories/creature_file"
	"github.com/KirkDiggler/rpg-statblock/internal/services/conversion"
	"github.com/KirkDiggler/rpg-statblock/internal/services/statblock"
)

// Service converts creature files to statblock markup
type Service interface {
	Transcode(ctx context.Context, input *TranscodeInput) (*TranscodeOutput, error)
}

// Config holds the dependencies for the transcode orchestrator
type Config struct {
	Repository creaturefile.Repository
	Decoder    conversion.CreatureDecoder
	Renderer   statblock.Renderer
	Logger     *slog.Logger

	// Roller is only used for RollHitPoints; defaults to rpg-toolkit dice
	Roller hitdice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Decoder == nil {
		vb.RequiredField("Decoder")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}

	return vb.Build()
}

type orchestrator struct {
	repo     creaturefile.Repository
	decoder  conversion.CreatureDecoder
	renderer statblock.Renderer
	roller   hitdice.Roller
	logger   *slog.Logger
}

// NewOrchestrator creates a new transcode orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = hitdice.NewToolkitRoller()
	}

	return &orchestrator{
		repo:     cfg.Repository,
		decoder:  cfg.Decoder,
		renderer: cfg.Renderer,
		roller:   roller,
		logger:   cfg.Logger,
	}, nil
}

// Transcode reads, decodes and renders the creature at input.Path. Nothing is
// returned unless every step succeeds.
func (o *orchestrator) Transcode(ctx context.Context, input *TranscodeInput) (*TranscodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument("path is required")
	}

	file, err := o.repo.Get(ctx, creaturefile.GetInput{Path: input.Path})
	if err != nil {
		return nil, err
	}
	o.logger.Debug("read creature file", "path", file.Path, "bytes", len(file.Data))

	creature, err := o.decoder.Decode(file.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to convert %s", file.Path)
	}
	o.logger.Debug("decoded creature", "name", creature.Name, "source", creature.Source)

	if input.RollHitPoints {
		expr, err := hitdice.Parse(textfmt.StripParens(creature.HP.Notes))
		if err != nil {
			return nil, errors.Wrapf(err, "cannot roll hit points for %s", creature.Name)
		}

		hp, err := expr.Roll(o.roller)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("rolled hit points",
			"hit_dice", expr.String(),
			"average", expr.Average(),
			"listed", creature.HP.Value,
			"rolled", hp)
		creature.HP.Value = uint64(hp)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled("transcode canceled")
	}

	markup, err := o.renderer.Render(creature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render statblock")
	}

	return &TranscodeOutput{
		Markup:   markup,
		Creature: creature,
	}, nil
}
