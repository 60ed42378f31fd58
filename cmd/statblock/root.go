package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-statblock/internal/config"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	"github.com/KirkDiggler/rpg-statblock/internal/logger"
	"github.com/KirkDiggler/rpg-statblock/internal/orchestrators/transcode"
	creaturefile "github.com/KirkDiggler/rpg-statblock/internal/repositories/creature_file"
	"github.com/KirkDiggler/rpg-statblock/internal/services/conversion"
	"github.com/KirkDiggler/rpg-statblock/internal/services/statblock"
)

type rootOptions struct {
	rollHitPoints bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "statblock <creature.json>",
		Short: "Convert a creature export to statblock markup",
		Long: `Reads one creature exported as JSON and prints it as a fenced
statblock block for a notes renderer.

Diagnostics go to stderr and are controlled by:
  MSTSB_LOG_LEVEL  trace, debug, info, warn, error or off (default info)
  MSTSB_LOG_STYLE  always, never or auto (default always)`,
		Version:       version,
		Args:          exactlyOnePath,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.rollHitPoints, "roll-hp", false,
		"replace the listed hit points with a roll of the hit dice")

	return cmd
}

func exactlyOnePath(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.InvalidArgumentf("expected exactly one creature file, got %d arguments", len(args))
	}
	return nil
}

func runConvert(cmd *cobra.Command, path string, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cmd.ErrOrStderr(), cfg)

	repo, err := creaturefile.NewFileRepository(nil)
	if err != nil {
		return err
	}
	renderer, err := statblock.NewRenderer(&statblock.Config{Logger: log})
	if err != nil {
		return err
	}
	svc, err := transcode.NewOrchestrator(&transcode.Config{
		Repository: repo,
		Decoder:    conversion.NewCreatureDecoder(),
		Renderer:   renderer,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	out, err := svc.Transcode(cmd.Context(), &transcode.TranscodeInput{
		Path:          path,
		RollHitPoints: opts.rollHitPoints,
	})
	if err != nil {
		return err
	}

	if _, err := io.WriteString(cmd.OutOrStdout(), out.Markup); err != nil {
		return errors.WrapWithCode(err, errors.CodeIO, "failed to write statblock")
	}
	return nil
}
