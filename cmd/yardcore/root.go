package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the environment is loaded.
type app struct {
	cfg    config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "yardcore",
		Short: "Network-effect economics and adaptive render quality",
		Long: `yardcore exposes the numeric core of the yard network site.

Available subcommands:
  multiplier - Network-effect multiplier for a facility count
  curve      - Multiplier over a range of facility counts
  tiers      - Rendering settings for every quality tier
  replay     - Replay a frame-rate scenario through the tier controller

Environment:
  YARDCORE_LOG_LEVEL  debug, info, warn or error (default info)
  YARDCORE_BETA       default β (default 0.15)
  YARDCORE_TAU        default τ (default 10)
  NO_COLOR            disable colored logs`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg)
			return nil
		},
	}

	root.AddCommand(
		newMultiplierCmd(a),
		newCurveCmd(a),
		newTiersCmd(),
		newReplayCmd(a),
	)

	return root
}
