package main

import (
	"strconv"

	"github.com/alexshd/yardcore"
	"github.com/spf13/cobra"
)

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Rendering settings for every quality tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(yardcore.AllTiers))
			for _, tier := range yardcore.AllTiers {
				s := yardcore.SettingsFor(tier)
				rows = append(rows, []string{
					s.Tier.String(),
					strconv.FormatFloat(s.ParticleMultiplier, 'f', 2, 64),
					onOff(s.ShadowsEnabled),
					strconv.Itoa(s.ShadowMapSize),
					onOff(s.PostProcessingEnabled),
					string(s.ShaderComplexity),
					onOff(s.Antialias),
					strconv.FormatFloat(s.DPRCap, 'f', 1, 64),
				})
			}

			return renderTable(cmd.OutOrStdout(),
				[]string{"tier", "particles", "shadows", "shadow map", "post", "shader", "aa", "dpr cap"}, rows)
		},
	}
}
