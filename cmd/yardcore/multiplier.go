package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/alexshd/yardcore"
	"github.com/spf13/cobra"
)

type multiplierOutput struct {
	yardcore.NetworkEffectResult
	Baseline       *float64 `json:"baseline,omitempty"`
	ScaledBaseline *float64 `json:"scaledBaseline,omitempty"`
}

func newMultiplierCmd(a *app) *cobra.Command {
	var (
		facilities float64
		baseline   float64
	)

	cmd := &cobra.Command{
		Use:   "multiplier",
		Short: "Network-effect multiplier for a facility count",
		Long: `Compute M(n) = 1 + β·(C(n)/C(10))·(1 - e^(-n/τ)) and print every
intermediate quantity as JSON.

Pass --baseline to also scale an economic estimate by the multiplier.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := a.params(cmd)
			res := yardcore.MetcalfeInspiredMultiplier(facilities, params)

			out := multiplierOutput{NetworkEffectResult: res}
			if cmd.Flags().Changed("baseline") {
				scaled := res.Apply(baseline)
				out.ScaledBaseline = &scaled
				if !math.IsNaN(baseline) && !math.IsInf(baseline, 0) {
					out.Baseline = &baseline
				}
			}

			a.logger.Debug("computed multiplier",
				"facilities", res.N,
				"beta", res.Beta,
				"tau", res.Tau,
				"multiplier", res.Multiplier)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&facilities, "facilities", "n", 0, "number of facilities in the network")
	cmd.Flags().Float64Var(&baseline, "baseline", 0, "baseline estimate to scale by the multiplier")
	addParamFlags(cmd)
	_ = cmd.MarkFlagRequired("facilities")

	return cmd
}

func addParamFlags(cmd *cobra.Command) {
	defaults := yardcore.DefaultNetworkEffectParams()
	cmd.Flags().Float64("beta", defaults.Beta, "connectivity weight β (env YARDCORE_BETA)")
	cmd.Flags().Float64("tau", defaults.Tau, "maturity constant τ (env YARDCORE_TAU)")
}

// params resolves β and τ: flag if set, environment otherwise.
func (a *app) params(cmd *cobra.Command) yardcore.NetworkEffectParams {
	p := yardcore.NetworkEffectParams{Beta: a.cfg.Beta, Tau: a.cfg.Tau}
	if cmd.Flags().Changed("beta") {
		p.Beta, _ = cmd.Flags().GetFloat64("beta")
	}
	if cmd.Flags().Changed("tau") {
		p.Tau, _ = cmd.Flags().GetFloat64("tau")
	}
	return p
}
