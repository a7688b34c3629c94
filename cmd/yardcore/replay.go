package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alexshd/yardcore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newReplayCmd(a *app) *cobra.Command {
	var textfile string

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a frame-rate scenario through the tier controller",
		Long: `Replay a YAML frame-rate scenario through a fresh quality tier
controller and print the tier after each phase. Use "-" to read stdin.

Scenario format:

  name: sustained-degradation
  start_tier: ultra
  phases:
    - fps: 40
      count: 10
    - fps: 25
      count: 60

With --metrics-textfile, the controller's metrics are written in Prometheus
text format (node_exporter textfile collector).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := readScenario(cmd, args[0])
			if err != nil {
				return err
			}

			controller := yardcore.NewPerformanceController(a.logger.With("scenario", scenario.Name))
			reg := prometheus.NewRegistry()
			reg.MustRegister(yardcore.NewPerformanceCollector(controller))

			results := scenario.Run(controller)

			rows := make([][]string, 0, len(results))
			for i, r := range results {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					strconv.FormatFloat(r.Phase.FPS, 'f', 1, 64),
					strconv.Itoa(r.Phase.Count),
					strconv.FormatFloat(r.AvgFPS, 'f', 2, 64),
					r.Tier.String(),
					strconv.Itoa(r.TierChanges),
				})
			}
			if err := renderTable(cmd.OutOrStdout(),
				[]string{"phase", "fps", "samples", "avg fps", "tier", "changes"}, rows); err != nil {
				return err
			}

			if textfile != "" {
				if err := prometheus.WriteToTextfile(textfile, reg); err != nil {
					return fmt.Errorf("write metrics textfile: %w", err)
				}
				a.logger.Info("wrote metrics", "path", textfile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&textfile, "metrics-textfile", "", "write controller metrics to this file")

	return cmd
}

func readScenario(cmd *cobra.Command, path string) (yardcore.Scenario, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return yardcore.Scenario{}, fmt.Errorf("open scenario: %w", err)
		}
		defer f.Close()
		r = f
	}

	scenario, err := yardcore.LoadScenario(r)
	if err != nil {
		return yardcore.Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}
