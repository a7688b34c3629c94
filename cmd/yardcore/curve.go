package main

import (
	"fmt"
	"strconv"

	"github.com/alexshd/yardcore"
	"github.com/spf13/cobra"
)

func newCurveCmd(a *app) *cobra.Command {
	var from, to, step float64

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Multiplier over a range of facility counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := facilityRange(from, to, step)
			if err != nil {
				return err
			}

			curve := yardcore.MultiplierCurve(counts, a.params(cmd))

			rows := make([][]string, 0, len(curve))
			for _, r := range curve {
				rows = append(rows, []string{
					strconv.FormatFloat(r.N, 'f', 0, 64),
					strconv.FormatFloat(r.Connections, 'f', 0, 64),
					strconv.FormatFloat(r.Realization, 'f', 4, 64),
					strconv.FormatFloat(r.Multiplier, 'f', 4, 64),
				})
			}

			return renderTable(cmd.OutOrStdout(),
				[]string{"facilities", "connections", "realization", "multiplier"}, rows)
		},
	}

	cmd.Flags().Float64Var(&from, "from", 1, "first facility count")
	cmd.Flags().Float64Var(&to, "to", 100, "last facility count")
	cmd.Flags().Float64Var(&step, "step", 10, "facility count increment")
	addParamFlags(cmd)

	return cmd
}

// maxCurvePoints bounds the table so a tiny step cannot hang the CLI.
const maxCurvePoints = 10000

// facilityRange returns from, from+step, ... up to to, always ending at to.
// Points are computed as from + i*step so fractional steps do not drift.
func facilityRange(from, to, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %g", step)
	}
	if to < from {
		return nil, fmt.Errorf("--to (%g) is below --from (%g)", to, from)
	}
	if (to-from)/step > maxCurvePoints {
		return nil, fmt.Errorf("range %g..%g by %g exceeds %d points", from, to, step, maxCurvePoints)
	}

	var counts []float64
	for i := 0; ; i++ {
		n := from + float64(i)*step
		if n >= to || to-n < step*1e-9 {
			break
		}
		counts = append(counts, n)
	}
	return append(counts, to), nil
}
