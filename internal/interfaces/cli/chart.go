package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/BullsEye-Radar/pkg/client"
)

// NewChartCmd fetches a chart spec from the API server.
func NewChartCmd() *cobra.Command {
	var (
		groupBy     string
		maxSegments int
		radiusOrder string
		outFile     string
	)

	cmd := &cobra.Command{
		Use:   "chart <dataset-id>",
		Short: "Fetch the chart spec for a dataset from the API server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			spec, err := cliCtx.Client.GetChart(ctx, args[0], client.ChartOptions{
				GroupBy:     groupBy,
				MaxSegments: maxSegments,
				RadiusOrder: radiusOrder,
			})
			if err != nil {
				return err
			}

			out := cliCtx.Out
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outFile, err)
				}
				defer f.Close() //nolint:errcheck
				out = f
			}
			if err := printJSON(out, spec); err != nil {
				return err
			}

			if spec.Unplaced > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d assets exceed the segment cap and were not placed\n", spec.Unplaced)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&groupBy, "group-by", "", "grouping column (category, company, moa, none)")
	cmd.Flags().IntVar(&maxSegments, "max-segments", 0, "maximum number of angular segments")
	cmd.Flags().StringVar(&radiusOrder, "radius-order", "", "phase ring order (innermost_first, outermost_first)")
	cmd.Flags().StringVarP(&outFile, "out", "f", "", "write the chart spec to a file instead of stdout")

	return cmd
}

//Personal.AI order the ending
