package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/BullsEye-Radar/internal/application/chart"
	"github.com/turtacn/BullsEye-Radar/internal/application/dataset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// NewRenderCmd renders a chart spec from a local CSV file, no server needed.
func NewRenderCmd() *cobra.Command {
	var (
		groupBy     string
		maxSegments int
		radiusOrder string
		outFile     string
	)

	cmd := &cobra.Command{
		Use:   "render <file.csv>",
		Short: "Render a bulls-eye chart spec from a local CSV file",
		Long:  "render parses a CSV file and writes the resulting chart spec as JSON,\nwithout contacting a server.  Use \"-\" to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			body, err := readFileOrStdin(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			records, err := dataset.ParseCSV(bytes.NewReader(body))
			if err != nil {
				return err
			}
			d, err := asset.NewDataset(args[0], args[0], records)
			if err != nil {
				return err
			}

			opts, err := buildOptions(groupBy, maxSegments, radiusOrder)
			if err != nil {
				return err
			}

			spec, err := chart.Assemble(d, opts)
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

func buildOptions(groupBy string, maxSegments int, radiusOrder string) (chart.BuildOptions, error) {
	var opts chart.BuildOptions

	g, err := asset.ParseGroupBy(groupBy)
	if err != nil {
		return opts, err
	}
	opts.GroupBy = g
	opts.MaxSegments = maxSegments

	if radiusOrder != "" {
		order := layout.RadiusOrder(radiusOrder)
		if !order.Valid() {
			return opts, errors.New(errors.ErrCodeLayoutConfigInvalid, "unsupported radius order").
				WithDetail("got " + radiusOrder + "; expected innermost_first|outermost_first")
		}
		opts.RadiusOrder = order
	}
	return opts, nil
}

//Personal.AI order the ending
