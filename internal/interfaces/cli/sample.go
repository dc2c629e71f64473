package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/BullsEye-Radar/internal/application/dataset"
)

// NewSampleCmd writes the CSV import template.
func NewSampleCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the CSV import template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			body := dataset.SampleCSV()
			if outFile == "" {
				_, err = cliCtx.Out.Write(body)
				return err
			}

			if err := os.WriteFile(outFile, body, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Fprintf(cliCtx.Out, "Template written to %s\n", outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "f", "", "write the template to a file instead of stdout")
	return cmd
}

//Personal.AI order the ending
