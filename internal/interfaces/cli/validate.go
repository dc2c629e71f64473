package cli

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/turtacn/BullsEye-Radar/internal/application/dataset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
)

// NewValidateCmd validates a portfolio CSV file without touching a server.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.csv>",
		Short: "Validate a portfolio CSV file",
		Long:  "validate parses a CSV file, checks its schema and phase values, and\nprints a summary of what a chart built from it would contain.\nUse \"-\" to read from stdin.",
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

			summary := summarize(records)
			if cliCtx.OutputFormat == "json" {
				return printJSON(cliCtx.Out, summary)
			}

			tw := tabwriter.NewWriter(cliCtx.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Rows:\t%d\n", summary.Rows)
			fmt.Fprintf(tw, "Phase column:\t%s\n", summary.PhaseMode)
			fmt.Fprintf(tw, "Categories:\t%d\n", summary.Categories)
			fmt.Fprintf(tw, "Companies:\t%d\n", summary.Companies)
			fmt.Fprintf(tw, "Mechanisms:\t%d\n", summary.MOAs)
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(cliCtx.Out, "CSV is valid")
			return nil
		},
	}
}

// csvSummary is what validate reports about a parsed file.
type csvSummary struct {
	Rows       int    `json:"rows"`
	PhaseMode  string `json:"phase_mode"`
	Categories int    `json:"categories"`
	Companies  int    `json:"companies"`
	MOAs       int    `json:"moas"`
}

func summarize(records []asset.Record) csvSummary {
	categories := map[string]struct{}{}
	companies := map[string]struct{}{}
	moas := map[string]struct{}{}
	mode := "numeric (Current_Phase)"
	for _, rec := range records {
		if rec.Phase != "" {
			mode = "categorical (Phase_Status)"
		}
		categories[rec.Category] = struct{}{}
		companies[rec.Company] = struct{}{}
		moas[rec.MOA] = struct{}{}
	}
	return csvSummary{
		Rows:       len(records),
		PhaseMode:  mode,
		Categories: len(categories),
		Companies:  len(companies),
		MOAs:       len(moas),
	}
}

//Personal.AI order the ending
