package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewDatasetsCmd groups the remote dataset-management subcommands.
func NewDatasetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Manage datasets on the API server",
	}
	cmd.AddCommand(
		newDatasetsUploadCmd(),
		newDatasetsListCmd(),
		newDatasetsGetCmd(),
		newDatasetsReplaceCmd(),
		newDatasetsDeleteCmd(),
		newDatasetsExportCmd(),
	)
	return cmd
}

func newDatasetsUploadCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Upload a CSV file as a new dataset",
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
			if name == "" {
				name = args[0]
			}

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			d, err := cliCtx.Client.CreateDataset(ctx, name, body)
			if err != nil {
				return err
			}
			if cliCtx.OutputFormat == "json" {
				return printJSON(cliCtx.Out, d)
			}
			fmt.Fprintf(cliCtx.Out, "Created dataset %s (version %d, %d assets)\n", d.ID, d.Version, len(d.Assets))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "dataset name (default: the file name)")
	return cmd
}

func newDatasetsListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			headers, err := cliCtx.Client.ListDatasets(ctx, page, pageSize)
			if err != nil {
				return err
			}
			if cliCtx.OutputFormat == "json" {
				return printJSON(cliCtx.Out, headers)
			}

			tw := tabwriter.NewWriter(cliCtx.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tVERSION\tCREATED")
			for _, h := range headers {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", h.ID, h.Name, h.Version, h.CreatedAt)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "page size")
	return cmd
}

func newDatasetsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <dataset-id>",
		Short: "Show one dataset with its asset rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			d, err := cliCtx.Client.GetDataset(ctx, args[0])
			if err != nil {
				return err
			}
			if cliCtx.OutputFormat == "json" {
				return printJSON(cliCtx.Out, d)
			}

			fmt.Fprintf(cliCtx.Out, "%s (version %d)\n", d.Name, d.Version)
			tw := tabwriter.NewWriter(cliCtx.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ASSET\tCOMPANY\tPHASE\tMOA\tCATEGORY")
			for _, a := range d.Assets {
				phase := a.Phase
				if phase == "" {
					phase = fmt.Sprintf("%.0f%%", a.Progress)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.Name, a.Company, phase, a.MOA, a.Category)
			}
			return tw.Flush()
		},
	}
}

func newDatasetsReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <dataset-id> <file.csv>",
		Short: "Replace a dataset's rows with a new CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			body, err := readFileOrStdin(args[1])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			d, err := cliCtx.Client.ReplaceDataset(ctx, args[0], body)
			if err != nil {
				return err
			}
			fmt.Fprintf(cliCtx.Out, "Replaced dataset %s (now version %d, %d assets)\n", d.ID, d.Version, len(d.Assets))
			return nil
		},
	}
}

func newDatasetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <dataset-id>",
		Short: "Delete a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			if err := cliCtx.Client.DeleteDataset(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cliCtx.Out, "Deleted dataset %s\n", args[0])
			return nil
		},
	}
}

func newDatasetsExportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export <dataset-id>",
		Short: "Download a dataset as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			body, err := cliCtx.Client.ExportDataset(ctx, args[0])
			if err != nil {
				return err
			}
			if outFile == "" {
				_, err = cliCtx.Out.Write(body)
				return err
			}
			if err := os.WriteFile(outFile, body, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Fprintf(cliCtx.Out, "Exported dataset %s to %s\n", args[0], outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "f", "", "write the CSV to a file instead of stdout")
	return cmd
}

// commandContext derives the per-command timeout context.
func commandContext(cmd *cobra.Command, cliCtx *CLIContext) (context.Context, context.CancelFunc) {
	if cliCtx.Timeout > 0 {
		return context.WithTimeout(cmd.Context(), cliCtx.Timeout)
	}
	return context.WithCancel(cmd.Context())
}

//Personal.AI order the ending
