// Package cli implements the radar command-line client: local CSV
// validation and chart rendering, plus remote dataset management against a
// running API server.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/client"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type cliContextKey struct{}

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	ServerAddr   string
	Timeout      time.Duration
}

// CLIContext carries the initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Client       *client.Client
	OutputFormat string
	Timeout      time.Duration
	Out          io.Writer
}

// NewRootCommand creates the root command with global flags and every
// subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "radar",
		Short:   "BullsEye-Radar CLI — pharmaceutical pipeline bulls-eye charts",
		Long:    "radar validates portfolio CSV files, renders bulls-eye chart specs\nlocally, and manages datasets on a BullsEye-Radar API server.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "table", "output format (table, json)")
	pf.StringVar(&opts.ServerAddr, "server", "", "API server address (default: http://localhost:8080)")
	pf.DurationVar(&opts.Timeout, "timeout", 30*time.Second, "operation timeout")

	cmd.AddCommand(
		NewValidateCmd(),
		NewRenderCmd(),
		NewSampleCmd(),
		NewDatasetsCmd(),
		NewChartCmd(),
	)

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := newCLILogger(opts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	addr := opts.ServerAddr
	if addr == "" {
		addr = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	apiClient, err := client.NewClient(addr)
	if err != nil {
		return fmt.Errorf("client initialization failed: %w", err)
	}

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Client:       apiClient,
		OutputFormat: opts.OutputFormat,
		Timeout:      opts.Timeout,
		Out:          cmd.OutOrStdout(),
	}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// GetCLIContext extracts the CLIContext installed by persistentPreRun.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	cliCtx, ok := cmd.Context().Value(cliContextKey{}).(*CLIContext)
	if !ok {
		return nil, fmt.Errorf("CLI context not initialized")
	}
	return cliCtx, nil
}

// loadConfig prefers an explicit file, falling back to environment variables
// plus defaults.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadFromEnv()
}

// newCLILogger writes console logs to stderr so stdout stays parseable.
func newCLILogger(opts *RootOptions) (logging.Logger, error) {
	return logging.NewLogger(logging.LogConfig{
		Level:            strings.ToLower(opts.LogLevel),
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readFileOrStdin reads a file path, treating "-" as stdin.
func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

//Personal.AI order the ending
