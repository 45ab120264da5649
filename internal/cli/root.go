package cli

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/seqdates/internal/config"
	"github.com/roach88/seqdates/internal/render"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// RootOptions holds the flags of the command.
type RootOptions struct {
	ConfigPath string
	Flags      config.Config
}

// flagTargets copies each flag's value into a resolved config when the
// flag was set on the command line.
var flagTargets = map[string]func(dst *config.Config, src config.Config){
	"output-filepath":  func(d *config.Config, s config.Config) { d.OutputPath = s.OutputPath },
	"output-format":    func(d *config.Config, s config.Config) { d.OutputFormat = s.OutputFormat },
	"summarize":        func(d *config.Config, s config.Config) { d.SummarizePrefix = s.SummarizePrefix },
	"summarize-format": func(d *config.Config, s config.Config) { d.SummarizeFormat = s.SummarizeFormat },
	"workbook":         func(d *config.Config, s config.Config) { d.WorkbookPath = s.WorkbookPath },
	"database":         func(d *config.Config, s config.Config) { d.DatabasePath = s.DatabasePath },
	"verbose":          func(d *config.Config, s config.Config) { d.Verbose = s.Verbose },
}

// NewRootCommand creates the seqdates command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	formats := strings.Join(render.Formats(), "|")

	cmd := &cobra.Command{
		Use:   "seqdates [paths...]",
		Short: "Extract collection dates from FASTA sequence labels",
		Long: `Reads sequences from FASTA files and outputs them along with the dates
embedded in their labels.

Each record's label is searched for its first YYYY-MM-DD substring. Records
without one are reported on standard error and counted under "unknown".
With no paths, or the path "-", standard input is read.

Settings may also come from a YAML file (--config) or SEQDATES_* environment
variables; flags given on the command line win.

Example:
  seqdates samples/*.fasta -f csv -o records.csv
  seqdates -s out/summary --summarize-format tsv < sequences.fasta`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			p := &Pipeline{
				Config: cfg,
				Paths:  args,
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: newLogger(cmd, cfg.Verbose),
			}
			_, err = p.Run(cmd.Context())
			return err
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	})

	f := cmd.Flags()
	f.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	f.StringVarP(&opts.Flags.OutputPath, "output-filepath", "o", "", "output file path (default standard output)")
	f.StringVarP(&opts.Flags.OutputFormat, "output-format", "f", render.JSON.String(), "output format ("+formats+")")
	f.StringVarP(&opts.Flags.SummarizePrefix, "summarize", "s", "", "prefix for summary files (<prefix>.yearly, .monthly, .daily)")
	f.StringVar(&opts.Flags.SummarizeFormat, "summarize-format", "", "summary format ("+formats+"; default --output-format)")
	f.StringVar(&opts.Flags.WorkbookPath, "workbook", "", "also write an XLSX workbook with records and summaries")
	f.StringVar(&opts.Flags.DatabasePath, "database", "", "also export the run to a SQLite database")
	f.BoolVarP(&opts.Flags.Verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// resolveConfig layers defaults, config file, environment and the flags
// that were explicitly set, then validates the result.
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	cfg := config.Default()

	if opts.ConfigPath != "" {
		if err := config.LoadFile(&cfg, opts.ConfigPath); err != nil {
			return cfg, WrapExitError(ExitCommandError, "failed to load config", err)
		}
	}
	if err := config.LoadEnv(&cfg); err != nil {
		return cfg, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	for name, apply := range flagTargets {
		if cmd.Flags().Changed(name) {
			apply(&cfg, opts.Flags)
		}
	}

	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, render.ErrUnsupportedFormat) {
			return cfg, WrapExitError(ExitCommandError, "unsupported format", err)
		}
		return cfg, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	return cfg, nil
}

// newLogger configures debug logging on the command's error stream.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
