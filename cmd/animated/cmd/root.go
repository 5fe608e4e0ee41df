// Package cmd implements the animated CLI commands.
//
// The root command loads an animated.yaml document and dispatches to
// validate, eval, preview and version.
package cmd

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-drift/animated/internal/logging"
	"github.com/go-drift/animated/pkg/config"
	drifterrors "github.com/go-drift/animated/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	dir     string
	file    string
	verbose bool
	logger  *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "animated",
		Short: "Validate and preview native interpolation nodes",
		Long: `animated loads interpolation node definitions from animated.yaml and
evaluates them the way the native frame loop does, one tick at a time.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
			drifterrors.SetHandler(&drifterrors.LogHandler{Logger: opts.logger, Verbose: opts.verbose})
		},
	}
	root.PersistentFlags().StringVar(&opts.dir, "dir", ".", "Directory containing "+config.FileName)
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Document path (overrides --dir)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newValidateCommand(opts),
		newEvalCommand(opts),
		newPreviewCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func (o *rootOptions) load() (*config.Document, error) {
	if o.file != "" {
		return config.Load(o.file)
	}
	return config.LoadOptional(o.dir)
}
