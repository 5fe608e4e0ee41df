package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build every interpolation in the document and report configuration errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load()
			if err != nil {
				return err
			}
			entries, err := doc.BuildAll(1)
			out := cmd.OutOrStdout()
			ok := color.New(color.FgGreen).SprintFunc()
			for _, e := range entries {
				cfg := e.Node.Config()
				fmt.Fprintf(out, "%s %-24s %d segments, %s output, left=%s right=%s\n",
					ok("ok"), e.Name, len(cfg.InputRange)-1, cfg.OutputType, cfg.ExtrapolateLeft, cfg.ExtrapolateRight)
			}
			if err != nil {
				return fmt.Errorf("%d of %d interpolations are invalid:\n%w",
					len(doc.Interpolations)-len(entries), len(doc.Interpolations), err)
			}
			opts.logger.Debug("document valid", "version", doc.Version, "interpolations", len(entries))
			return nil
		},
	}
}
