package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/internal/config"
	"github.com/ericlevine/barcodegen/internal/eventlog"
)

func newTraceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <message>",
		Short: "Print the logic handler events of a symbol",
		Long: `trace runs the encoder against a recording handler and prints every event.

The text form is compact: <BC> and </BC> frame the symbol, <SBG:group:submsg>
and </SBG> frame bar groups, B<n> and W<n> are bars and spaces n modules wide
and [value:cluster] is a PDF417 codeword.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			msg := args[0]
			rec := eventlog.NewRecorder()
			switch g := g.(type) {
			case barcodegen.TwoDimGenerator:
				err = g.Generate(rec, msg)
			case barcodegen.ClassicGenerator:
				err = g.Generate(rec, msg)
			default:
				return fmt.Errorf("%s does not emit handler events", g.Symbology())
			}
			if err != nil {
				return fmt.Errorf("%q: %w", msg, err)
			}
			if err := rec.Err(); err != nil {
				return err
			}
			a.logger.Debug("traced symbol", "symbology", g.Symbology(), "events", rec.Len())

			if a.outputFormat(cmd) == config.OutputYAML {
				return writeYAML(cmd, rec.Events())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rec.String())
			return err
		},
	}
}
