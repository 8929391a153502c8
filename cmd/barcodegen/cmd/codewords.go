package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericlevine/barcodegen/internal/config"
)

// codeworder is implemented by the PDF417 and DataMatrix generators.
type codeworder interface {
	Codewords(msg string) ([]int, error)
}

func newCodewordsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "codewords <message>",
		Short: "Print the data and error correction codewords of a 2D symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			cw, ok := g.(codeworder)
			if !ok {
				return fmt.Errorf("%s has no codewords", g.Symbology())
			}
			msg := args[0]
			codewords, err := cw.Codewords(msg)
			if err != nil {
				return fmt.Errorf("%q: %w", msg, err)
			}
			a.logger.Debug("encoded codewords", "symbology", g.Symbology(), "count", len(codewords))

			if a.outputFormat(cmd) == config.OutputYAML {
				return writeYAML(cmd, map[string]any{
					"symbology": g.Symbology().String(),
					"message":   msg,
					"codewords": codewords,
				})
			}
			s := make([]string, len(codewords))
			for i, c := range codewords {
				s[i] = strconv.Itoa(c)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(s, " "))
			return err
		},
	}
}
