package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/internal/config"
)

// dimensionReport is the YAML form of a barcodegen.Dimension, in
// millimetres.
type dimensionReport struct {
	Symbology       string  `yaml:"symbology"`
	Message         string  `yaml:"message"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	WidthPlusQuiet  float64 `yaml:"width-plus-quiet"`
	HeightPlusQuiet float64 `yaml:"height-plus-quiet"`
	XOffset         float64 `yaml:"x-offset"`
	YOffset         float64 `yaml:"y-offset"`
}

func newDimensionsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions <message>...",
		Short: "Print the physical size of each message's symbol",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			format := a.outputFormat(cmd)
			out := cmd.OutOrStdout()
			var reports []dimensionReport
			for _, msg := range args {
				dim, err := g.CalcDimensions(msg)
				if err != nil {
					return fmt.Errorf("%q: %w", msg, err)
				}
				a.logger.Debug("calculated dimensions", "symbology", g.Symbology(), "message", msg, "dimension", dim.String())
				if format == config.OutputText {
					fmt.Fprintf(out, "%s\t%s\n", msg, dim)
					continue
				}
				reports = append(reports, newDimensionReport(g.Symbology(), msg, dim))
			}
			if format == config.OutputYAML {
				return writeYAML(cmd, reports)
			}
			return nil
		},
	}
}

func newDimensionReport(sym barcodegen.Symbology, msg string, dim barcodegen.Dimension) dimensionReport {
	return dimensionReport{
		Symbology:       sym.String(),
		Message:         msg,
		Width:           dim.Width(),
		Height:          dim.Height(),
		WidthPlusQuiet:  dim.WidthPlusQuiet(),
		HeightPlusQuiet: dim.HeightPlusQuiet(),
		XOffset:         dim.XOffset(),
		YOffset:         dim.YOffset(),
	}
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
