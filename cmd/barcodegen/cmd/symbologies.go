package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/internal/config"
)

type symbologyReport struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

func newSymbologiesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symbologies",
		Short: "List the supported symbologies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reports []symbologyReport
			for _, s := range barcodegen.Registered() {
				kind := "linear"
				if s.Is2D() {
					kind = "2d"
				}
				reports = append(reports, symbologyReport{Name: s.String(), Kind: kind})
			}
			if a.outputFormat(cmd) == config.OutputYAML {
				return writeYAML(cmd, reports)
			}
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", r.Name, r.Kind)
			}
			return nil
		},
	}
}
