// Package cmd implements the barcodegen command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/internal/config"

	// Register every symbology.
	_ "github.com/ericlevine/barcodegen/datamatrix"
	_ "github.com/ericlevine/barcodegen/oned"
	_ "github.com/ericlevine/barcodegen/pdf417"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand returns the barcodegen command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "barcodegen",
		Short: "Generate the geometry of printable barcodes",
		Long: `barcodegen encodes messages as UPC-A, EAN-13, EAN-8, Code128,
Interleaved 2 of 5, ITF-14, PDF417 and DataMatrix symbols and reports their
physical size, their logic handler event stream and their codewords.

Settings are read from barcodegen.yaml (searched in ., $XDG_CONFIG_HOME/barcodegen
and /etc/barcodegen), from BARCODEGEN_ environment variables and from flags.

Examples:
  barcodegen dimensions -s ean-13 590123412345
  barcodegen trace -s code128 --output yaml "Hello"
  barcodegen codewords -s pdf417 --pdf417-columns 3 "PDF417"`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is barcodegen.yaml in the search path)")
	pf.BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringP("output", "o", config.OutputAuto, "output format (auto, text, yaml)")
	pf.StringP("symbology", "s", barcodegen.SymbologyCode128.String(), "symbology to generate")
	pf.String("module-width", "", "module width, e.g. 0.21mm or 1pt")
	pf.Float64("height", 0, "symbol height in millimetres")
	pf.String("human-readable", "", "caption placement (bottom, top, none)")
	pf.String("checksum-mode", "", "checksum mode (auto, add, check, ignore)")
	pf.String("codesets", "", "Code128 codesets to allow, a subset of ABC")
	pf.Int("pdf417-columns", 0, "fixed number of PDF417 data columns")
	pf.Int("pdf417-ecl", 0, "PDF417 error correction level (0-8)")
	pf.String("datamatrix-shape", "", "DataMatrix shape (none, square, rectangle)")

	for key, flag := range map[string]string{
		"verbose":                       "verbose",
		"log-level":                     "log-level",
		"output":                        "output",
		"symbology":                     "symbology",
		"module-width":                  "module-width",
		"height":                        "height",
		"human-readable.placement":      "human-readable",
		"checksum-mode":                 "checksum-mode",
		"codesets":                      "codesets",
		"pdf417.columns":                "pdf417-columns",
		"pdf417.error-correction-level": "pdf417-ecl",
		"datamatrix.shape":              "datamatrix-shape",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newDimensionsCommand(a),
		newTraceCommand(a),
		newCodewordsCommand(a),
		newSymbologiesCommand(a),
	)
	return root
}

// Execute runs the command tree.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader(a.v).LoadWithFile(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	} else {
		_ = level.UnmarshalText([]byte(cfg.LogLevel))
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug("configuration loaded",
		"file", a.v.ConfigFileUsed(),
		"symbology", cfg.Symbology,
		"output", cfg.Output)
	return nil
}

// newLogger writes text to terminals and JSON everywhere else.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if isTerminal(w) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// outputFormat resolves "auto" against the command's standard output.
func (a *app) outputFormat(cmd *cobra.Command) string {
	if a.cfg.Output != config.OutputAuto {
		return a.cfg.Output
	}
	if isTerminal(cmd.OutOrStdout()) {
		return config.OutputText
	}
	return config.OutputYAML
}

// generator builds the configured generator.
func (a *app) generator() (barcodegen.Generator, error) {
	sym, err := barcodegen.ParseSymbology(a.cfg.Symbology)
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	g, err := barcodegen.New(sym, opts)
	if err != nil {
		return nil, fmt.Errorf("configuring %s: %w", sym, err)
	}
	return g, nil
}
