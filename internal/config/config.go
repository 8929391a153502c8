// Package config loads generator settings from a YAML file, BARCODEGEN_
// environment variables and command-line flags.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericlevine/barcodegen"
)

// Output formats.
const (
	OutputAuto = "auto"
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config is the complete CLI configuration. The barcode keys mirror
// barcodegen.Options; unset keys keep the symbology defaults.
type Config struct {
	LogLevel  string `mapstructure:"log-level" yaml:"log-level"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose"`
	Output    string `mapstructure:"output" yaml:"output"`
	Symbology string `mapstructure:"symbology" yaml:"symbology"`

	// Height is in millimetres.
	Height            float64       `mapstructure:"height" yaml:"height,omitempty"`
	ModuleWidth       string        `mapstructure:"module-width" yaml:"module-width,omitempty"`
	QuietZone         QuietZone     `mapstructure:"quiet-zone" yaml:"quiet-zone,omitempty"`
	VerticalQuietZone string        `mapstructure:"vertical-quiet-zone" yaml:"vertical-quiet-zone,omitempty"`
	HumanReadable     HumanReadable `mapstructure:"human-readable" yaml:"human-readable,omitempty"`
	ChecksumMode      string        `mapstructure:"checksum-mode" yaml:"checksum-mode,omitempty"`
	Codesets          string        `mapstructure:"codesets" yaml:"codesets,omitempty"`
	WideFactor        float64       `mapstructure:"wide-factor" yaml:"wide-factor,omitempty"`
	PadOdd            bool          `mapstructure:"pad-odd" yaml:"pad-odd,omitempty"`
	BearerBar         BearerBar     `mapstructure:"bearer-bar" yaml:"bearer-bar,omitempty"`
	PDF417            PDF417        `mapstructure:"pdf417" yaml:"pdf417,omitempty"`
	DataMatrix        DataMatrix    `mapstructure:"datamatrix" yaml:"datamatrix,omitempty"`
}

// QuietZone is a length such as "10mw" or "2.5mm". A bare number takes
// Unit, which is "mm" unless set.
type QuietZone struct {
	Value   string `mapstructure:"value" yaml:"value,omitempty"`
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Unit    string `mapstructure:"unit" yaml:"unit,omitempty"`
}

type HumanReadable struct {
	Placement string `mapstructure:"placement" yaml:"placement,omitempty"`
	FontSize  string `mapstructure:"font-size" yaml:"font-size,omitempty"`
	FontName  string `mapstructure:"font-name" yaml:"font-name,omitempty"`
	Pattern   string `mapstructure:"pattern" yaml:"pattern,omitempty"`
}

// BearerBar configures ITF-14. Enabled closes the bearer bars into a box.
type BearerBar struct {
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Width   string `mapstructure:"width" yaml:"width,omitempty"`
}

type PDF417 struct {
	Columns              int     `mapstructure:"columns" yaml:"columns,omitempty"`
	MinCols              int     `mapstructure:"min-cols" yaml:"min-cols,omitempty"`
	MaxCols              int     `mapstructure:"max-cols" yaml:"max-cols,omitempty"`
	MinRows              int     `mapstructure:"min-rows" yaml:"min-rows,omitempty"`
	MaxRows              int     `mapstructure:"max-rows" yaml:"max-rows,omitempty"`
	ErrorCorrectionLevel *int    `mapstructure:"error-correction-level" yaml:"error-correction-level,omitempty"`
	Encoding             string  `mapstructure:"encoding" yaml:"encoding,omitempty"`
	ECIEnabled           bool    `mapstructure:"eci-enabled" yaml:"eci-enabled,omitempty"`
	WidthToHeightRatio   float64 `mapstructure:"width-to-height-ratio" yaml:"width-to-height-ratio,omitempty"`
	RowHeight            string  `mapstructure:"row-height" yaml:"row-height,omitempty"`
	Compaction           string  `mapstructure:"compaction" yaml:"compaction,omitempty"`
	Patterns             string  `mapstructure:"patterns" yaml:"patterns,omitempty"`
}

type DataMatrix struct {
	Shape      string `mapstructure:"shape" yaml:"shape,omitempty"`
	MinSize    string `mapstructure:"min-size" yaml:"min-size,omitempty"`
	MaxSize    string `mapstructure:"max-size" yaml:"max-size,omitempty"`
	Encoding   string `mapstructure:"encoding" yaml:"encoding,omitempty"`
	ECIEnabled bool   `mapstructure:"eci-enabled" yaml:"eci-enabled,omitempty"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Output:    OutputAuto,
		Symbology: barcodegen.SymbologyCode128.String(),
	}
}

// Validate checks the CLI settings and every barcode key.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	switch c.Output {
	case OutputAuto, OutputText, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q: must be one of auto, text, yaml", c.Output)
	}
	if _, err := barcodegen.ParseSymbology(c.Symbology); err != nil {
		return err
	}
	_, err := c.Options()
	return err
}

// Options converts the barcode keys into generator overrides.
func (c *Config) Options() (*barcodegen.Options, error) {
	opts := &barcodegen.Options{
		Height:     c.Height,
		Codesets:   c.Codesets,
		WideFactor: c.WideFactor,
		PadOdd:     c.PadOdd,
		PDF417: barcodegen.PDF417Options{
			Columns:              c.PDF417.Columns,
			MinCols:              c.PDF417.MinCols,
			MaxCols:              c.PDF417.MaxCols,
			MinRows:              c.PDF417.MinRows,
			MaxRows:              c.PDF417.MaxRows,
			ErrorCorrectionLevel: c.PDF417.ErrorCorrectionLevel,
			Encoding:             c.PDF417.Encoding,
			ECIEnabled:           c.PDF417.ECIEnabled,
			WidthToHeightRatio:   c.PDF417.WidthToHeightRatio,
			Compaction:           c.PDF417.Compaction,
			PatternsFile:         c.PDF417.Patterns,
		},
		DataMatrix: barcodegen.DataMatrixOptions{
			Shape:      c.DataMatrix.Shape,
			MinSize:    c.DataMatrix.MinSize,
			MaxSize:    c.DataMatrix.MaxSize,
			Encoding:   c.DataMatrix.Encoding,
			ECIEnabled: c.DataMatrix.ECIEnabled,
		},
	}
	if c.Height < 0 {
		return nil, fmt.Errorf("negative height %g: %w", c.Height, barcodegen.ErrConfiguration)
	}

	var err error
	if opts.ModuleWidth, err = absoluteLength("module-width", c.ModuleWidth); err != nil {
		return nil, err
	}
	if opts.QuietZone, err = c.QuietZone.length(); err != nil {
		return nil, err
	}
	opts.QuietZoneEnabled = c.QuietZone.Enabled
	if opts.VerticalQuietZone, err = optionalLength(c.VerticalQuietZone); err != nil {
		return nil, err
	}

	hr := c.HumanReadable
	if hr.Placement != "" {
		p, err := barcodegen.ParsePlacement(hr.Placement)
		if err != nil {
			return nil, err
		}
		opts.HumanReadable.Placement = &p
	}
	if opts.HumanReadable.FontSize, err = absoluteLength("human-readable.font-size", hr.FontSize); err != nil {
		return nil, err
	}
	opts.HumanReadable.FontName = hr.FontName
	opts.HumanReadable.Pattern = hr.Pattern

	if opts.ChecksumMode, err = barcodegen.ParseChecksumMode(c.ChecksumMode); err != nil {
		return nil, err
	}

	opts.BearerBar.Box = c.BearerBar.Enabled
	if opts.BearerBar.Width, err = optionalLength(c.BearerBar.Width); err != nil {
		return nil, err
	}
	if opts.PDF417.RowHeight, err = optionalLength(c.PDF417.RowHeight); err != nil {
		return nil, err
	}
	return opts, nil
}

func (q QuietZone) length() (*barcodegen.Length, error) {
	s := strings.TrimSpace(q.Value)
	if s == "" {
		return nil, nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil && q.Unit != "" {
		switch strings.ToLower(q.Unit) {
		case "mw", "module-width", "module-widths":
			s += string(barcodegen.UnitModuleWidth)
		case "mm":
			s += string(barcodegen.UnitMM)
		default:
			return nil, fmt.Errorf("unknown quiet zone unit %q: %w", q.Unit, barcodegen.ErrConfiguration)
		}
	}
	return optionalLength(s)
}

func optionalLength(s string) (*barcodegen.Length, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	l, err := barcodegen.ParseLength(s)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// absoluteLength resolves a length that cannot be given in module widths.
func absoluteLength(key, s string) (float64, error) {
	l, err := optionalLength(s)
	if err != nil || l == nil {
		return 0, err
	}
	if l.Unit == barcodegen.UnitModuleWidth {
		return 0, fmt.Errorf("%s cannot be given in module widths: %w", key, barcodegen.ErrConfiguration)
	}
	return l.ToMM(0), nil
}
