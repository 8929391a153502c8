// Package datamatrix generates Data Matrix ECC-200 symbols.
package datamatrix

import (
	"errors"
	"fmt"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/charset"
	"github.com/ericlevine/barcodegen/datamatrix/encoder"
)

// DefaultEncoding is the character set of messages unless configured.
const DefaultEncoding = "ISO-8859-1"

// Config configures a Data Matrix generator.
type Config struct {
	barcodegen.BaseConfig
	Shape            encoder.SymbolShapeHint
	MinSize, MaxSize *encoder.Size
	// Encoding names the character set messages are converted to.
	Encoding string
	// ECIEnabled prefixes an ECI designator when Encoding is not the
	// default.
	ECIEnabled       bool
	StructuredAppend *encoder.StructuredAppend
}

// DefaultConfig returns the Data Matrix defaults: 1pt modules, a quiet
// zone of one module and no caption.
func DefaultConfig() Config {
	base := barcodegen.NewBaseConfig(barcodegen.PointsToMM(1), 1)
	base.HumanReadable.Placement = barcodegen.PlacementNone
	return Config{BaseConfig: base, Encoding: DefaultEncoding}
}

// ConfigFromOptions applies opts to the defaults and validates them.
func ConfigFromOptions(opts *barcodegen.Options) (Config, error) {
	cfg := DefaultConfig()
	cfg.Apply(opts)
	if opts != nil {
		dm := opts.DataMatrix
		shape, err := encoder.ParseShape(dm.Shape)
		if err != nil {
			return cfg, err
		}
		cfg.Shape = shape
		if dm.MinSize != "" {
			size, err := encoder.ParseSize(dm.MinSize)
			if err != nil {
				return cfg, err
			}
			cfg.MinSize = &size
		}
		if dm.MaxSize != "" {
			size, err := encoder.ParseSize(dm.MaxSize)
			if err != nil {
				return cfg, err
			}
			cfg.MaxSize = &size
		}
		if dm.Encoding != "" {
			cfg.Encoding = dm.Encoding
		}
		cfg.ECIEnabled = dm.ECIEnabled
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	if c.MinSize != nil && c.MaxSize != nil &&
		(c.MinSize.Width > c.MaxSize.Width || c.MinSize.Height > c.MaxSize.Height) {
		return fmt.Errorf("minimum size %s exceeds maximum size %s: %w", c.MinSize, c.MaxSize, barcodegen.ErrConfiguration)
	}
	if _, err := charset.Lookup(c.Encoding); err != nil {
		return fmt.Errorf("%v: %w", err, barcodegen.ErrConfiguration)
	}
	return nil
}

// Generator generates Data Matrix symbols.
type Generator struct {
	cfg     Config
	charset *charset.Charset
}

// NewGenerator returns a Data Matrix generator.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cs, err := charset.Lookup(cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, barcodegen.ErrConfiguration)
	}
	return &Generator{cfg: cfg, charset: cs}, nil
}

func (g *Generator) Symbology() barcodegen.Symbology { return barcodegen.SymbologyDataMatrix }

// Encode converts msg to bytes and encodes it into a symbol.
func (g *Generator) Encode(msg string) (*encoder.Symbol, error) {
	data, err := g.charset.Encode(msg)
	if err != nil {
		if errors.Is(err, charset.ErrUnencodable) {
			return nil, fmt.Errorf("%v: %w", err, barcodegen.ErrInvalidMessage)
		}
		return nil, err
	}
	opts := &encoder.Options{
		Shape:            g.cfg.Shape,
		MinSize:          g.cfg.MinSize,
		MaxSize:          g.cfg.MaxSize,
		StructuredAppend: g.cfg.StructuredAppend,
	}
	if g.cfg.ECIEnabled && g.charset.ECI != nil && g.charset.ECI != charset.ECIISO8859_1 {
		opts.ECI = g.charset.ECI
	}
	return encoder.Encode(data, opts)
}

// Codewords returns the data and error correction codewords of msg.
func (g *Generator) Codewords(msg string) ([]int, error) {
	sym, err := g.Encode(msg)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(sym.Codewords))
	for i, cw := range sym.Codewords {
		out[i] = int(cw)
	}
	return out, nil
}

func (g *Generator) CalcDimensions(msg string) (barcodegen.Dimension, error) {
	sym, err := g.Encode(msg)
	if err != nil {
		return barcodegen.Dimension{}, err
	}
	return g.dimension(sym.Info), nil
}

func (g *Generator) dimension(info *encoder.SymbolInfo) barcodegen.Dimension {
	mw := g.cfg.ModuleWidth
	h := float64(info.SymbolHeight()) * mw
	if g.cfg.HumanReadable.Placement != barcodegen.PlacementNone {
		h += g.cfg.HumanReadableHeight()
	}
	return g.cfg.Dimension(float64(info.SymbolWidth())*mw, h)
}

// Generate validates msg and sends one row of single-module bars per
// symbol row to h.
func (g *Generator) Generate(h barcodegen.TwoDimHandler, msg string) error {
	sym, err := g.Encode(msg)
	if err != nil {
		return err
	}
	emit(h, msg, sym)
	return nil
}

func emit(h barcodegen.TwoDimHandler, msg string, sym *encoder.Symbol) {
	m := sym.Matrix
	h.StartBarcode(msg, msg)
	for y := 0; y < m.Height(); y++ {
		h.StartRow()
		for x := 0; x < m.Width(); x++ {
			h.AddBar(m.Get(x, y), 1)
		}
		h.EndRow()
	}
	h.EndBarcode()
}

func (g *Generator) GenerateBarcode(canvas barcodegen.Canvas, msg string) error {
	sym, err := g.Encode(msg)
	if err != nil {
		return err
	}
	cfg := g.cfg.BaseConfig
	layout := barcodegen.CanvasLayout{
		Config:    &cfg,
		Dimension: g.dimension(sym.Info),
	}
	if cfg.HumanReadable.Placement == barcodegen.PlacementBottom {
		// The caption goes under the last module row instead of at Height.
		layout.TextOffset = float64(sym.Info.SymbolHeight())*cfg.ModuleWidth + cfg.HumanReadableHeight() - cfg.Height
	}
	emit(barcodegen.NewTwoDimCanvasHandler(canvas, layout, cfg.ModuleWidth, nil), msg, sym)
	return nil
}
