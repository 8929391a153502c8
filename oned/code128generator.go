package oned

import (
	"github.com/ericlevine/barcodegen"
)

// Code128Config configures a Code128 generator.
type Code128Config struct {
	barcodegen.BaseConfig
	Codesets Code128Codesets
}

// DefaultCode128Config returns the Code128 defaults: 0.21mm modules, a quiet
// zone of 10 modules and all codesets.
func DefaultCode128Config() Code128Config {
	base := barcodegen.NewBaseConfig(0.21, 10)
	base.FontDescender = true
	return Code128Config{BaseConfig: base, Codesets: CodesetAll}
}

// Code128ConfigFromOptions applies opts to the defaults and validates them.
func Code128ConfigFromOptions(opts *barcodegen.Options) (Code128Config, error) {
	cfg := DefaultCode128Config()
	cfg.Apply(opts)
	if opts != nil && opts.Codesets != "" {
		cs, err := ParseCode128Codesets(opts.Codesets)
		if err != nil {
			return cfg, err
		}
		cfg.Codesets = cs
	}
	return cfg, cfg.Validate()
}

// Code128Generator generates Code128 symbols.
type Code128Generator struct {
	cfg     Code128Config
	encoder *Code128Encoder
}

// NewCode128Generator returns a Code128 generator.
func NewCode128Generator(cfg Code128Config) (*Code128Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Code128Generator{cfg: cfg, encoder: NewCode128Encoder(cfg.Codesets)}, nil
}

func (g *Code128Generator) Symbology() barcodegen.Symbology { return barcodegen.SymbologyCode128 }

// Config returns a copy of the generator configuration.
func (g *Code128Generator) Config() Code128Config { return g.cfg }

// Encode returns the symbol characters of msg.
func (g *Code128Generator) Encode(msg string) ([]Code128Symbol, error) {
	return g.encoder.Encode(msg)
}

func (g *Code128Generator) CalcDimensions(msg string) (barcodegen.Dimension, error) {
	symbols, err := g.encoder.Encode(msg)
	if err != nil {
		return barcodegen.Dimension{}, err
	}
	return g.dimension(symbols), nil
}

func (g *Code128Generator) dimension(symbols []Code128Symbol) barcodegen.Dimension {
	w := float64(Code128Width(len(symbols))) * g.cfg.ModuleWidth
	return g.cfg.Dimension(w, g.cfg.Height)
}

// Generate validates msg and sends its events to h.
func (g *Code128Generator) Generate(h barcodegen.ClassicHandler, msg string) error {
	symbols, err := g.encoder.Encode(msg)
	if err != nil {
		return err
	}
	EmitCode128(h, msg, symbols)
	return nil
}

func (g *Code128Generator) GenerateBarcode(canvas barcodegen.Canvas, msg string) error {
	symbols, err := g.encoder.Encode(msg)
	if err != nil {
		return err
	}
	cfg := g.cfg.BaseConfig
	layout := barcodegen.CanvasLayout{Config: &cfg, Dimension: g.dimension(symbols)}
	EmitCode128(barcodegen.NewClassicCanvasHandler(canvas, layout), msg, symbols)
	return nil
}
