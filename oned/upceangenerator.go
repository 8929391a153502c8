package oned

import (
	"github.com/ericlevine/barcodegen"
)

// UPCEANConfig configures a UPC/EAN generator.
type UPCEANConfig struct {
	barcodegen.BaseConfig
	ChecksumMode barcodegen.ChecksumMode
}

// DefaultUPCEANConfig returns the UPC/EAN defaults: 0.33mm modules and a
// quiet zone of 10 modules.
func DefaultUPCEANConfig() UPCEANConfig {
	return UPCEANConfig{BaseConfig: barcodegen.NewBaseConfig(0.33, 10)}
}

// UPCEANConfigFromOptions applies opts to the defaults and validates them.
func UPCEANConfigFromOptions(opts *barcodegen.Options) (UPCEANConfig, error) {
	cfg := DefaultUPCEANConfig()
	cfg.Apply(opts)
	if opts != nil {
		cfg.ChecksumMode = opts.ChecksumMode
	}
	return cfg, cfg.Validate()
}

// UPCEANGenerator generates UPC-A, EAN-13 and EAN-8 symbols.
type UPCEANGenerator struct {
	cfg   UPCEANConfig
	codec *UPCEANCodec
}

// NewUPCEANGenerator returns a generator for variant.
func NewUPCEANGenerator(variant UPCEANVariant, cfg UPCEANConfig) (*UPCEANGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &UPCEANGenerator{cfg: cfg, codec: NewUPCEANCodec(variant, cfg.ChecksumMode)}, nil
}

func (g *UPCEANGenerator) Symbology() barcodegen.Symbology {
	return g.codec.Variant().Symbology()
}

// Config returns a copy of the generator configuration.
func (g *UPCEANGenerator) Config() UPCEANConfig { return g.cfg }

func (g *UPCEANGenerator) CalcDimensions(msg string) (barcodegen.Dimension, error) {
	sym, err := g.codec.Encode(msg)
	if err != nil {
		return barcodegen.Dimension{}, err
	}
	return g.dimension(sym), nil
}

func (g *UPCEANGenerator) dimension(sym UPCEANSymbol) barcodegen.Dimension {
	return g.cfg.Dimension(float64(sym.Width())*g.cfg.ModuleWidth, g.cfg.Height)
}

// Generate validates msg and sends its events to h.
func (g *UPCEANGenerator) Generate(h barcodegen.ClassicHandler, msg string) error {
	sym, err := g.codec.Encode(msg)
	if err != nil {
		return err
	}
	sym.Emit(h)
	return nil
}

func (g *UPCEANGenerator) GenerateBarcode(canvas barcodegen.Canvas, msg string) error {
	sym, err := g.codec.Encode(msg)
	if err != nil {
		return err
	}
	cfg := g.cfg.BaseConfig
	layout := barcodegen.CanvasLayout{Config: &cfg, Dimension: g.dimension(sym)}
	sym.Emit(newUPCEANCanvasHandler(canvas, layout))
	return nil
}
