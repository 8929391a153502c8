package oned

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
)

// Interleaved2Of5Config configures an Interleaved 2-of-5 generator.
type Interleaved2Of5Config struct {
	barcodegen.BaseConfig
	ChecksumMode barcodegen.ChecksumMode
	// WideFactor is the width of a wide element in module widths.
	WideFactor float64
	PadOdd     bool
}

// DefaultInterleaved2Of5Config returns the Interleaved 2-of-5 defaults:
// 0.21mm modules, a wide factor of 3 and a quiet zone of 10 modules.
func DefaultInterleaved2Of5Config() Interleaved2Of5Config {
	return Interleaved2Of5Config{
		BaseConfig: barcodegen.NewBaseConfig(0.21, 10),
		WideFactor: 3,
	}
}

// Interleaved2Of5ConfigFromOptions applies opts to the defaults and
// validates them.
func Interleaved2Of5ConfigFromOptions(opts *barcodegen.Options) (Interleaved2Of5Config, error) {
	cfg := DefaultInterleaved2Of5Config()
	cfg.Apply(opts)
	if opts != nil {
		cfg.ChecksumMode = opts.ChecksumMode
		cfg.PadOdd = opts.PadOdd
		if opts.WideFactor > 0 {
			cfg.WideFactor = opts.WideFactor
		}
	}
	return cfg, cfg.Validate()
}

func (c *Interleaved2Of5Config) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	return validateWideFactor(c.WideFactor)
}

func validateWideFactor(f float64) error {
	if f < 2 || f > 3 {
		return fmt.Errorf("wide factor must be between 2 and 3, got %g: %w", f, barcodegen.ErrConfiguration)
	}
	return nil
}

func barWidthFunc(moduleWidth, wideFactor float64) func(int) float64 {
	return func(width int) float64 {
		if width == 1 {
			return moduleWidth
		}
		return moduleWidth * wideFactor
	}
}

func interleavedWidth(digits string, moduleWidth, wideFactor float64) float64 {
	narrow, wide := Interleaved2Of5Width(digits)
	return float64(narrow)*moduleWidth + float64(wide)*moduleWidth*wideFactor
}

// Interleaved2Of5Generator generates Interleaved 2-of-5 symbols.
type Interleaved2Of5Generator struct {
	cfg Interleaved2Of5Config
}

// NewInterleaved2Of5Generator returns an Interleaved 2-of-5 generator.
func NewInterleaved2Of5Generator(cfg Interleaved2Of5Config) (*Interleaved2Of5Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Interleaved2Of5Generator{cfg: cfg}, nil
}

func (g *Interleaved2Of5Generator) Symbology() barcodegen.Symbology {
	return barcodegen.SymbologyInterleaved2Of5
}

func (g *Interleaved2Of5Generator) CalcDimensions(msg string) (barcodegen.Dimension, error) {
	digits, err := ResolveInterleaved2Of5(msg, g.cfg.ChecksumMode, g.cfg.PadOdd)
	if err != nil {
		return barcodegen.Dimension{}, err
	}
	return g.dimension(digits), nil
}

func (g *Interleaved2Of5Generator) dimension(digits string) barcodegen.Dimension {
	return g.cfg.Dimension(interleavedWidth(digits, g.cfg.ModuleWidth, g.cfg.WideFactor), g.cfg.Height)
}

// Generate validates msg and sends its events to h.
func (g *Interleaved2Of5Generator) Generate(h barcodegen.ClassicHandler, msg string) error {
	digits, err := ResolveInterleaved2Of5(msg, g.cfg.ChecksumMode, g.cfg.PadOdd)
	if err != nil {
		return err
	}
	EmitInterleaved2Of5(h, msg, digits)
	return nil
}

func (g *Interleaved2Of5Generator) GenerateBarcode(canvas barcodegen.Canvas, msg string) error {
	digits, err := ResolveInterleaved2Of5(msg, g.cfg.ChecksumMode, g.cfg.PadOdd)
	if err != nil {
		return err
	}
	cfg := g.cfg.BaseConfig
	layout := barcodegen.CanvasLayout{
		Config:    &cfg,
		Dimension: g.dimension(digits),
		BarWidth:  barWidthFunc(cfg.ModuleWidth, g.cfg.WideFactor),
	}
	EmitInterleaved2Of5(barcodegen.NewClassicCanvasHandler(canvas, layout), msg, digits)
	return nil
}

// ITF14Config configures an ITF-14 generator.
type ITF14Config struct {
	barcodegen.BaseConfig
	ChecksumMode barcodegen.ChecksumMode
	WideFactor   float64
	// BearerBarWidth is the thickness of the bearer bars in millimetres.
	BearerBarWidth float64
	// BearerBox closes the bearer bars into a frame.
	BearerBox bool
}

// DefaultITF14Config returns the ITF-14 defaults: 1.016mm modules, a 32mm
// height, a wide factor of 2.5 and a 4.83mm bearer box.
func DefaultITF14Config() ITF14Config {
	base := barcodegen.NewBaseConfig(1.016, 10)
	base.Height = 32
	return ITF14Config{
		BaseConfig:     base,
		WideFactor:     2.5,
		BearerBarWidth: 4.83,
		BearerBox:      true,
	}
}

// ITF14ConfigFromOptions applies opts to the defaults and validates them.
func ITF14ConfigFromOptions(opts *barcodegen.Options) (ITF14Config, error) {
	cfg := DefaultITF14Config()
	cfg.Apply(opts)
	if opts != nil {
		cfg.ChecksumMode = opts.ChecksumMode
		if opts.WideFactor > 0 {
			cfg.WideFactor = opts.WideFactor
		}
		if opts.BearerBar.Width != nil {
			cfg.BearerBarWidth = opts.BearerBar.Width.ToMM(cfg.ModuleWidth)
		}
		if opts.BearerBar.Box != nil {
			cfg.BearerBox = *opts.BearerBar.Box
		}
	}
	return cfg, cfg.Validate()
}

func (c *ITF14Config) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	if c.BearerBarWidth < 0 {
		return fmt.Errorf("bearer bar width must not be negative, got %g: %w", c.BearerBarWidth, barcodegen.ErrConfiguration)
	}
	return validateWideFactor(c.WideFactor)
}

// ITF14Generator generates ITF-14 symbols with bearer bars.
type ITF14Generator struct {
	cfg ITF14Config
}

// NewITF14Generator returns an ITF-14 generator.
func NewITF14Generator(cfg ITF14Config) (*ITF14Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ITF14Generator{cfg: cfg}, nil
}

func (g *ITF14Generator) Symbology() barcodegen.Symbology { return barcodegen.SymbologyITF14 }

func (g *ITF14Generator) CalcDimensions(msg string) (barcodegen.Dimension, error) {
	digits, err := ResolveITF14(msg, g.cfg.ChecksumMode)
	if err != nil {
		return barcodegen.Dimension{}, err
	}
	return g.dimension(digits), nil
}

// dimension adds the bearer bars above and below the bars and, with a
// bearer box, left and right of them.
func (g *ITF14Generator) dimension(digits string) barcodegen.Dimension {
	w := interleavedWidth(digits, g.cfg.ModuleWidth, g.cfg.WideFactor)
	if g.cfg.BearerBox {
		w += 2 * g.cfg.BearerBarWidth
	}
	return g.cfg.Dimension(w, g.cfg.Height+2*g.cfg.BearerBarWidth)
}

// Generate validates msg and sends its events to h.
func (g *ITF14Generator) Generate(h barcodegen.ClassicHandler, msg string) error {
	digits, err := ResolveITF14(msg, g.cfg.ChecksumMode)
	if err != nil {
		return err
	}
	EmitInterleaved2Of5(h, msg, digits)
	return nil
}

func (g *ITF14Generator) GenerateBarcode(canvas barcodegen.Canvas, msg string) error {
	digits, err := ResolveITF14(msg, g.cfg.ChecksumMode)
	if err != nil {
		return err
	}
	cfg := g.cfg.BaseConfig
	layout := barcodegen.CanvasLayout{
		Config:    &cfg,
		Dimension: g.dimension(digits),
		BarWidth:  barWidthFunc(cfg.ModuleWidth, g.cfg.WideFactor),
	}
	h := barcodegen.NewBearerBarCanvasHandler(canvas, layout, g.cfg.BearerBarWidth, g.cfg.BearerBox)
	EmitInterleaved2Of5(h, msg, digits)
	return nil
}
