// Package pdf417 generates PDF417 symbols.
package pdf417

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/charset"
	"github.com/ericlevine/barcodegen/pdf417/encoder"
)

const (
	// DefaultEncoding is the character set readers assume without an ECI.
	DefaultEncoding = encoder.DefaultEncoding

	defaultColumns   = 2
	defaultRowHeight = 3 // module widths
)

// Config configures a PDF417 generator.
type Config struct {
	barcodegen.BaseConfig
	MinCols, MaxCols     int
	MinRows, MaxRows     int
	ErrorCorrectionLevel int
	Compaction           encoder.Compaction
	// Encoding names the character set of byte compacted text.
	Encoding string
	// ECIEnabled prefixes an ECI designator when Encoding is not the
	// default.
	ECIEnabled         bool
	WidthToHeightRatio float64
	// RowHeight is the height of one row in millimetres.
	RowHeight float64
	// Patterns draws codewords in GenerateBarcode. Handler output does
	// not need it.
	Patterns PatternTable
}

// DefaultConfig returns the PDF417 defaults: 1pt modules, two data
// columns, rows three modules high, a quiet zone of two modules and no
// caption.
func DefaultConfig() Config {
	mw := barcodegen.PointsToMM(1)
	base := barcodegen.NewBaseConfig(mw, 2)
	base.HumanReadable.Placement = barcodegen.PlacementNone
	return Config{
		BaseConfig:         base,
		MinCols:            defaultColumns,
		MaxCols:            defaultColumns,
		MinRows:            encoder.MinRowsInBarcode,
		MaxRows:            encoder.MaxRowsInBarcode,
		Encoding:           DefaultEncoding,
		WidthToHeightRatio: 3,
		RowHeight:          defaultRowHeight * mw,
	}
}

// ConfigFromOptions applies opts to the defaults and validates them.
// Setting only MinCols or MaxCols opens the other bound to its limit.
func ConfigFromOptions(opts *barcodegen.Options) (Config, error) {
	cfg := DefaultConfig()
	rowModules := cfg.RowHeight / cfg.ModuleWidth
	cfg.Apply(opts)
	cfg.RowHeight = rowModules * cfg.ModuleWidth
	if opts == nil {
		return cfg, cfg.Validate()
	}

	p := opts.PDF417
	switch {
	case p.Columns != 0:
		cfg.MinCols, cfg.MaxCols = p.Columns, p.Columns
	case p.MinCols != 0 || p.MaxCols != 0:
		cfg.MinCols, cfg.MaxCols = encoder.MinColsInBarcode, encoder.MaxColsInBarcode
		if p.MinCols != 0 {
			cfg.MinCols = p.MinCols
		}
		if p.MaxCols != 0 {
			cfg.MaxCols = p.MaxCols
		}
	}
	if p.MinRows != 0 {
		cfg.MinRows = p.MinRows
	}
	if p.MaxRows != 0 {
		cfg.MaxRows = p.MaxRows
	}
	if p.ErrorCorrectionLevel != nil {
		cfg.ErrorCorrectionLevel = *p.ErrorCorrectionLevel
	}
	if p.Encoding != "" {
		cfg.Encoding = p.Encoding
	}
	cfg.ECIEnabled = p.ECIEnabled
	if p.WidthToHeightRatio != 0 {
		cfg.WidthToHeightRatio = p.WidthToHeightRatio
	}
	if p.RowHeight != nil {
		cfg.RowHeight = p.RowHeight.ToMM(cfg.ModuleWidth)
	}
	compaction, err := encoder.ParseCompaction(p.Compaction)
	if err != nil {
		return cfg, err
	}
	cfg.Compaction = compaction
	if p.PatternsFile != "" {
		patterns, err := LoadPatternsFile(p.PatternsFile)
		if err != nil {
			return cfg, err
		}
		cfg.Patterns = patterns
	}
	return cfg, cfg.Validate()
}

func (c *Config) constraints() encoder.Constraints {
	return encoder.Constraints{
		MinCols:            c.MinCols,
		MaxCols:            c.MaxCols,
		MinRows:            c.MinRows,
		MaxRows:            c.MaxRows,
		WidthToHeightRatio: c.WidthToHeightRatio,
		RowHeight:          c.RowHeight / c.ModuleWidth,
	}
}

func (c *Config) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	cons := c.constraints()
	if err := cons.Validate(); err != nil {
		return err
	}
	if _, err := encoder.ErrorCorrectionCodewordCount(c.ErrorCorrectionLevel); err != nil {
		return err
	}
	if _, err := charset.Lookup(c.Encoding); err != nil {
		return fmt.Errorf("%v: %w", err, barcodegen.ErrConfiguration)
	}
	return nil
}

// Generator generates PDF417 symbols. Encode and Generate work
// from the configuration alone. GenerateBarcode also needs Config.Patterns,
// which ConfigFromOptions loads from the file named by the pdf417.patterns key.
type Generator struct {
	cfg     Config
	charset *charset.Charset
}

// NewGenerator returns a PDF417 generator.
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

func (g *Generator) Symbology() barcodegen.Symbology { return barcodegen.SymbologyPDF417 }

// Encode compacts msg and lays it out into a symbol.
func (g *Generator) Encode(msg string) (*encoder.Symbol, error) {
	opts := &encoder.Options{
		HighLevelOptions: encoder.HighLevelOptions{
			Compaction: g.cfg.Compaction,
			Charset:    g.charset,
		},
		ErrorCorrectionLevel: g.cfg.ErrorCorrectionLevel,
		Constraints:          g.cfg.constraints(),
	}
	if g.cfg.ECIEnabled && g.charset.ECI != nil && g.charset.ECI != charset.ECICp437 {
		opts.ECI = g.charset.ECI
	}
	return encoder.Encode(msg, opts)
}

// Codewords returns the data and error correction codewords of msg.
func (g *Generator) Codewords(msg string) ([]int, error) {
	sym, err := g.Encode(msg)
	if err != nil {
		return nil, err
	}
	return sym.Codewords, nil
}

func (g *Generator) CalcDimensions(msg string) (barcodegen.Dimension, error) {
	sym, err := g.Encode(msg)
	if err != nil {
		return barcodegen.Dimension{}, err
	}
	return g.dimension(sym), nil
}

func (g *Generator) dimension(sym *encoder.Symbol) barcodegen.Dimension {
	h := float64(sym.Rows) * g.cfg.RowHeight
	if g.cfg.HumanReadable.Placement != barcodegen.PlacementNone {
		h += g.cfg.HumanReadableHeight()
	}
	return g.cfg.Dimension(float64(sym.Width())*g.cfg.ModuleWidth, h)
}

// Generate validates msg and sends one row per symbol row to h: the start
// pattern, the row indicators around the data codewords and the stop
// pattern.
func (g *Generator) Generate(h barcodegen.TwoDimHandler, msg string) error {
	sym, err := g.Encode(msg)
	if err != nil {
		return err
	}
	emit(h, msg, sym)
	return nil
}

func emit(h barcodegen.TwoDimHandler, msg string, sym *encoder.Symbol) {
	h.StartBarcode(msg, msg)
	for y := 0; y < sym.Rows; y++ {
		row := sym.Row(y)
		h.StartRow()
		addPattern(h, barcodegen.GroupStartCharacter, encoder.StartPattern, encoder.ModulesInCodeword)
		addCodewords(h, barcodegen.GroupRowIndicator, row.Cluster, row.Left)
		addCodewords(h, barcodegen.GroupMessageCharacter, row.Cluster, row.Data...)
		addCodewords(h, barcodegen.GroupRowIndicator, row.Cluster, row.Right)
		addPattern(h, barcodegen.GroupStopCharacter, encoder.StopPattern, encoder.ModulesInStopPattern)
		h.EndRow()
	}
	h.EndBarcode()
}

func addPattern(h barcodegen.TwoDimHandler, group barcodegen.BarGroup, pattern uint32, modules int) {
	h.StartBarGroup(group, "")
	black := true
	for _, w := range encoder.PatternWidths(pattern, modules) {
		h.AddBar(black, w)
		black = !black
	}
	h.EndBarGroup()
}

func addCodewords(h barcodegen.TwoDimHandler, group barcodegen.BarGroup, cluster int, values ...int) {
	h.StartBarGroup(group, "")
	for _, v := range values {
		h.AddCodeword(barcodegen.Codeword{Value: v, Cluster: cluster})
	}
	h.EndBarGroup()
}

// GenerateBarcode draws msg onto canvas. It needs Config.Patterns to
// resolve codewords to bars and fails with ErrConfiguration without one.
// Load a table with LoadPatternsFile or set pdf417.patterns.
func (g *Generator) GenerateBarcode(canvas barcodegen.Canvas, msg string) error {
	sym, err := g.Encode(msg)
	if err != nil {
		return err
	}
	r, err := newRenderer(g.cfg.Patterns, sym)
	if err != nil {
		return err
	}
	cfg := g.cfg.BaseConfig
	layout := barcodegen.CanvasLayout{
		Config:    &cfg,
		Dimension: g.dimension(sym),
	}
	if cfg.HumanReadable.Placement == barcodegen.PlacementBottom {
		layout.TextOffset = float64(sym.Rows)*g.cfg.RowHeight + cfg.HumanReadableHeight() - cfg.Height
	}
	emit(barcodegen.NewTwoDimCanvasHandler(canvas, layout, g.cfg.RowHeight, r), msg, sym)
	return nil
}
