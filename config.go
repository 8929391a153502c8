package barcodegen

import (
	"fmt"
	"math"
)

// DefaultFontName is the caption font used when none is configured.
const DefaultFontName = "Helvetica"

// DefaultFontSize is the caption font size in millimetres (8pt).
var DefaultFontSize = PointsToMM(8)

// HumanReadable is the resolved caption configuration.
type HumanReadable struct {
	Placement HumanReadablePlacement
	FontSize  float64
	FontName  string
	Pattern   string
}

// BaseConfig holds the settings shared by every symbology. All lengths are
// in millimetres.
type BaseConfig struct {
	ModuleWidth       float64
	Height            float64
	QuietZone         float64
	QuietZoneEnabled  bool
	VerticalQuietZone float64
	HumanReadable     HumanReadable

	// FontDescender is set by symbologies whose captions may contain
	// characters with descenders.
	FontDescender bool
}

// NewBaseConfig returns a BaseConfig with the common defaults: a 15mm height,
// a quiet zone of quietZoneModules module widths and an 8pt Helvetica caption
// below the bars.
func NewBaseConfig(moduleWidth, quietZoneModules float64) BaseConfig {
	qz := quietZoneModules * moduleWidth
	return BaseConfig{
		ModuleWidth:       moduleWidth,
		Height:            15,
		QuietZone:         qz,
		QuietZoneEnabled:  true,
		VerticalQuietZone: qz,
		HumanReadable: HumanReadable{
			Placement: PlacementBottom,
			FontSize:  DefaultFontSize,
			FontName:  DefaultFontName,
		},
	}
}

// Apply overlays opts onto the configuration. Module-width lengths are
// resolved against the module width after it has been overridden.
func (c *BaseConfig) Apply(opts *Options) {
	if opts == nil {
		return
	}
	if opts.ModuleWidth > 0 {
		// A quiet zone kept at its default scales with the module width.
		modules := c.QuietZone / c.ModuleWidth
		vmodules := c.VerticalQuietZone / c.ModuleWidth
		c.ModuleWidth = opts.ModuleWidth
		c.QuietZone = modules * c.ModuleWidth
		c.VerticalQuietZone = vmodules * c.ModuleWidth
	}
	if opts.Height > 0 {
		c.Height = opts.Height
	}
	if opts.QuietZone != nil {
		c.QuietZone = opts.QuietZone.ToMM(c.ModuleWidth)
		c.VerticalQuietZone = c.QuietZone
	}
	if opts.VerticalQuietZone != nil {
		c.VerticalQuietZone = opts.VerticalQuietZone.ToMM(c.ModuleWidth)
	}
	if opts.QuietZoneEnabled != nil {
		c.QuietZoneEnabled = *opts.QuietZoneEnabled
	}
	hr := opts.HumanReadable
	if hr.Placement != nil {
		c.HumanReadable.Placement = *hr.Placement
	}
	if hr.FontSize > 0 {
		c.HumanReadable.FontSize = hr.FontSize
	}
	if hr.FontName != "" {
		c.HumanReadable.FontName = hr.FontName
	}
	if hr.Pattern != "" {
		c.HumanReadable.Pattern = hr.Pattern
	}
}

// Validate checks that every length is usable.
func (c *BaseConfig) Validate() error {
	switch {
	case !(c.ModuleWidth > 0) || math.IsInf(c.ModuleWidth, 0):
		return fmt.Errorf("module width must be positive, got %g: %w", c.ModuleWidth, ErrConfiguration)
	case c.Height < 0:
		return fmt.Errorf("height must not be negative, got %g: %w", c.Height, ErrConfiguration)
	case c.QuietZone < 0 || c.VerticalQuietZone < 0:
		return fmt.Errorf("quiet zone must not be negative: %w", ErrConfiguration)
	case c.HumanReadable.FontSize < 0:
		return fmt.Errorf("font size must not be negative, got %g: %w", c.HumanReadable.FontSize, ErrConfiguration)
	case c.HumanReadable.Placement != PlacementNone && c.BarHeight() <= 0:
		return fmt.Errorf("height %g leaves no room for bars below a %g caption: %w",
			c.Height, c.HumanReadableHeight(), ErrConfiguration)
	}
	return nil
}

// HumanReadableHeight returns the height reserved for the caption.
func (c *BaseConfig) HumanReadableHeight() float64 {
	if c.FontDescender {
		return 1.3 * c.HumanReadable.FontSize
	}
	return c.HumanReadable.FontSize
}

// BarHeight returns the height of the bars alone.
func (c *BaseConfig) BarHeight() float64 {
	if c.HumanReadable.Placement == PlacementNone {
		return c.Height
	}
	return c.Height - c.HumanReadableHeight()
}

// EffectiveQuietZone returns the horizontal quiet zone, or 0 when disabled.
func (c *BaseConfig) EffectiveQuietZone() float64 {
	if !c.QuietZoneEnabled {
		return 0
	}
	return c.QuietZone
}

// EffectiveVerticalQuietZone returns the vertical quiet zone, or 0 when
// disabled.
func (c *BaseConfig) EffectiveVerticalQuietZone() float64 {
	if !c.QuietZoneEnabled {
		return 0
	}
	return c.VerticalQuietZone
}

// Dimension builds the Dimension of content measuring w by h.
func (c *BaseConfig) Dimension(w, h float64) Dimension {
	qz := c.EffectiveQuietZone()
	vqz := c.EffectiveVerticalQuietZone()
	return NewDimensionWithQuietZone(w, h, w+2*qz, h+2*vqz, qz, vqz)
}

// TextBaseline returns the caption baseline, measured from the top of the
// content area.
func (c *BaseConfig) TextBaseline() float64 {
	var ty float64
	switch c.HumanReadable.Placement {
	case PlacementTop:
		ty = c.HumanReadableHeight()
	case PlacementBottom:
		ty = c.Height
	default:
		return 0
	}
	if c.FontDescender {
		ty -= c.HumanReadableHeight() - c.HumanReadable.FontSize
	}
	return ty
}
