package barcodegen

// Options is a sparse set of overrides applied on top of a symbology's
// defaults. Zero values and nil pointers keep the default.
type Options struct {
	// Height is the total symbol height in millimetres, caption included.
	Height float64

	// ModuleWidth is the width of the narrowest bar in millimetres.
	ModuleWidth float64

	// QuietZone is the horizontal quiet zone, in millimetres or module widths.
	QuietZone *Length

	// QuietZoneEnabled toggles both quiet zones.
	QuietZoneEnabled *bool

	// VerticalQuietZone defaults to QuietZone when nil.
	VerticalQuietZone *Length

	HumanReadable HumanReadableOptions

	// ChecksumMode applies to UPC/EAN and Interleaved 2-of-5 symbologies.
	ChecksumMode ChecksumMode

	// Codesets restricts Code128 to a subset of "ABC".
	Codesets string

	// WideFactor is the wide-to-narrow ratio for Interleaved 2-of-5.
	WideFactor float64

	// PadOdd left-pads odd-length Interleaved 2-of-5 messages with a zero.
	PadOdd bool

	BearerBar BearerBarOptions

	PDF417 PDF417Options

	DataMatrix DataMatrixOptions
}

// HumanReadableOptions configures the caption.
type HumanReadableOptions struct {
	Placement *HumanReadablePlacement
	// FontSize is in millimetres.
	FontSize float64
	FontName string
	// Pattern is applied to the caption text, see FormatMessage.
	Pattern string
}

// BearerBarOptions configures the ITF-14 bearer bars.
type BearerBarOptions struct {
	// Box draws vertical bearer bars in addition to the horizontal ones.
	Box   *bool
	Width *Length
}

// PDF417Options configures PDF417 layout and encoding.
type PDF417Options struct {
	// Columns fixes both MinCols and MaxCols when non-zero.
	Columns              int
	MinCols, MaxCols     int
	MinRows, MaxRows     int
	ErrorCorrectionLevel *int
	Encoding             string
	ECIEnabled           bool
	WidthToHeightRatio   float64
	// RowHeight is the bar height of a single row, in millimetres or module widths.
	RowHeight *Length
	// Compaction is "auto", "text", "byte" or "numeric".
	Compaction string
	// PatternsFile names a YAML codeword pattern table used to draw
	// codewords on a canvas.
	PatternsFile string
}

// DataMatrixOptions configures DataMatrix symbol selection.
type DataMatrixOptions struct {
	// Shape is "none", "square" or "rectangle".
	Shape string
	// MinSize and MaxSize are "WxH" bounds on the symbol size in modules.
	MinSize string
	MaxSize string
	// Encoding converts the message to bytes. The default is ISO-8859-1.
	Encoding   string
	ECIEnabled bool
}
