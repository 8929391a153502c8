package barcodegen

import "fmt"

// Rect is an axis-aligned rectangle in millimetres.
type Rect struct {
	X, Y, W, H float64
}

// Dimension holds the physical size of a barcode symbol in millimetres.
// A Dimension is immutable once constructed.
type Dimension struct {
	width, height                   float64
	widthPlusQuiet, heightPlusQuiet float64
	xOffset, yOffset                float64
}

// NewDimension returns a Dimension without any quiet zone.
func NewDimension(w, h float64) Dimension {
	return Dimension{
		width:           w,
		height:          h,
		widthPlusQuiet:  w,
		heightPlusQuiet: h,
	}
}

// NewDimensionWithQuietZone returns a Dimension whose content sits at
// (xOffset, yOffset) inside a box of wpq by hpq.
func NewDimensionWithQuietZone(w, h, wpq, hpq, xOffset, yOffset float64) Dimension {
	return Dimension{
		width:           w,
		height:          h,
		widthPlusQuiet:  wpq,
		heightPlusQuiet: hpq,
		xOffset:         xOffset,
		yOffset:         yOffset,
	}
}

// Width returns the width of the symbol without quiet zone.
func (d Dimension) Width() float64 { return d.width }

// Height returns the height of the symbol without quiet zone.
func (d Dimension) Height() float64 { return d.height }

// WidthPlusQuiet returns the width including both horizontal quiet zones.
func (d Dimension) WidthPlusQuiet() float64 { return d.widthPlusQuiet }

// HeightPlusQuiet returns the height including both vertical quiet zones.
func (d Dimension) HeightPlusQuiet() float64 { return d.heightPlusQuiet }

// XOffset returns the horizontal offset of the content origin.
func (d Dimension) XOffset() float64 { return d.xOffset }

// YOffset returns the vertical offset of the content origin.
func (d Dimension) YOffset() float64 { return d.yOffset }

// BoundingRect returns the whole area including quiet zones.
func (d Dimension) BoundingRect() Rect {
	return Rect{W: d.widthPlusQuiet, H: d.heightPlusQuiet}
}

// ContentRect returns the area covered by the symbol itself.
func (d Dimension) ContentRect() Rect {
	return Rect{X: d.xOffset, Y: d.yOffset, W: d.width, H: d.height}
}

func (d Dimension) String() string {
	return fmt.Sprintf("Dim: %g x %g (incl. quiet zone: %g x %g)",
		d.width, d.height, d.widthPlusQuiet, d.heightPlusQuiet)
}
