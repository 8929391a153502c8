package encoder

import (
	"fmt"
	"math"

	"github.com/ericlevine/barcodegen"
)

// Constraints bound the layout of a symbol.
type Constraints struct {
	MinCols, MaxCols int
	MinRows, MaxRows int
	// WidthToHeightRatio is the preferred symbol width divided by its
	// height.
	WidthToHeightRatio float64
	// RowHeight is the height of a row in module widths.
	RowHeight float64
}

// DefaultConstraints allows every layout and prefers symbols three times
// as wide as they are high, with rows three modules high.
func DefaultConstraints() Constraints {
	return Constraints{
		MinCols:            MinColsInBarcode,
		MaxCols:            MaxColsInBarcode,
		MinRows:            MinRowsInBarcode,
		MaxRows:            MaxRowsInBarcode,
		WidthToHeightRatio: 3,
		RowHeight:          3,
	}
}

func (c *Constraints) Validate() error {
	switch {
	case c.MinCols < MinColsInBarcode || c.MaxCols > MaxColsInBarcode || c.MinCols > c.MaxCols:
		return fmt.Errorf("columns must be between %d and %d, got %d..%d: %w",
			MinColsInBarcode, MaxColsInBarcode, c.MinCols, c.MaxCols, barcodegen.ErrConfiguration)
	case c.MinRows < MinRowsInBarcode || c.MaxRows > MaxRowsInBarcode || c.MinRows > c.MaxRows:
		return fmt.Errorf("rows must be between %d and %d, got %d..%d: %w",
			MinRowsInBarcode, MaxRowsInBarcode, c.MinRows, c.MaxRows, barcodegen.ErrConfiguration)
	case !(c.WidthToHeightRatio > 0):
		return fmt.Errorf("width to height ratio must be positive, got %g: %w", c.WidthToHeightRatio, barcodegen.ErrConfiguration)
	case !(c.RowHeight > 0):
		return fmt.Errorf("row height must be positive, got %g: %w", c.RowHeight, barcodegen.ErrConfiguration)
	}
	return nil
}

// Layout is the number of data columns and rows of a symbol.
type Layout struct {
	Columns, Rows int
}

// Width returns the symbol width in modules, start and stop patterns and
// row indicators included.
func (l Layout) Width() int {
	return ModulesInCodeword*l.Columns + 69
}

// CalculateNumberOfRows returns the number of rows needed to hold m data
// codewords, the length descriptor and k error correction codewords in c
// columns.
func CalculateNumberOfRows(m, k, c int) int {
	r := (m+1+k)/c + 1
	if c*r >= m+1+k+c {
		r--
	}
	return r
}

// NumberOfPadCodewords returns the number of pad codewords that fill a
// c by r symbol holding m data and k error correction codewords.
func NumberOfPadCodewords(m, k, c, r int) int {
	n := c*r - k
	if n > m+1 {
		return n - m - 1
	}
	return 0
}

// DetermineDimensions picks the layout for m data codewords and k error
// correction codewords whose width to height ratio is closest to the
// preferred one. When even the fewest columns need fewer rows than
// allowed, it returns the minimum layout, which is then padded.
func DetermineDimensions(m, k int, cons Constraints) (Layout, error) {
	if m+k+1 > NumberOfCodewords {
		return Layout{}, fmt.Errorf("encoded message contains %d codewords, too many for a symbol: %w",
			m+k+1, barcodegen.ErrCapacityExceeded)
	}
	var (
		ratio  float64
		layout Layout
		found  bool
	)
	for cols := cons.MinCols; cols <= cons.MaxCols; cols++ {
		rows := CalculateNumberOfRows(m, k, cols)
		if rows < cons.MinRows {
			break
		}
		if rows > cons.MaxRows {
			continue
		}
		newRatio := float64(ModulesInCodeword*cols+69) / (float64(rows) * cons.RowHeight)
		// ignore if previous ratio is closer to preferred ratio
		if found && math.Abs(newRatio-cons.WidthToHeightRatio) > math.Abs(ratio-cons.WidthToHeightRatio) {
			continue
		}
		ratio = newRatio
		layout = Layout{Columns: cols, Rows: rows}
		found = true
	}
	if !found {
		// Handle case when min values were larger than necessary
		if CalculateNumberOfRows(m, k, cons.MinCols) < cons.MinRows {
			layout = Layout{Columns: cons.MinCols, Rows: cons.MinRows}
			found = true
		}
	}
	if !found {
		return Layout{}, fmt.Errorf("unable to fit %d codewords in %d..%d columns and %d..%d rows: %w",
			m+k+1, cons.MinCols, cons.MaxCols, cons.MinRows, cons.MaxRows, barcodegen.ErrCapacityExceeded)
	}
	if n := layout.Columns*layout.Rows - k; n > MaxCodewordsInBarcode {
		return Layout{}, fmt.Errorf("%d data codewords exceed the limit of %d: %w",
			n, MaxCodewordsInBarcode, barcodegen.ErrCapacityExceeded)
	}
	return layout, nil
}
