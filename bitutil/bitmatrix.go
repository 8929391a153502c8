// Package bitutil holds the module grid of two-dimensional symbols.
package bitutil

import (
	"strings"
)

// BitMatrix is a grid of dark and light modules. x is the column, y the
// row, and the origin is the top left corner.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a square BitMatrix.
func NewBitMatrix(dimension int) *BitMatrix {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize creates an all-light BitMatrix.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseStringMatrix creates a BitMatrix from rows of setStr and unsetStr
// separated by newlines.
func ParseStringMatrix(repr, setStr, unsetStr string) *BitMatrix {
	var rows [][]bool
	for _, line := range strings.FieldsFunc(repr, func(r rune) bool { return r == '\n' || r == '\r' }) {
		var row []bool
		for len(line) > 0 {
			switch {
			case strings.HasPrefix(line, setStr):
				row = append(row, true)
				line = line[len(setStr):]
			case strings.HasPrefix(line, unsetStr):
				row = append(row, false)
				line = line[len(unsetStr):]
			default:
				panic("bitmatrix: illegal character encountered")
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			panic("bitmatrix: row lengths do not match")
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		panic("bitmatrix: empty matrix")
	}
	bm := NewBitMatrixWithSize(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, set := range row {
			if set {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// Get reports whether the module at (x, y) is dark.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set darkens the module at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset lightens the module at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// SetRegion darkens a rectangular region.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	right, bottom := left+width, top+height
	if bottom > bm.height || right > bm.width {
		panic("bitmatrix: the region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			bm.Set(x, y)
		}
	}
}

// Row returns the modules of row y.
func (bm *BitMatrix) Row(y int) []bool {
	row := make([]bool, bm.width)
	for x := range row {
		row[x] = bm.Get(x, y)
	}
	return row
}

// Runs returns the run lengths of row y, starting with a dark run that is
// zero when the row starts light.
func (bm *BitMatrix) Runs(y int) []int {
	runs := []int{0}
	dark := true
	for x := 0; x < bm.width; x++ {
		if bm.Get(x, y) != dark {
			runs = append(runs, 0)
			dark = !dark
		}
		runs[len(runs)-1]++
	}
	return runs
}

// Width returns the width in modules.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height in modules.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// String renders dark modules as "X " and light ones as "  ".
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars renders the matrix with the given strings per module.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals reports whether two matrices hold the same modules.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
