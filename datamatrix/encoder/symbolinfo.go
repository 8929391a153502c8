// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericlevine/barcodegen"
)

// SymbolShapeHint controls whether the encoder prefers square or rectangular symbols.
type SymbolShapeHint int

const (
	// ShapeHintForceNone allows either square or rectangular symbols.
	ShapeHintForceNone SymbolShapeHint = iota
	// ShapeHintForceSquare forces the encoder to choose a square symbol.
	ShapeHintForceSquare
	// ShapeHintForceRectangle forces the encoder to choose a rectangular symbol.
	ShapeHintForceRectangle
)

func (s SymbolShapeHint) String() string {
	switch s {
	case ShapeHintForceSquare:
		return "square"
	case ShapeHintForceRectangle:
		return "rectangle"
	default:
		return "none"
	}
}

// ParseShape resolves "none", "square" or "rectangle". The empty string
// means none.
func ParseShape(s string) (SymbolShapeHint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "force-none":
		return ShapeHintForceNone, nil
	case "square", "force-square":
		return ShapeHintForceSquare, nil
	case "rectangle", "rectangular", "rect", "force-rectangle":
		return ShapeHintForceRectangle, nil
	}
	return ShapeHintForceNone, fmt.Errorf("unknown DataMatrix shape %q: %w", s, barcodegen.ErrConfiguration)
}

// Size is a symbol size in modules.
type Size struct {
	Width, Height int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// ParseSize parses a "WxH" size. A single number means a square size.
func ParseSize(s string) (Size, error) {
	fields := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(fields) == 1 {
		fields = append(fields, fields[0])
	}
	if len(fields) != 2 {
		return Size{}, fmt.Errorf("invalid symbol size %q: %w", s, barcodegen.ErrConfiguration)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(fields[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(fields[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("invalid symbol size %q: %w", s, barcodegen.ErrConfiguration)
	}
	return Size{Width: w, Height: h}, nil
}

// SymbolInfo describes a single Data Matrix ECC-200 symbol size.
type SymbolInfo struct {
	Rectangular    bool
	DataCapacity   int // data codewords, summed over all interleaved blocks
	ErrorCodewords int // EC codewords, summed over all interleaved blocks
	// RegionWidth and RegionHeight are the data modules of one data region,
	// without finder and clock patterns.
	RegionWidth  int
	RegionHeight int
	DataRegions  int
	RSBlockData  int // data codewords of the largest RS block
	RSBlockError int // EC codewords per RS block
}

// symbols lists the ECC-200 sizes in the order in which they are tried.
// Squares and rectangles are interleaved by data capacity so that the
// first fitting entry is the smallest symbol.
var symbols = []SymbolInfo{
	{false, 3, 5, 8, 8, 1, 3, 5},
	{false, 5, 7, 10, 10, 1, 5, 7},
	{true, 5, 7, 16, 6, 1, 5, 7},
	{false, 8, 10, 12, 12, 1, 8, 10},
	{true, 10, 11, 14, 6, 2, 10, 11},
	{false, 12, 12, 14, 14, 1, 12, 12},
	{true, 16, 14, 24, 10, 1, 16, 14},
	{false, 18, 14, 16, 16, 1, 18, 14},
	{false, 22, 18, 18, 18, 1, 22, 18},
	{true, 22, 18, 16, 10, 2, 22, 18},
	{false, 30, 20, 20, 20, 1, 30, 20},
	{true, 32, 24, 16, 14, 2, 32, 24},
	{false, 36, 24, 22, 22, 1, 36, 24},
	{false, 44, 28, 24, 24, 1, 44, 28},
	{true, 49, 28, 22, 14, 2, 49, 28},
	{false, 62, 36, 14, 14, 4, 62, 36},
	{false, 86, 42, 16, 16, 4, 86, 42},
	{false, 114, 48, 18, 18, 4, 114, 48},
	{false, 144, 56, 20, 20, 4, 144, 56},
	{false, 174, 68, 22, 22, 4, 174, 68},
	{false, 204, 84, 24, 24, 4, 102, 42},
	{false, 280, 112, 14, 14, 16, 140, 56},
	{false, 368, 144, 16, 16, 16, 92, 36},
	{false, 456, 192, 18, 18, 16, 114, 48},
	{false, 576, 224, 20, 20, 16, 144, 56},
	{false, 696, 272, 22, 22, 16, 174, 68},
	{false, 816, 336, 24, 24, 16, 136, 56},
	{false, 1050, 408, 18, 18, 36, 175, 68},
	{false, 1304, 496, 20, 20, 36, 163, 62},
	{false, 1558, 620, 22, 22, 36, 156, 62},
}

// Symbols returns a copy of the symbol size table in lookup order.
func Symbols() []SymbolInfo {
	return append([]SymbolInfo(nil), symbols...)
}

// HorizontalDataRegions returns the number of data regions per row.
func (si *SymbolInfo) HorizontalDataRegions() int {
	switch si.DataRegions {
	case 1:
		return 1
	case 2, 4:
		return 2
	case 16:
		return 4
	case 36:
		return 6
	}
	panic("datamatrix/encoder: cannot handle this number of data regions")
}

// VerticalDataRegions returns the number of data regions per column.
func (si *SymbolInfo) VerticalDataRegions() int {
	switch si.DataRegions {
	case 1, 2:
		return 1
	case 4:
		return 2
	case 16:
		return 4
	case 36:
		return 6
	}
	panic("datamatrix/encoder: cannot handle this number of data regions")
}

// MappingMatrixColumns returns the number of data module columns.
func (si *SymbolInfo) MappingMatrixColumns() int {
	return si.HorizontalDataRegions() * si.RegionWidth
}

// MappingMatrixRows returns the number of data module rows.
func (si *SymbolInfo) MappingMatrixRows() int {
	return si.VerticalDataRegions() * si.RegionHeight
}

// SymbolWidth returns the symbol width in modules, finder and clock
// patterns included.
func (si *SymbolInfo) SymbolWidth() int {
	return si.MappingMatrixColumns() + si.HorizontalDataRegions()*2
}

// SymbolHeight returns the symbol height in modules.
func (si *SymbolInfo) SymbolHeight() int {
	return si.MappingMatrixRows() + si.VerticalDataRegions()*2
}

// Size returns the symbol size in modules.
func (si *SymbolInfo) Size() Size {
	return Size{Width: si.SymbolWidth(), Height: si.SymbolHeight()}
}

// TotalCodewords returns data + error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords
}

// InterleavedBlockCount returns the number of Reed-Solomon blocks.
func (si *SymbolInfo) InterleavedBlockCount() int {
	return si.ErrorCodewords / si.RSBlockError
}

// BlockDataLength returns the number of data codewords in block i. Only
// the 144x144 symbol has blocks of two sizes; its first blocks are the
// longer ones.
func (si *SymbolInfo) BlockDataLength(i int) int {
	n := si.InterleavedBlockCount()
	length := si.DataCapacity / n
	if i < si.DataCapacity%n {
		length++
	}
	return length
}

func (si *SymbolInfo) String() string {
	kind := "Square"
	if si.Rectangular {
		kind = "Rectangular"
	}
	return fmt.Sprintf("%s Symbol: data region %dx%d, symbol size %s, symbol data size %dx%d, codewords %d+%d",
		kind, si.RegionWidth, si.RegionHeight, si.Size(),
		si.MappingMatrixColumns(), si.MappingMatrixRows(), si.DataCapacity, si.ErrorCodewords)
}

// Lookup finds the first symbol that holds dataCodewords and satisfies
// the shape and size constraints. minSize and maxSize may be nil.
func Lookup(dataCodewords int, shape SymbolShapeHint, minSize, maxSize *Size) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if shape == ShapeHintForceSquare && si.Rectangular {
			continue
		}
		if shape == ShapeHintForceRectangle && !si.Rectangular {
			continue
		}
		if minSize != nil && (si.SymbolWidth() < minSize.Width || si.SymbolHeight() < minSize.Height) {
			continue
		}
		if maxSize != nil && (si.SymbolWidth() > maxSize.Width || si.SymbolHeight() > maxSize.Height) {
			continue
		}
		if dataCodewords <= si.DataCapacity {
			return si, nil
		}
	}
	return nil, fmt.Errorf("no %s symbol holds %d data codewords: %w",
		shape, dataCodewords, barcodegen.ErrCapacityExceeded)
}

// LookupBySize returns the SymbolInfo for a specific symbol size.
func LookupBySize(size Size) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if si.SymbolWidth() == size.Width && si.SymbolHeight() == size.Height {
			return si, nil
		}
	}
	return nil, fmt.Errorf("no DataMatrix symbol of size %s: %w", size, barcodegen.ErrConfiguration)
}
