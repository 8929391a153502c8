// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

// Package encoder implements Data Matrix (ECC-200) encoding: high-level
// compaction into codewords, Reed-Solomon error correction and module
// placement.
package encoder

import (
	"github.com/ericlevine/barcodegen/bitutil"
)

// Symbol is a fully encoded Data Matrix symbol.
type Symbol struct {
	Info *SymbolInfo
	// DataCodewords are the padded data codewords.
	DataCodewords []byte
	// Codewords are the data codewords followed by the interleaved EC
	// codewords.
	Codewords []byte
	Matrix    *bitutil.BitMatrix
}

// Encode encodes msg, one byte per character, into a Data Matrix symbol.
func Encode(msg []byte, opts *Options) (*Symbol, error) {
	if opts == nil {
		opts = &Options{}
	}
	data, err := EncodeHighLevel(msg, opts)
	if err != nil {
		return nil, err
	}
	info, err := Lookup(len(data), opts.Shape, opts.MinSize, opts.MaxSize)
	if err != nil {
		return nil, err
	}
	codewords, err := EncodeECC200(data, info)
	if err != nil {
		return nil, err
	}
	placement := NewPlacement(codewords, info.MappingMatrixColumns(), info.MappingMatrixRows())
	placement.Place()
	return &Symbol{
		Info:          info,
		DataCodewords: data,
		Codewords:     codewords,
		Matrix:        encodeLowLevel(placement, info),
	}, nil
}

// encodeLowLevel surrounds every data region with its finder pattern, a
// solid bar along the left and bottom edges, and its clock track, which
// alternates along the top and right edges.
func encodeLowLevel(placement *Placement, info *SymbolInfo) *bitutil.BitMatrix {
	matrix := bitutil.NewBitMatrixWithSize(info.SymbolWidth(), info.SymbolHeight())
	regionW, regionH := info.RegionWidth, info.RegionHeight

	matrixY := 0
	for y := 0; y < placement.NumRows(); y++ {
		if y%regionH == 0 {
			for x := 0; x < info.SymbolWidth(); x++ {
				if x%2 == 0 {
					matrix.Set(x, matrixY)
				}
			}
			matrixY++
		}
		matrixX := 0
		for x := 0; x < placement.NumCols(); x++ {
			if x%regionW == 0 {
				matrix.Set(matrixX, matrixY)
				matrixX++
			}
			if placement.Bit(x, y) {
				matrix.Set(matrixX, matrixY)
			}
			matrixX++
			if x%regionW == regionW-1 {
				if y%2 == 0 {
					matrix.Set(matrixX, matrixY)
				}
				matrixX++
			}
		}
		matrixY++
		if y%regionH == regionH-1 {
			for x := 0; x < info.SymbolWidth(); x++ {
				matrix.Set(x, matrixY)
			}
			matrixY++
		}
	}
	return matrix
}
