// Copyright 2011 ZXing authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

// Package encoder implements PDF417 encoding: high-level compaction into
// codewords, the layout solver, error correction and the row logic.
package encoder

// Options configures Encode.
type Options struct {
	HighLevelOptions
	ErrorCorrectionLevel int
	Constraints          Constraints
}

// Symbol is a fully encoded PDF417 symbol.
type Symbol struct {
	Layout
	ErrorCorrectionLevel int
	// Data holds the length descriptor, the high-level codewords and the
	// pad codewords.
	Data []int
	// Codewords holds Data followed by the error correction codewords,
	// in row major order.
	Codewords []int
}

// Row is one row of a symbol.
type Row struct {
	// Cluster is the pattern table of the row: 0, 3 or 6.
	Cluster     int
	Left, Right int
	Data        []int
}

// Encode compacts msg, selects a layout and appends the padding and the
// error correction codewords.
func Encode(msg string, opts *Options) (*Symbol, error) {
	if opts == nil {
		opts = &Options{Constraints: DefaultConstraints()}
	}
	if err := opts.Constraints.Validate(); err != nil {
		return nil, err
	}
	k, err := ErrorCorrectionCodewordCount(opts.ErrorCorrectionLevel)
	if err != nil {
		return nil, err
	}
	highLevel, err := EncodeHighLevel(msg, &opts.HighLevelOptions)
	if err != nil {
		return nil, err
	}
	m := len(highLevel)
	layout, err := DetermineDimensions(m, k, opts.Constraints)
	if err != nil {
		return nil, err
	}

	pad := NumberOfPadCodewords(m, k, layout.Columns, layout.Rows)
	n := m + pad + 1
	data := make([]int, 0, n)
	data = append(data, n)
	data = append(data, highLevel...)
	for i := 0; i < pad; i++ {
		data = append(data, padCodeword)
	}
	ec, err := GenerateErrorCorrection(data, opts.ErrorCorrectionLevel)
	if err != nil {
		return nil, err
	}
	return &Symbol{
		Layout:               layout,
		ErrorCorrectionLevel: opts.ErrorCorrectionLevel,
		Data:                 data,
		Codewords:            append(data[:n:n], ec...),
	}, nil
}

// ErrorCorrectionCodewords returns the codewords appended after Data.
func (s *Symbol) ErrorCorrectionCodewords() []int {
	return s.Codewords[len(s.Data):]
}

// Row returns row y with its left and right row indicators, as laid out
// in ISO/IEC 15438:2001(E), chapter 5.3.2.
func (s *Symbol) Row(y int) Row {
	c, r := s.Columns, s.Rows
	base := 30 * (y / 3)
	row := Row{
		Cluster: (y % 3) * 3,
		Data:    s.Codewords[y*c : (y+1)*c],
	}
	switch y % 3 {
	case 0:
		row.Left = base + (r-1)/3
		row.Right = base + (c - 1)
	case 1:
		row.Left = base + s.ErrorCorrectionLevel*3 + (r-1)%3
		row.Right = base + (r-1)/3
	default:
		row.Left = base + (c - 1)
		row.Right = base + s.ErrorCorrectionLevel*3 + (r-1)%3
	}
	return row
}
