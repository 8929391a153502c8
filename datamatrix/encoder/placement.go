// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

// Placement lays codeword bits out over the mapping matrix, the data
// modules of a symbol without its finder and clock patterns, following
// ISO/IEC 16022 Annex F.
type Placement struct {
	codewords []byte
	numRows   int
	numCols   int
	bits      []int8 // -1 unvisited, 0 off, 1 on
}

// NewPlacement creates a placement of codewords over a numCols by numRows
// mapping matrix.
func NewPlacement(codewords []byte, numCols, numRows int) *Placement {
	p := &Placement{
		codewords: codewords,
		numRows:   numRows,
		numCols:   numCols,
		bits:      make([]int8, numRows*numCols),
	}
	for i := range p.bits {
		p.bits[i] = -1
	}
	return p
}

func (p *Placement) NumRows() int { return p.numRows }

func (p *Placement) NumCols() int { return p.numCols }

// Bit reports whether the module at (col, row) is dark.
func (p *Placement) Bit(col, row int) bool {
	return p.bits[row*p.numCols+col] == 1
}

func (p *Placement) setBit(col, row int, bit bool) {
	var v int8
	if bit {
		v = 1
	}
	p.bits[row*p.numCols+col] = v
}

func (p *Placement) visited(col, row int) bool {
	return p.bits[row*p.numCols+col] >= 0
}

// Place assigns every codeword to its modules.
func (p *Placement) Place() {
	pos := 0
	row, col := 4, 0
	for {
		// Corner cases first.
		if row == p.numRows && col == 0 {
			p.corner(pos, corner1)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%4 != 0 {
			p.corner(pos, corner2)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%8 == 4 {
			p.corner(pos, corner3)
			pos++
		}
		if row == p.numRows+4 && col == 2 && p.numCols%8 == 0 {
			p.corner(pos, corner4)
			pos++
		}

		// Sweep up and to the right.
		for {
			if row < p.numRows && col >= 0 && !p.visited(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.numCols {
				break
			}
		}
		row++
		col += 3

		// Sweep down and to the left.
		for {
			if row >= 0 && col < p.numCols && !p.visited(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row += 2
			col -= 2
			if row >= p.numRows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= p.numRows && col >= p.numCols {
			break
		}
	}

	// An untouched lower right corner gets the fixed pattern.
	if !p.visited(p.numCols-1, p.numRows-1) {
		p.setBit(p.numCols-1, p.numRows-1, true)
		p.setBit(p.numCols-2, p.numRows-2, true)
	}
}

// module sets one bit of codeword pos, wrapping positions that fall
// outside the matrix. bit 0 is the most significant.
func (p *Placement) module(row, col, pos, bit int) {
	if row < 0 {
		row += p.numRows
		col += 4 - ((p.numRows + 4) % 8)
	}
	if col < 0 {
		col += p.numCols
		row += 4 - ((p.numCols + 4) % 8)
	}
	v := pos < len(p.codewords) && p.codewords[pos]&(0x80>>uint(bit)) != 0
	p.setBit(col, row, v)
}

// utahShape holds the offsets of the eight modules of a regular codeword
// relative to its lower right module, most significant bit first.
var utahShape = [8][2]int{
	{-2, -2}, {-2, -1},
	{-1, -2}, {-1, -1}, {-1, 0},
	{0, -2}, {0, -1}, {0, 0},
}

func (p *Placement) utah(row, col, pos int) {
	for bit, off := range utahShape {
		p.module(row+off[0], col+off[1], pos, bit)
	}
}

// cornerShape lists absolute module positions of a corner codeword.
// Negative values count from the bottom row or the rightmost column.
type cornerShape [8][2]int

var (
	corner1 = cornerShape{{-1, 0}, {-1, 1}, {-1, 2}, {0, -2}, {0, -1}, {1, -1}, {2, -1}, {3, -1}}
	corner2 = cornerShape{{-3, 0}, {-2, 0}, {-1, 0}, {0, -4}, {0, -3}, {0, -2}, {0, -1}, {1, -1}}
	corner3 = cornerShape{{-3, 0}, {-2, 0}, {-1, 0}, {0, -2}, {0, -1}, {1, -1}, {2, -1}, {3, -1}}
	corner4 = cornerShape{{-1, 0}, {-1, -1}, {0, -3}, {0, -2}, {0, -1}, {1, -3}, {1, -2}, {1, -1}}
)

func (p *Placement) corner(pos int, shape cornerShape) {
	for bit, rc := range shape {
		row, col := rc[0], rc[1]
		if row < 0 {
			row += p.numRows
		}
		if col < 0 {
			col += p.numCols
		}
		p.module(row, col, pos, bit)
	}
}
