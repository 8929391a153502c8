// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/charset"
)

// Reserved codeword values.
const (
	asciiPad          = 129
	latchToC40        = 230
	latchToBase256    = 231
	fnc1              = 232
	structuredAppend  = 233
	readerProgramming = 234
	upperShift        = 235
	macro05           = 236
	macro06           = 237
	latchToX12        = 238
	latchToText       = 239
	latchToEdifact    = 240
	eciCodeword       = 241
	c40Unlatch        = 254
	x12Unlatch        = 254
)

const (
	macro05Header = "[)>\x1e05\x1d"
	macro06Header = "[)>\x1e06\x1d"
	macroTrailer  = "\x1e\x04"
)

// Encodation modes. The values index encoders.
const (
	asciiEncodation = iota
	c40Encodation
	textEncodation
	x12Encodation
	edifactEncodation
	base256Encodation
)

var modeNames = [...]string{"ASCII", "C40", "Text", "X12", "EDIFACT", "Base256"}

// modeEncoder compacts characters starting at the context position until
// it finishes the message or signals a change of mode.
type modeEncoder interface {
	encode(c *encoderContext) error
}

var encoders = [...]modeEncoder{
	asciiEncodation:   asciiEncoder{},
	c40Encodation:     &c40Encoder{mode: c40Encodation, encodeChar: encodeC40Char},
	textEncodation:    &c40Encoder{mode: textEncodation, encodeChar: encodeTextChar},
	x12Encodation:     x12Encoder{},
	edifactEncodation: edifactEncoder{},
	base256Encodation: base256Encoder{},
}

// StructuredAppend places a symbol within a sequence of up to 16 symbols
// that share a file identification.
type StructuredAppend struct {
	// Position is the 1-based index of this symbol.
	Position int
	// Total is the number of symbols in the sequence, 2 to 16.
	Total int
	// FileID holds two values in 1..254 identifying the sequence.
	FileID [2]int
}

func (sa *StructuredAppend) codewords() ([]byte, error) {
	switch {
	case sa.Total < 2 || sa.Total > 16:
		return nil, fmt.Errorf("structured append total %d not in 2..16: %w", sa.Total, barcodegen.ErrConfiguration)
	case sa.Position < 1 || sa.Position > sa.Total:
		return nil, fmt.Errorf("structured append position %d not in 1..%d: %w", sa.Position, sa.Total, barcodegen.ErrConfiguration)
	}
	for _, id := range sa.FileID {
		if id < 1 || id > 254 {
			return nil, fmt.Errorf("structured append file id %d not in 1..254: %w", id, barcodegen.ErrConfiguration)
		}
	}
	seq := byte((sa.Position-1)<<4 | (17 - sa.Total))
	return []byte{structuredAppend, seq, byte(sa.FileID[0]), byte(sa.FileID[1])}, nil
}

// Options constrains symbol selection and adds optional prefixes.
type Options struct {
	Shape            SymbolShapeHint
	MinSize, MaxSize *Size
	// ECI, when set, designates the character set of the message bytes.
	ECI              *charset.ECI
	StructuredAppend *StructuredAppend
}

// eciCodewords encodes an ECI designator: 241 followed by one to three
// bytes depending on the value.
func eciCodewords(value int) ([]byte, error) {
	switch {
	case value < 0 || value > 999999:
		return nil, fmt.Errorf("ECI value %d out of range: %w", value, barcodegen.ErrConfiguration)
	case value <= 126:
		return []byte{eciCodeword, byte(value + 1)}, nil
	case value <= 16382:
		v := value - 127
		return []byte{eciCodeword, byte(v/254 + 128), byte(v%254 + 1)}, nil
	default:
		v := value - 16383
		return []byte{eciCodeword, byte(v/64516 + 192), byte((v/254)%254 + 1), byte(v%254 + 1)}, nil
	}
}

// EncodeHighLevel compacts msg, one byte per character, into data
// codewords padded to the capacity of the smallest fitting symbol.
func EncodeHighLevel(msg []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = &Options{}
	}
	if len(msg) == 0 {
		return nil, fmt.Errorf("empty message: %w", barcodegen.ErrInvalidMessage)
	}
	if opts.MinSize != nil && opts.MaxSize != nil &&
		(opts.MinSize.Width > opts.MaxSize.Width || opts.MinSize.Height > opts.MaxSize.Height) {
		return nil, fmt.Errorf("minimum size %s exceeds maximum size %s: %w",
			opts.MinSize, opts.MaxSize, barcodegen.ErrConfiguration)
	}
	c := newEncoderContext(msg, opts)

	if sa := opts.StructuredAppend; sa != nil {
		cws, err := sa.codewords()
		if err != nil {
			return nil, err
		}
		c.writeCodewords(cws...)
	}
	switch {
	case bytes.HasPrefix(msg, []byte(macro05Header)) && bytes.HasSuffix(msg, []byte(macroTrailer)):
		c.writeCodeword(macro05)
		c.skipAtEnd = len(macroTrailer)
		c.pos += len(macro05Header)
	case bytes.HasPrefix(msg, []byte(macro06Header)) && bytes.HasSuffix(msg, []byte(macroTrailer)):
		c.writeCodeword(macro06)
		c.skipAtEnd = len(macroTrailer)
		c.pos += len(macro06Header)
	}
	if opts.ECI != nil {
		cws, err := eciCodewords(opts.ECI.Value)
		if err != nil {
			return nil, err
		}
		c.writeCodewords(cws...)
	}

	mode := asciiEncodation
	for c.hasMoreCharacters() {
		if err := encoders[mode].encode(c); err != nil {
			return nil, err
		}
		if c.newEncoding >= 0 {
			mode = c.newEncoding
			c.resetEncoderSignal()
		}
	}
	n := c.codewordCount()
	if err := c.updateSymbolInfo(); err != nil {
		return nil, err
	}
	capacity := c.symbolInfo.DataCapacity
	if n < capacity && mode != asciiEncodation && mode != base256Encodation && mode != edifactEncodation {
		c.writeCodeword(c40Unlatch)
	}
	if c.codewordCount() < capacity {
		c.writeCodeword(asciiPad)
	}
	for c.codewordCount() < capacity {
		c.writeCodeword(randomize253State(c.codewordCount() + 1))
	}
	return c.codewords, nil
}

// randomize253State returns the pad codeword for the 1-based codeword
// position.
func randomize253State(position int) byte {
	pseudoRandom := ((149 * position) % 253) + 1
	v := asciiPad + pseudoRandom
	if v <= 254 {
		return byte(v)
	}
	return byte(v - 254)
}

// randomize255State scrambles a Base256 byte at the 1-based codeword
// position.
func randomize255State(ch byte, position int) byte {
	pseudoRandom := ((149 * position) % 255) + 1
	v := int(ch) + pseudoRandom
	if v <= 255 {
		return byte(v)
	}
	return byte(v - 256)
}

// lookAheadTest returns the mode that encodes the rest of msg most
// compactly from startpos, given the current mode.
func lookAheadTest(msg []byte, startpos, currentMode int) int {
	newMode := lookAheadTestIntern(msg, startpos, currentMode)
	switch {
	case currentMode == x12Encodation && newMode == x12Encodation:
		end := min(startpos+3, len(msg))
		for i := startpos; i < end; i++ {
			if !isNativeX12(msg[i]) {
				return asciiEncodation
			}
		}
	case currentMode == edifactEncodation && newMode == edifactEncodation:
		end := min(startpos+4, len(msg))
		for i := startpos; i < end; i++ {
			if !isNativeEDIFACT(msg[i]) {
				return asciiEncodation
			}
		}
	}
	return newMode
}

// lookAheadTestIntern implements the Annex P heuristic. Costs are kept in
// float32 so that thirds and quarters round exactly as the reference
// algorithm does.
func lookAheadTestIntern(msg []byte, startpos, currentMode int) int {
	if startpos >= len(msg) {
		return currentMode
	}
	var charCounts [6]float32
	if currentMode == asciiEncodation {
		charCounts = [6]float32{0, 1, 1, 1, 1, 1.25}
	} else {
		charCounts = [6]float32{1, 2, 2, 2, 2, 2.25}
		charCounts[currentMode] = 0
	}

	var intCharCounts [6]int
	var mins [6]int
	charsProcessed := 0
	for {
		if startpos+charsProcessed == len(msg) {
			m := findMinimums(&charCounts, &intCharCounts, &mins)
			if intCharCounts[asciiEncodation] == m {
				return asciiEncodation
			}
			if minimumCount(&mins) == 1 {
				switch {
				case mins[base256Encodation] > 0:
					return base256Encodation
				case mins[edifactEncodation] > 0:
					return edifactEncodation
				case mins[textEncodation] > 0:
					return textEncodation
				case mins[x12Encodation] > 0:
					return x12Encodation
				}
			}
			return c40Encodation
		}

		ch := msg[startpos+charsProcessed]
		charsProcessed++

		switch {
		case isDigit(ch):
			charCounts[asciiEncodation] += 0.5
		case isExtendedASCII(ch):
			charCounts[asciiEncodation] = ceil32(charCounts[asciiEncodation]) + 2
		default:
			charCounts[asciiEncodation] = ceil32(charCounts[asciiEncodation]) + 1
		}

		switch {
		case isNativeC40(ch):
			charCounts[c40Encodation] += 2.0 / 3.0
		case isExtendedASCII(ch):
			charCounts[c40Encodation] += 8.0 / 3.0
		default:
			charCounts[c40Encodation] += 4.0 / 3.0
		}

		switch {
		case isNativeText(ch):
			charCounts[textEncodation] += 2.0 / 3.0
		case isExtendedASCII(ch):
			charCounts[textEncodation] += 8.0 / 3.0
		default:
			charCounts[textEncodation] += 4.0 / 3.0
		}

		switch {
		case isNativeX12(ch):
			charCounts[x12Encodation] += 2.0 / 3.0
		case isExtendedASCII(ch):
			charCounts[x12Encodation] += 13.0 / 3.0
		default:
			charCounts[x12Encodation] += 10.0 / 3.0
		}

		switch {
		case isNativeEDIFACT(ch):
			charCounts[edifactEncodation] += 3.0 / 4.0
		case isExtendedASCII(ch):
			charCounts[edifactEncodation] += 17.0 / 4.0
		default:
			charCounts[edifactEncodation] += 13.0 / 4.0
		}

		charCounts[base256Encodation]++

		if charsProcessed < 4 {
			continue
		}
		findMinimums(&charCounts, &intCharCounts, &mins)
		ic := &intCharCounts

		if ic[asciiEncodation] < min(ic[base256Encodation], ic[c40Encodation], ic[textEncodation],
			ic[x12Encodation], ic[edifactEncodation]) {
			return asciiEncodation
		}
		if ic[base256Encodation] < ic[asciiEncodation] ||
			ic[base256Encodation]+1 < min(ic[c40Encodation], ic[textEncodation], ic[x12Encodation], ic[edifactEncodation]) {
			return base256Encodation
		}
		if ic[edifactEncodation]+1 < min(ic[base256Encodation], ic[c40Encodation], ic[textEncodation],
			ic[x12Encodation], ic[asciiEncodation]) {
			return edifactEncodation
		}
		if ic[textEncodation]+1 < min(ic[base256Encodation], ic[c40Encodation], ic[edifactEncodation],
			ic[x12Encodation], ic[asciiEncodation]) {
			return textEncodation
		}
		if ic[x12Encodation]+1 < min(ic[base256Encodation], ic[c40Encodation], ic[edifactEncodation],
			ic[textEncodation], ic[asciiEncodation]) {
			return x12Encodation
		}
		if ic[c40Encodation]+1 < min(ic[asciiEncodation], ic[base256Encodation], ic[edifactEncodation], ic[textEncodation]) {
			if ic[c40Encodation] < ic[x12Encodation] {
				return c40Encodation
			}
			if ic[c40Encodation] == ic[x12Encodation] {
				for p := startpos + charsProcessed + 1; p < len(msg); p++ {
					tc := msg[p]
					if isX12TermSep(tc) {
						return x12Encodation
					}
					if !isNativeX12(tc) {
						break
					}
				}
				return c40Encodation
			}
		}
	}
}

func ceil32(f float32) float32 { return float32(math.Ceil(float64(f))) }

// findMinimums rounds the costs up into intCharCounts, marks the modes
// sharing the lowest cost in mins and returns that cost.
func findMinimums(charCounts *[6]float32, intCharCounts, mins *[6]int) int {
	m := math.MaxInt
	*mins = [6]int{}
	for i := range charCounts {
		current := int(math.Ceil(float64(charCounts[i])))
		intCharCounts[i] = current
		if m > current {
			m = current
			*mins = [6]int{}
		}
		if m == current {
			mins[i]++
		}
	}
	return m
}

func minimumCount(mins *[6]int) int {
	n := 0
	for _, v := range mins {
		n += v
	}
	return n
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isExtendedASCII(ch byte) bool { return ch >= 128 }

func isNativeC40(ch byte) bool {
	return ch == ' ' || isDigit(ch) || (ch >= 'A' && ch <= 'Z')
}

func isNativeText(ch byte) bool {
	return ch == ' ' || isDigit(ch) || (ch >= 'a' && ch <= 'z')
}

func isNativeX12(ch byte) bool {
	return isX12TermSep(ch) || ch == ' ' || isDigit(ch) || (ch >= 'A' && ch <= 'Z')
}

func isX12TermSep(ch byte) bool { return ch == '\r' || ch == '*' || ch == '>' }

func isNativeEDIFACT(ch byte) bool { return ch >= ' ' && ch <= '^' }

// consecutiveDigitCount returns the length of the digit run at startpos.
func consecutiveDigitCount(msg []byte, startpos int) int {
	idx := startpos
	for idx < len(msg) && isDigit(msg[idx]) {
		idx++
	}
	return idx - startpos
}

func illegalCharacter(ch byte, mode int) error {
	return fmt.Errorf("character 0x%02x cannot be encoded in %s: %w", ch, modeNames[mode], barcodegen.ErrInvalidMessage)
}
