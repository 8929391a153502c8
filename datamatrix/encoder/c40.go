// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
)

// c40CharEncoder appends the C40 or Text values of ch to buf and returns
// the extended buffer and the number of values appended.
type c40CharEncoder func(ch byte, buf []byte) ([]byte, int)

// c40Encoder implements both C40 and Text, which differ only in their
// character sets.
type c40Encoder struct {
	mode       int
	encodeChar c40CharEncoder
}

func (e *c40Encoder) encode(c *encoderContext) error {
	var buffer []byte
	for c.hasMoreCharacters() {
		ch := c.current()
		c.pos++

		var lastCharSize int
		buffer, lastCharSize = e.encodeChar(ch, buffer)

		unwritten := len(buffer) / 3 * 2
		curCodewordCount := c.codewordCount() + unwritten
		if err := c.updateSymbolInfoFor(curCodewordCount); err != nil {
			return err
		}
		available := c.available(curCodewordCount)

		if !c.hasMoreCharacters() {
			// Avoid ending with a lone value in the last triplet.
			if len(buffer)%3 == 2 && available != 2 {
				buffer, lastCharSize = e.backtrackOneCharacter(c, buffer, lastCharSize)
			}
			for len(buffer)%3 == 1 && (lastCharSize > 3 || available != 1) {
				buffer, lastCharSize = e.backtrackOneCharacter(c, buffer, lastCharSize)
			}
			break
		}

		if len(buffer)%3 == 0 {
			if newMode := lookAheadTest(c.msg, c.pos, e.mode); newMode != e.mode {
				// ASCII performs the latch into the new mode.
				c.signalEncoderChange(asciiEncodation)
				break
			}
		}
	}
	return e.handleEOD(c, buffer)
}

// backtrackOneCharacter drops the values of the last consumed character
// and returns the size of the character before it.
func (e *c40Encoder) backtrackOneCharacter(c *encoderContext, buffer []byte, lastCharSize int) ([]byte, int) {
	buffer = buffer[:len(buffer)-lastCharSize]
	c.pos--
	c.resetSymbolInfo()
	if len(buffer) == 0 {
		return buffer, 0
	}
	_, size := e.encodeChar(c.msg[c.pos-1], nil)
	return buffer, size
}

func writeNextTriplet(c *encoderContext, buffer []byte) []byte {
	v := 1600*int(buffer[0]) + 40*int(buffer[1]) + int(buffer[2]) + 1
	c.writeCodewords(byte(v/256), byte(v%256))
	return buffer[3:]
}

func (e *c40Encoder) handleEOD(c *encoderContext, buffer []byte) error {
	unwritten := len(buffer) / 3 * 2
	rest := len(buffer) % 3

	curCodewordCount := c.codewordCount() + unwritten
	if err := c.updateSymbolInfoFor(curCodewordCount); err != nil {
		return err
	}
	available := c.available(curCodewordCount)

	switch {
	case rest == 2:
		buffer = append(buffer, 0) // Shift 1
		for len(buffer) >= 3 {
			buffer = writeNextTriplet(c, buffer)
		}
		if c.hasMoreCharacters() {
			c.writeCodeword(c40Unlatch)
		}
	case available == 1 && rest == 1:
		for len(buffer) >= 3 {
			buffer = writeNextTriplet(c, buffer)
		}
		if c.hasMoreCharacters() {
			c.writeCodeword(c40Unlatch)
		}
		// The last character goes into the final codeword as ASCII.
		c.pos--
	case rest == 0:
		for len(buffer) >= 3 {
			buffer = writeNextTriplet(c, buffer)
		}
		if available > 0 || c.hasMoreCharacters() {
			c.writeCodeword(c40Unlatch)
		}
	default:
		return fmt.Errorf("%s ends with %d values and %d codewords available: %w",
			modeNames[e.mode], rest, available, barcodegen.ErrInvalidMessage)
	}
	c.signalEncoderChange(asciiEncodation)
	return nil
}

func encodeC40Char(ch byte, sb []byte) ([]byte, int) {
	switch {
	case ch == ' ':
		return append(sb, 3), 1
	case ch >= '0' && ch <= '9':
		return append(sb, ch-48+4), 1
	case ch >= 'A' && ch <= 'Z':
		return append(sb, ch-65+14), 1
	case ch < ' ':
		return append(sb, 0, ch), 2 // Shift 1
	case ch <= '/':
		return append(sb, 1, ch-33), 2 // Shift 2
	case ch <= '@':
		return append(sb, 1, ch-58+15), 2
	case ch <= '_':
		return append(sb, 1, ch-91+22), 2
	case ch <= 127:
		return append(sb, 2, ch-96), 2 // Shift 3
	}
	// Shift 2, Upper Shift
	sb, n := encodeC40Char(ch-128, append(sb, 1, 0x1e))
	return sb, n + 2
}

func encodeTextChar(ch byte, sb []byte) ([]byte, int) {
	switch {
	case ch == ' ':
		return append(sb, 3), 1
	case ch >= '0' && ch <= '9':
		return append(sb, ch-48+4), 1
	case ch >= 'a' && ch <= 'z':
		return append(sb, ch-97+14), 1
	case ch < ' ':
		return append(sb, 0, ch), 2
	case ch <= '/':
		return append(sb, 1, ch-33), 2
	case ch <= '@':
		return append(sb, 1, ch-58+15), 2
	case ch >= '[' && ch <= '_':
		return append(sb, 1, ch-91+22), 2
	case ch == '`':
		return append(sb, 2, 0), 2
	case ch <= 'Z':
		return append(sb, 2, ch-65+1), 2
	case ch <= 127:
		return append(sb, 2, ch-123+27), 2
	}
	sb, n := encodeTextChar(ch-128, append(sb, 1, 0x1e))
	return sb, n + 2
}
