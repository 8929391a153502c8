// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
)

const edifactUnlatch = 31

type edifactEncoder struct{}

func (edifactEncoder) encode(c *encoderContext) error {
	var buffer []byte
	for c.hasMoreCharacters() {
		ch := c.current()
		switch {
		case ch >= ' ' && ch <= '?':
			buffer = append(buffer, ch)
		case ch >= '@' && ch <= '^':
			buffer = append(buffer, ch-64)
		default:
			return illegalCharacter(ch, edifactEncodation)
		}
		c.pos++

		if len(buffer) >= 4 {
			c.writeCodewords(edifactCodewords(buffer)...)
			buffer = buffer[4:]
			if newMode := lookAheadTest(c.msg, c.pos, edifactEncodation); newMode != edifactEncodation {
				c.signalEncoderChange(asciiEncodation)
				break
			}
		}
	}
	buffer = append(buffer, edifactUnlatch)
	err := edifactHandleEOD(c, buffer)
	c.signalEncoderChange(asciiEncodation)
	return err
}

func edifactHandleEOD(c *encoderContext, buffer []byte) error {
	count := len(buffer)
	if count == 0 {
		return nil
	}
	if count == 1 {
		// Only the unlatch is left.
		if err := c.updateSymbolInfo(); err != nil {
			return err
		}
		available := c.available(c.codewordCount())
		remaining := asciiCodewordCount(c.msg[c.pos:c.totalMessageCharCount()])
		if remaining > available {
			if err := c.updateSymbolInfoFor(c.codewordCount() + 1); err != nil {
				return err
			}
			available = c.available(c.codewordCount())
		}
		if remaining <= available && available <= 2 {
			return nil // no unlatch
		}
	}
	if count > 4 {
		return fmt.Errorf("EDIFACT buffer holds %d values: %w", count, barcodegen.ErrInvalidMessage)
	}

	restChars := count - 1
	encoded := edifactCodewords(buffer)
	restInASCII := !c.hasMoreCharacters() && restChars <= 2

	if restChars <= 2 {
		if err := c.updateSymbolInfoFor(c.codewordCount() + restChars); err != nil {
			return err
		}
		if c.available(c.codewordCount()) >= 3 {
			restInASCII = false
			if err := c.updateSymbolInfoFor(c.codewordCount() + len(encoded)); err != nil {
				return err
			}
		}
	}

	if restInASCII {
		c.resetSymbolInfo()
		c.pos -= restChars
	} else {
		c.writeCodewords(encoded...)
	}
	return nil
}

// edifactCodewords packs up to four 6-bit values into three bytes, dropping
// bytes that carry no value.
func edifactCodewords(sb []byte) []byte {
	var v int
	for i := 0; i < 4; i++ {
		v <<= 6
		if i < len(sb) {
			v |= int(sb[i])
		}
	}
	cws := []byte{byte(v >> 16), byte(v >> 8), byte(v)}
	return cws[:min(len(sb), 3)]
}

// asciiCodewordCount returns the number of codewords ASCII encodation needs
// for msg. Digit pairs share a codeword and extended characters take two.
func asciiCodewordCount(msg []byte) int {
	n := 0
	for i := 0; i < len(msg); {
		switch {
		case consecutiveDigitCount(msg, i) >= 2:
			i += 2
		case isExtendedASCII(msg[i]):
			n++
			i++
		default:
			i++
		}
		n++
	}
	return n
}
