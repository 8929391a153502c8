// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
)

type base256Encoder struct{}

func (base256Encoder) encode(c *encoderContext) error {
	buffer := []byte{0} // length field
	for c.hasMoreCharacters() {
		buffer = append(buffer, c.current())
		c.pos++
		if newMode := lookAheadTest(c.msg, c.pos, base256Encodation); newMode != base256Encodation {
			c.signalEncoderChange(asciiEncodation)
			break
		}
	}
	dataCount := len(buffer) - 1
	currentSize := c.codewordCount() + dataCount + 1
	if err := c.updateSymbolInfoFor(currentSize); err != nil {
		return err
	}
	mustPad := c.available(currentSize) > 0
	// A zero length field runs to the end of the symbol.
	if c.hasMoreCharacters() || mustPad {
		switch {
		case dataCount <= 249:
			buffer[0] = byte(dataCount)
		case dataCount <= 1555:
			buffer[0] = byte(dataCount/250 + 249)
			buffer = append(buffer[:1], append([]byte{byte(dataCount % 250)}, buffer[1:]...)...)
		default:
			return fmt.Errorf("base256 run of %d bytes: %w", dataCount, barcodegen.ErrCapacityExceeded)
		}
	}
	for _, b := range buffer {
		c.writeCodeword(randomize255State(b, c.codewordCount()+1))
	}
	return nil
}
