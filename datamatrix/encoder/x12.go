// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

type x12Encoder struct{}

func (x12Encoder) encode(c *encoderContext) error {
	var buffer []byte
	for c.hasMoreCharacters() {
		ch := c.current()
		c.pos++
		v, ok := x12Value(ch)
		if !ok {
			return illegalCharacter(ch, x12Encodation)
		}
		buffer = append(buffer, v)
		if len(buffer)%3 == 0 {
			buffer = writeNextTriplet(c, buffer)
			if newMode := lookAheadTest(c.msg, c.pos, x12Encodation); newMode != x12Encodation {
				c.signalEncoderChange(asciiEncodation)
				break
			}
		}
	}
	return x12HandleEOD(c, buffer)
}

func x12Value(ch byte) (byte, bool) {
	switch {
	case ch == '\r':
		return 0, true
	case ch == '*':
		return 1, true
	case ch == '>':
		return 2, true
	case ch == ' ':
		return 3, true
	case ch >= '0' && ch <= '9':
		return ch - 48 + 4, true
	case ch >= 'A' && ch <= 'Z':
		return ch - 65 + 14, true
	}
	return 0, false
}

// x12HandleEOD hands characters of an incomplete triplet back to ASCII.
func x12HandleEOD(c *encoderContext, buffer []byte) error {
	if err := c.updateSymbolInfo(); err != nil {
		return err
	}
	available := c.available(c.codewordCount())
	c.pos -= len(buffer)
	if c.remainingCharacters() > 1 || available > 1 || c.remainingCharacters() != available {
		c.writeCodeword(x12Unlatch)
	}
	if c.newEncoding < 0 {
		c.signalEncoderChange(asciiEncodation)
	}
	return nil
}
