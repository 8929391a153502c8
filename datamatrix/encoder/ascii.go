// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

type asciiEncoder struct{}

func (asciiEncoder) encode(c *encoderContext) error {
	if consecutiveDigitCount(c.msg, c.pos) >= 2 {
		c.writeCodeword(encodeASCIIDigits(c.msg[c.pos], c.msg[c.pos+1]))
		c.pos += 2
		return nil
	}
	ch := c.current()
	newMode := lookAheadTest(c.msg, c.pos, asciiEncodation)
	if newMode != asciiEncodation {
		switch newMode {
		case base256Encodation:
			c.writeCodeword(latchToBase256)
		case c40Encodation:
			c.writeCodeword(latchToC40)
		case x12Encodation:
			c.writeCodeword(latchToX12)
		case textEncodation:
			c.writeCodeword(latchToText)
		case edifactEncodation:
			c.writeCodeword(latchToEdifact)
		}
		c.signalEncoderChange(newMode)
		return nil
	}
	if isExtendedASCII(ch) {
		c.writeCodewords(upperShift, ch-128+1)
	} else {
		c.writeCodeword(ch + 1)
	}
	c.pos++
	return nil
}

// encodeASCIIDigits packs a digit pair into a single codeword, 130+nn.
func encodeASCIIDigits(d1, d2 byte) byte {
	return byte(int(d1-'0')*10 + int(d2-'0') + 130)
}
