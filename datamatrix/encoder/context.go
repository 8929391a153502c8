// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

// encoderContext is the state shared by the encodation modes while a
// message is compacted. msg holds one byte per message character.
type encoderContext struct {
	msg       []byte
	codewords []byte
	pos       int
	skipAtEnd int

	shape            SymbolShapeHint
	minSize, maxSize *Size
	symbolInfo       *SymbolInfo

	// newEncoding is the mode requested by the running encoder, or -1.
	newEncoding int
}

func newEncoderContext(msg []byte, opts *Options) *encoderContext {
	return &encoderContext{
		msg:         msg,
		codewords:   make([]byte, 0, len(msg)),
		shape:       opts.Shape,
		minSize:     opts.MinSize,
		maxSize:     opts.MaxSize,
		newEncoding: -1,
	}
}

func (c *encoderContext) current() byte { return c.msg[c.pos] }

func (c *encoderContext) writeCodewords(cws ...byte) {
	c.codewords = append(c.codewords, cws...)
}

func (c *encoderContext) writeCodeword(cw byte) {
	c.codewords = append(c.codewords, cw)
}

func (c *encoderContext) codewordCount() int { return len(c.codewords) }

func (c *encoderContext) signalEncoderChange(mode int) { c.newEncoding = mode }

func (c *encoderContext) resetEncoderSignal() { c.newEncoding = -1 }

func (c *encoderContext) totalMessageCharCount() int { return len(c.msg) - c.skipAtEnd }

func (c *encoderContext) hasMoreCharacters() bool { return c.pos < c.totalMessageCharCount() }

func (c *encoderContext) remainingCharacters() int { return c.totalMessageCharCount() - c.pos }

// updateSymbolInfo makes sure the selected symbol holds the codewords
// written so far.
func (c *encoderContext) updateSymbolInfo() error {
	return c.updateSymbolInfoFor(c.codewordCount())
}

// updateSymbolInfoFor selects a larger symbol when n codewords no longer
// fit the current one.
func (c *encoderContext) updateSymbolInfoFor(n int) error {
	if c.symbolInfo != nil && n <= c.symbolInfo.DataCapacity {
		return nil
	}
	si, err := Lookup(n, c.shape, c.minSize, c.maxSize)
	if err != nil {
		return err
	}
	c.symbolInfo = si
	return nil
}

func (c *encoderContext) resetSymbolInfo() { c.symbolInfo = nil }

// available returns the unused data capacity of the selected symbol once
// n codewords have been written.
func (c *encoderContext) available(n int) int {
	return c.symbolInfo.DataCapacity - n
}
