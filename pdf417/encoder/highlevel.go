// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/charset"
)

// Compaction mode constants
const (
	textCompaction    = 0
	byteCompaction    = 1
	numericCompaction = 2
)

// Text compaction submode constants
const (
	submodeAlpha       = 0
	submodeLower       = 1
	submodeMixed       = 2
	submodePunctuation = 3
)

// Mode latch and shift constants
const (
	latchToText       = 900
	latchToBytePadded = 901
	latchToNumeric    = 902
	shiftToByte       = 913
	latchToByte       = 924
	eciUserDefined    = 925
	eciGeneralPurpose = 926
	eciCharset        = 927
	padCodeword       = 900
)

// Compaction represents possible PDF417 barcode compaction types.
type Compaction int

const (
	// CompactionAuto selects compaction mode automatically.
	CompactionAuto Compaction = iota
	// CompactionText forces text compaction mode.
	CompactionText
	// CompactionByte forces byte compaction mode.
	CompactionByte
	// CompactionNumeric forces numeric compaction mode.
	CompactionNumeric
)

func (c Compaction) String() string {
	switch c {
	case CompactionText:
		return "text"
	case CompactionByte:
		return "byte"
	case CompactionNumeric:
		return "numeric"
	default:
		return "auto"
	}
}

// ParseCompaction resolves "auto", "text", "byte" or "numeric". The empty
// string means auto.
func ParseCompaction(s string) (Compaction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CompactionAuto, nil
	case "text":
		return CompactionText, nil
	case "byte", "binary":
		return CompactionByte, nil
	case "numeric":
		return CompactionNumeric, nil
	}
	return CompactionAuto, fmt.Errorf("unknown PDF417 compaction %q: %w", s, barcodegen.ErrConfiguration)
}

// DefaultEncoding is the character set assumed by a reader when no ECI is
// present.
const DefaultEncoding = "Cp437"

// textMixedRaw is the raw code table for text compaction Mixed sub-mode.
var textMixedRaw = []byte{
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 38, 13, 9, 44, 58,
	35, 45, 46, 36, 47, 43, 37, 42, 61, 94, 0, 32, 0, 0, 0,
}

// textPunctuationRaw is the raw code table for text compaction Punctuation sub-mode.
var textPunctuationRaw = []byte{
	59, 60, 62, 64, 91, 92, 93, 95, 96, 126, 33, 13, 9, 44, 58,
	10, 45, 46, 36, 47, 34, 124, 42, 40, 41, 63, 123, 125, 39, 0,
}

// mixed is the inverse lookup table for the mixed sub-mode.
var mixed [128]int

// punctuation is the inverse lookup table for the punctuation sub-mode.
var punctuation [128]int

func init() {
	for i := range mixed {
		mixed[i] = -1
	}
	for i, b := range textMixedRaw {
		if b > 0 {
			mixed[b] = i
		}
	}
	for i := range punctuation {
		punctuation[i] = -1
	}
	for i, b := range textPunctuationRaw {
		if b > 0 {
			punctuation[b] = i
		}
	}
}

// HighLevelOptions selects the compaction and character set of
// EncodeHighLevel.
type HighLevelOptions struct {
	Compaction Compaction
	// Charset converts byte compacted characters. Nil means Cp437.
	Charset *charset.Charset
	// ECI, when set, is written before the data.
	ECI *charset.ECI
}

// EncodeHighLevel performs high-level encoding of a PDF417 message using the
// algorithm described in annex P of ISO/IEC 15438:2001(E). It returns the
// data codewords without the length descriptor.
func EncodeHighLevel(msg string, opts *HighLevelOptions) ([]int, error) {
	if msg == "" {
		return nil, fmt.Errorf("empty message not allowed: %w", barcodegen.ErrInvalidMessage)
	}
	if opts == nil {
		opts = &HighLevelOptions{}
	}
	cs := opts.Charset
	if cs == nil {
		var err error
		if cs, err = charset.Lookup(DefaultEncoding); err != nil {
			return nil, err
		}
	}

	runes := []rune(msg)
	cws := make([]int, 0, len(runes))
	if opts.ECI != nil {
		var err error
		if cws, err = encodingECI(opts.ECI.Value, cws); err != nil {
			return nil, err
		}
	}

	switch opts.Compaction {
	case CompactionText:
		for i, ch := range runes {
			if !isText(ch) {
				return nil, nonEncodable(ch, i)
			}
		}
		cws, _ = encodeText(runes, 0, len(runes), cws, submodeAlpha)

	case CompactionByte:
		b, err := encodeBytes(cs, runes)
		if err != nil {
			return nil, err
		}
		cws = encodeBinary(b, byteCompaction, cws)

	case CompactionNumeric:
		for i, ch := range runes {
			if !isDigit(ch) {
				return nil, nonEncodable(ch, i)
			}
		}
		cws = append(cws, latchToNumeric)
		cws = encodeNumeric(runes, 0, len(runes), cws)

	default:
		var err error
		if cws, err = encodeAuto(runes, cs, cws); err != nil {
			return nil, err
		}
	}
	return cws, nil
}

func encodeAuto(runes []rune, cs *charset.Charset, cws []int) ([]int, error) {
	msgLen := len(runes)
	p := 0
	encodingMode := textCompaction // Default mode, see 4.4.2.1
	textSubMode := submodeAlpha
	for p < msgLen {
		n := determineConsecutiveDigitCount(runes, p)
		if n >= 13 {
			cws = append(cws, latchToNumeric)
			encodingMode = numericCompaction
			textSubMode = submodeAlpha // Reset after latch
			cws = encodeNumeric(runes, p, n, cws)
			p += n
			continue
		}
		t := determineConsecutiveTextCount(runes, p)
		if t >= 5 || n == msgLen {
			if encodingMode != textCompaction {
				cws = append(cws, latchToText)
				encodingMode = textCompaction
				textSubMode = submodeAlpha // start with submode alpha after latch
			}
			cws, textSubMode = encodeText(runes, p, t, cws, textSubMode)
			p += t
			continue
		}
		b := determineConsecutiveBinaryCount(runes, p)
		if b == 0 {
			b = 1
		}
		bytes, err := encodeBytes(cs, runes[p:p+b])
		if err != nil {
			return nil, err
		}
		if len(bytes) == 1 && encodingMode == textCompaction {
			// Switch for one byte (instead of latch)
			cws = encodeBinary(bytes, textCompaction, cws)
		} else {
			// Mode latch performed by encodeBinary()
			cws = encodeBinary(bytes, encodingMode, cws)
			encodingMode = byteCompaction
			textSubMode = submodeAlpha // Reset after latch
		}
		p += b
	}
	return cws, nil
}

func nonEncodable(ch rune, pos int) error {
	return fmt.Errorf("non-encodable character detected: %q (Unicode: %d) at position #%d: %w",
		ch, ch, pos, barcodegen.ErrInvalidMessage)
}

func encodeBytes(cs *charset.Charset, runes []rune) ([]byte, error) {
	b, err := cs.Encode(string(runes))
	if errors.Is(err, charset.ErrUnencodable) {
		return nil, fmt.Errorf("%v: %w", err, barcodegen.ErrInvalidMessage)
	}
	return b, err
}

// encodingECI writes an ECI designator: 927 for values below 900, 926
// for general purpose values and 925 for user defined ones.
func encodingECI(eci int, cws []int) ([]int, error) {
	switch {
	case eci >= 0 && eci < 900:
		return append(cws, eciCharset, eci), nil
	case eci >= 900 && eci < 810900:
		return append(cws, eciGeneralPurpose, eci/900-1, eci%900), nil
	case eci >= 810900 && eci < 811800:
		return append(cws, eciUserDefined, eci-810900), nil
	}
	return nil, fmt.Errorf("ECI number not in valid range from 0..811799, but was %d: %w", eci, barcodegen.ErrConfiguration)
}

// encodeText encodes parts of the message using Text Compaction as described
// in ISO/IEC 15438:2001(E), chapter 4.4.2.
func encodeText(msg []rune, startpos, count int, cws []int, initialSubmode int) ([]int, int) {
	tmp := make([]int, 0, count)
	submode := initialSubmode
	idx := 0

	for {
		ch := msg[startpos+idx]
		switch submode {
		case submodeAlpha:
			if isAlphaUpper(ch) {
				if ch == ' ' {
					tmp = append(tmp, 26) // space
				} else {
					tmp = append(tmp, int(ch-'A'))
				}
			} else {
				if isAlphaLower(ch) {
					submode = submodeLower
					tmp = append(tmp, 27) // ll
					continue
				} else if isMixed(ch) {
					submode = submodeMixed
					tmp = append(tmp, 28) // ml
					continue
				} else {
					tmp = append(tmp, 29, punctuation[ch]) // ps
				}
			}

		case submodeLower:
			if isAlphaLower(ch) {
				if ch == ' ' {
					tmp = append(tmp, 26) // space
				} else {
					tmp = append(tmp, int(ch-'a'))
				}
			} else {
				if isAlphaUpper(ch) {
					tmp = append(tmp, 27, int(ch-'A')) // as
				} else if isMixed(ch) {
					submode = submodeMixed
					tmp = append(tmp, 28) // ml
					continue
				} else {
					tmp = append(tmp, 29, punctuation[ch]) // ps
				}
			}

		case submodeMixed:
			if isMixed(ch) {
				tmp = append(tmp, mixed[ch])
			} else {
				if isAlphaUpper(ch) {
					submode = submodeAlpha
					tmp = append(tmp, 28) // al
					continue
				} else if isAlphaLower(ch) {
					submode = submodeLower
					tmp = append(tmp, 27) // ll
					continue
				} else {
					if idx+1 < count && isPunctuation(msg[startpos+idx+1]) {
						submode = submodePunctuation
						tmp = append(tmp, 25) // pl
						continue
					}
					tmp = append(tmp, 29, punctuation[ch]) // ps
				}
			}

		default: // submodePunctuation
			if isPunctuation(ch) {
				tmp = append(tmp, punctuation[ch])
			} else {
				submode = submodeAlpha
				tmp = append(tmp, 29) // al
				continue
			}
		}
		idx++
		if idx >= count {
			break
		}
	}

	h := 0
	for i, v := range tmp {
		if i%2 != 0 {
			h = h*30 + v
			cws = append(cws, h)
		} else {
			h = v
		}
	}
	if len(tmp)%2 != 0 {
		cws = append(cws, h*30+29) // ps, or al in punctuation
		if submode == submodePunctuation {
			submode = submodeAlpha
		}
	}
	return cws, submode
}

// encodeBinary encodes bytes using Byte Compaction as described in
// ISO/IEC 15438:2001(E), chapter 4.4.3.
func encodeBinary(bytes []byte, startmode int, cws []int) []int {
	count := len(bytes)
	if count == 1 && startmode == textCompaction {
		cws = append(cws, shiftToByte)
	} else if count%6 == 0 {
		cws = append(cws, latchToByte)
	} else {
		cws = append(cws, latchToBytePadded)
	}

	idx := 0
	// Encode sixpacks
	var chars [5]int
	for count-idx >= 6 {
		var t int64
		for i := 0; i < 6; i++ {
			t <<= 8
			t += int64(bytes[idx+i])
		}
		for i := 0; i < 5; i++ {
			chars[i] = int(t % 900)
			t /= 900
		}
		for i := len(chars) - 1; i >= 0; i-- {
			cws = append(cws, chars[i])
		}
		idx += 6
	}
	// Encode rest (remaining n<5 bytes if any)
	for _, b := range bytes[idx:] {
		cws = append(cws, int(b))
	}
	return cws
}

// encodeNumeric encodes parts of the message using Numeric Compaction:
// groups of up to 44 digits, prefixed with 1, in base 900.
func encodeNumeric(msg []rune, startpos, count int, cws []int) []int {
	idx := 0
	num900 := big.NewInt(900)
	mod := new(big.Int)
	for idx < count {
		length := min(44, count-idx)
		part := "1" + string(msg[startpos+idx:startpos+idx+length])
		bigint, _ := new(big.Int).SetString(part, 10)

		tmp := make([]int, 0, length/3+1)
		for {
			bigint.DivMod(bigint, num900, mod)
			tmp = append(tmp, int(mod.Int64()))
			if bigint.Sign() == 0 {
				break
			}
		}

		// Reverse and append
		for i := len(tmp) - 1; i >= 0; i-- {
			cws = append(cws, tmp[i])
		}
		idx += length
	}
	return cws
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaUpper(ch rune) bool {
	return ch == ' ' || (ch >= 'A' && ch <= 'Z')
}

func isAlphaLower(ch rune) bool {
	return ch == ' ' || (ch >= 'a' && ch <= 'z')
}

func isMixed(ch rune) bool {
	return ch >= 0 && ch < 128 && mixed[ch] != -1
}

func isPunctuation(ch rune) bool {
	return ch >= 0 && ch < 128 && punctuation[ch] != -1
}

func isText(ch rune) bool {
	return ch == '\t' || ch == '\n' || ch == '\r' || (ch >= 32 && ch <= 126)
}

// determineConsecutiveDigitCount determines the number of consecutive
// characters that are encodable using numeric compaction.
func determineConsecutiveDigitCount(msg []rune, startpos int) int {
	count := 0
	for idx := startpos; idx < len(msg) && isDigit(msg[idx]); idx++ {
		count++
	}
	return count
}

// determineConsecutiveTextCount determines the number of consecutive
// characters that are encodable using text compaction.
func determineConsecutiveTextCount(msg []rune, startpos int) int {
	msgLen := len(msg)
	idx := startpos
	for idx < msgLen {
		numericCount := 0
		for numericCount < 13 && idx < msgLen && isDigit(msg[idx]) {
			numericCount++
			idx++
		}
		if numericCount >= 13 {
			return idx - startpos - numericCount
		}
		if numericCount > 0 {
			// Heuristic: All text-encodable chars or digits are binary encodable
			continue
		}

		// Check if character is encodable
		if !isText(msg[idx]) {
			break
		}
		idx++
	}
	return idx - startpos
}

// determineConsecutiveBinaryCount determines the number of consecutive
// characters that are encodable using binary compaction. It stops at the
// start of a run of 13 digits or of 5 text characters.
func determineConsecutiveBinaryCount(msg []rune, startpos int) int {
	msgLen := len(msg)
	idx := startpos
	for idx < msgLen {
		numericCount := 0
		for i := idx; numericCount < 13 && i < msgLen && isDigit(msg[i]); i++ {
			numericCount++
		}
		if numericCount >= 13 {
			return idx - startpos
		}
		textCount := 0
		for i := idx; textCount < 5 && i < msgLen && isText(msg[i]); i++ {
			textCount++
		}
		if textCount >= 5 {
			return idx - startpos
		}
		idx++
	}
	return idx - startpos
}
