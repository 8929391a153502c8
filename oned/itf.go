package oned

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/checkutil"
)

// itfPatterns holds the narrow (1) and wide (2) widths of the five elements
// encoding each digit.
var itfPatterns = [10][5]int{
	{1, 1, 2, 2, 1}, // 0
	{2, 1, 1, 1, 2}, // 1
	{1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1}, // 3
	{1, 1, 2, 1, 2}, // 4
	{2, 1, 2, 1, 1}, // 5
	{1, 2, 2, 1, 1}, // 6
	{1, 1, 1, 2, 2}, // 7
	{2, 1, 1, 2, 1}, // 8
	{1, 2, 1, 2, 1}, // 9
}

var (
	itfStartPattern = []int{1, 1, 1, 1}
	itfStopPattern  = []int{2, 1, 1}
)

// itf14Length is the number of ITF-14 digits including the check digit.
const itf14Length = 14

// ResolveInterleaved2Of5 validates msg and returns the digits to encode.
// AUTO behaves like IGNORE. Odd-length results are zero-padded on the left
// when padOdd is set and rejected otherwise.
func ResolveInterleaved2Of5(msg string, mode barcodegen.ChecksumMode, padOdd bool) (string, error) {
	if err := checkutil.CheckNumeric(msg); err != nil {
		return "", err
	}
	digits := msg
	switch mode {
	case barcodegen.ChecksumAdd:
		check, err := checkutil.Mod10(msg)
		if err != nil {
			return "", err
		}
		digits += string(rune('0' + check))
	case barcodegen.ChecksumCheck:
		ok, err := checkutil.VerifyMod10(msg)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("check digit of %q does not match: %w", msg, barcodegen.ErrChecksumMismatch)
		}
	}
	if len(digits)%2 != 0 {
		if !padOdd {
			return "", fmt.Errorf("interleaved 2 of 5 needs an even number of digits, got %d: %w",
				len(digits), barcodegen.ErrInvalidMessage)
		}
		digits = "0" + digits
	}
	return digits, nil
}

// ResolveITF14 validates msg as ITF-14 and returns the 14 digits to encode.
// AUTO adds the check digit to 13 digits and verifies it on 14.
func ResolveITF14(msg string, mode barcodegen.ChecksumMode) (string, error) {
	if err := checkutil.CheckNumeric(msg); err != nil {
		return "", err
	}
	if mode == barcodegen.ChecksumAuto {
		switch len(msg) {
		case itf14Length - 1:
			mode = barcodegen.ChecksumAdd
		case itf14Length:
			mode = barcodegen.ChecksumCheck
		}
	}
	want := itf14Length
	if mode == barcodegen.ChecksumAdd {
		want = itf14Length - 1
	}
	if len(msg) != want {
		return "", fmt.Errorf("ITF-14 message must have %d digits in %s mode, got %d: %w",
			want, mode, len(msg), barcodegen.ErrInvalidMessage)
	}
	return ResolveInterleaved2Of5(msg, mode, false)
}

// Interleaved2Of5Width returns the width of an even number of digits in
// narrow and wide elements. Quiet zones are not included.
func Interleaved2Of5Width(digits string) (narrow, wide int) {
	count := func(pattern []int) {
		for _, w := range pattern {
			if w == 1 {
				narrow++
			} else {
				wide++
			}
		}
	}
	count(itfStartPattern)
	for i := 0; i < len(digits); i++ {
		count(itfPatterns[digits[i]-'0'][:])
	}
	count(itfStopPattern)
	return narrow, wide
}

// EmitInterleaved2Of5 sends an even number of digits to h. The first digit
// of each pair supplies the bar widths and the second the space widths.
func EmitInterleaved2Of5(h barcodegen.ClassicHandler, msg, digits string) {
	h.StartBarcode(msg, digits)
	h.StartRow()
	h.StartBarGroup(barcodegen.GroupStartCharacter, "")
	emitPattern(h, itfStartPattern, true)
	h.EndBarGroup()
	encoding := make([]int, 10)
	for i := 0; i+1 < len(digits); i += 2 {
		d1 := digits[i] - '0'
		d2 := digits[i+1] - '0'
		for j := 0; j < 5; j++ {
			encoding[2*j] = itfPatterns[d1][j]
			encoding[2*j+1] = itfPatterns[d2][j]
		}
		h.StartBarGroup(barcodegen.GroupMessageCharacter, digits[i:i+2])
		emitPattern(h, encoding, true)
		h.EndBarGroup()
	}
	h.StartBarGroup(barcodegen.GroupStopCharacter, "")
	emitPattern(h, itfStopPattern, true)
	h.EndBarGroup()
	h.EndRow()
	h.EndBarcode()
}
