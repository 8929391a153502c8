// Package checkutil holds the check digit and checksum routines shared by the
// linear symbologies.
package checkutil

import (
	"fmt"

	"github.com/ericlevine/barcodegen"
)

// IsNumeric reports whether s is non-empty and contains only ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CheckNumeric returns an ErrInvalidMessage error unless s is numeric.
func CheckNumeric(s string) error {
	for i, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("illegal character %q at position %d, only digits are allowed: %w",
				r, i, barcodegen.ErrInvalidMessage)
		}
	}
	if s == "" {
		return fmt.Errorf("empty message: %w", barcodegen.ErrInvalidMessage)
	}
	return nil
}

// Mod10 computes the UPC/EAN style check digit of a numeric payload. Weights
// alternate 3 and 1 starting with 3 at the rightmost payload digit.
func Mod10(payload string) (int, error) {
	if err := CheckNumeric(payload); err != nil {
		return 0, err
	}
	sum := 0
	weight := 3
	for i := len(payload) - 1; i >= 0; i-- {
		sum += int(payload[i]-'0') * weight
		weight = 4 - weight
	}
	return (10 - sum%10) % 10, nil
}

// VerifyMod10 reports whether the last digit of s is the Mod10 check digit of
// the digits before it.
func VerifyMod10(s string) (bool, error) {
	if len(s) < 2 {
		return false, fmt.Errorf("message %q too short to carry a check digit: %w", s, barcodegen.ErrInvalidMessage)
	}
	check, err := Mod10(s[:len(s)-1])
	if err != nil {
		return false, err
	}
	return int(s[len(s)-1]-'0') == check, nil
}

// Supplemental5Checksum computes the parity selector of a 5-digit add-on:
// 3 times the digits in odd positions plus 9 times those in even positions,
// modulo 10.
func Supplemental5Checksum(s string) (int, error) {
	if len(s) != 5 {
		return 0, fmt.Errorf("5-digit add-on expected, got %q: %w", s, barcodegen.ErrInvalidMessage)
	}
	if err := CheckNumeric(s); err != nil {
		return 0, err
	}
	sum := 0
	for i := 0; i < 5; i++ {
		d := int(s[i] - '0')
		if i%2 == 0 {
			sum += 3 * d
		} else {
			sum += 9 * d
		}
	}
	return sum % 10, nil
}

// Supplemental2Parity returns the parity selector of a 2-digit add-on, its
// value modulo 4.
func Supplemental2Parity(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("2-digit add-on expected, got %q: %w", s, barcodegen.ErrInvalidMessage)
	}
	if err := CheckNumeric(s); err != nil {
		return 0, err
	}
	return (int(s[0]-'0')*10 + int(s[1]-'0')) % 4, nil
}

// Mod103 computes the Code128 checksum of the codewords, the first of which
// is the start codeword. Codeword i after the start is weighted by i.
func Mod103(codewords []int) int {
	if len(codewords) == 0 {
		return 0
	}
	sum := codewords[0]
	for i := 1; i < len(codewords); i++ {
		sum += i * codewords[i]
	}
	return sum % 103
}

// DigitRun returns the number of consecutive ASCII digits in s starting at
// start.
func DigitRun(s []rune, start int) int {
	n := 0
	for i := start; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n++
	}
	return n
}
