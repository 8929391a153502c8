package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/checkutil"
)

// UPCEANVariant is a member of the UPC/EAN family.
type UPCEANVariant int

const (
	UPCA UPCEANVariant = iota
	EAN13
	EAN8
)

// Length returns the number of digits including the check digit.
func (v UPCEANVariant) Length() int {
	switch v {
	case UPCA:
		return 12
	case EAN13:
		return 13
	default:
		return 8
	}
}

// Symbology returns the symbology the variant is registered under.
func (v UPCEANVariant) Symbology() barcodegen.Symbology {
	switch v {
	case UPCA:
		return barcodegen.SymbologyUPCA
	case EAN13:
		return barcodegen.SymbologyEAN13
	default:
		return barcodegen.SymbologyEAN8
	}
}

func (v UPCEANVariant) String() string {
	return v.Symbology().String()
}

// modules returns the width of the main symbol in modules.
func (v UPCEANVariant) modules() int {
	if v == EAN8 {
		return 3 + 4*7 + 5 + 4*7 + 3
	}
	return 3 + 6*7 + 5 + 6*7 + 3
}

// UPCEANEncoder is the operation set shared by the UPC/EAN family.
type UPCEANEncoder interface {
	Variant() UPCEANVariant
	// Validate checks msg, supplemental included, without encoding it.
	Validate(msg string) error
	// ComputeChecksum returns the check digit of a payload that excludes it.
	ComputeChecksum(payload string) (int, error)
	// Encode resolves msg into the digits to be drawn.
	Encode(msg string) (UPCEANSymbol, error)
}

// UPCEANSymbol is a validated UPC/EAN message with its check digit resolved.
type UPCEANSymbol struct {
	Variant UPCEANVariant
	// Digits holds the main digits including the check digit.
	Digits       string
	Supplemental string
}

// UPCEANCodec encodes one UPC/EAN variant under a checksum mode.
type UPCEANCodec struct {
	variant UPCEANVariant
	mode    barcodegen.ChecksumMode
}

var _ UPCEANEncoder = (*UPCEANCodec)(nil)

// NewUPCEANCodec returns a codec for variant.
func NewUPCEANCodec(variant UPCEANVariant, mode barcodegen.ChecksumMode) *UPCEANCodec {
	return &UPCEANCodec{variant: variant, mode: mode}
}

func (c *UPCEANCodec) Variant() UPCEANVariant { return c.variant }

func (c *UPCEANCodec) ComputeChecksum(payload string) (int, error) {
	if want := c.variant.Length() - 1; len(payload) != want {
		return 0, fmt.Errorf("%s payload must be %d digits, got %d: %w",
			c.variant, want, len(payload), barcodegen.ErrInvalidMessage)
	}
	return checkutil.Mod10(payload)
}

func (c *UPCEANCodec) Validate(msg string) error {
	_, err := c.Encode(msg)
	return err
}

// SplitSupplemental splits msg at the '+' separating an add-on.
func SplitSupplemental(msg string) (main, supp string, hasSupp bool) {
	if i := strings.IndexByte(msg, '+'); i >= 0 {
		return msg[:i], msg[i+1:], true
	}
	return msg, "", false
}

func (c *UPCEANCodec) Encode(msg string) (UPCEANSymbol, error) {
	main, supp, hasSupp := SplitSupplemental(msg)
	if hasSupp {
		if len(supp) != 2 && len(supp) != 5 {
			return UPCEANSymbol{}, fmt.Errorf("supplemental %q must have 2 or 5 digits: %w",
				supp, barcodegen.ErrInvalidMessage)
		}
		if err := checkutil.CheckNumeric(supp); err != nil {
			return UPCEANSymbol{}, err
		}
	}
	if err := checkutil.CheckNumeric(main); err != nil {
		return UPCEANSymbol{}, err
	}

	n := c.variant.Length()
	mode := c.mode
	if mode == barcodegen.ChecksumAuto {
		switch len(main) {
		case n - 1:
			mode = barcodegen.ChecksumAdd
		case n:
			mode = barcodegen.ChecksumCheck
		}
	}
	var digits string
	switch mode {
	case barcodegen.ChecksumAdd:
		if len(main) != n-1 {
			return UPCEANSymbol{}, c.lengthError(main, n-1)
		}
		check, err := c.ComputeChecksum(main)
		if err != nil {
			return UPCEANSymbol{}, err
		}
		digits = main + string(rune('0'+check))
	case barcodegen.ChecksumCheck:
		if len(main) != n {
			return UPCEANSymbol{}, c.lengthError(main, n)
		}
		check, err := c.ComputeChecksum(main[:n-1])
		if err != nil {
			return UPCEANSymbol{}, err
		}
		if got := int(main[n-1] - '0'); got != check {
			return UPCEANSymbol{}, fmt.Errorf("%s check digit is %d, expected %d: %w",
				c.variant, got, check, barcodegen.ErrChecksumMismatch)
		}
		digits = main
	case barcodegen.ChecksumIgnore:
		if len(main) != n {
			return UPCEANSymbol{}, c.lengthError(main, n)
		}
		digits = main
	default:
		return UPCEANSymbol{}, fmt.Errorf("%s message must have %d or %d digits, got %d: %w",
			c.variant, n-1, n, len(main), barcodegen.ErrInvalidMessage)
	}
	return UPCEANSymbol{Variant: c.variant, Digits: digits, Supplemental: supp}, nil
}

func (c *UPCEANCodec) lengthError(main string, want int) error {
	return fmt.Errorf("%s message must have %d digits in %s mode, got %d: %w",
		c.variant, want, c.mode, len(main), barcodegen.ErrInvalidMessage)
}

// Width returns the width of s in modules, add-on included.
func (s UPCEANSymbol) Width() int {
	return s.Variant.modules() + supplementalModules(s.Supplemental)
}

// supplementalSeparator is the gap between a symbol and its add-on.
var supplementalSeparator = []int{4, 3}

func supplementalModules(supp string) int {
	n := len(supp)
	if n == 0 {
		return 0
	}
	return patternWidth(supplementalSeparator) + patternWidth(upceanSupplementalGuard) + 7*n + 2*(n-1)
}

// Emit sends s to h. The lead, group and check digits each get their own
// bar group.
func (s UPCEANSymbol) Emit(h barcodegen.ClassicHandler) {
	d := s.Digits
	msg := d
	if s.Supplemental != "" {
		msg += "+" + s.Supplemental
	}
	h.StartBarcode(msg, msg)
	h.StartRow()
	switch s.Variant {
	case UPCA:
		emitGuard(h, UPCEANStartEndPattern, true)
		h.StartBarGroup(barcodegen.GroupUPCEANLead, d[:1])
		emitDigit(h, d[0], false, false)
		h.EndBarGroup()
		emitDigits(h, d[1:6], 0, false)
		emitGuard(h, UPCEANMiddlePattern, false)
		emitDigits(h, d[6:11], 0, true)
		h.StartBarGroup(barcodegen.GroupUPCEANCheck, d[11:])
		emitDigit(h, d[11], false, true)
		h.EndBarGroup()
		emitGuard(h, UPCEANStartEndPattern, true)
	case EAN13:
		h.StartBarGroup(barcodegen.GroupUPCEANLead, d[:1])
		h.EndBarGroup()
		emitGuard(h, UPCEANStartEndPattern, true)
		emitDigits(h, d[1:7], ean13FirstDigitEncodings[d[0]-'0'], false)
		emitGuard(h, UPCEANMiddlePattern, false)
		emitDigits(h, d[7:12], 0, true)
		h.StartBarGroup(barcodegen.GroupUPCEANCheck, d[12:])
		emitDigit(h, d[12], false, true)
		h.EndBarGroup()
		emitGuard(h, UPCEANStartEndPattern, true)
	case EAN8:
		emitGuard(h, UPCEANStartEndPattern, true)
		emitDigits(h, d[:4], 0, false)
		emitGuard(h, UPCEANMiddlePattern, false)
		h.StartBarGroup(barcodegen.GroupUPCEANGroup, d[4:])
		for i := 4; i < 7; i++ {
			emitDigit(h, d[i], false, true)
		}
		h.StartBarGroup(barcodegen.GroupUPCEANCheck, d[7:])
		emitDigit(h, d[7], false, true)
		h.EndBarGroup()
		h.EndBarGroup()
		emitGuard(h, UPCEANStartEndPattern, true)
	}
	if s.Supplemental != "" {
		emitSupplemental(h, s.Supplemental)
	}
	h.EndRow()
	h.EndBarcode()
}

// emitGuard emits a guard pattern. The center guard starts with a space.
func emitGuard(h barcodegen.ClassicHandler, pattern []int, startBar bool) {
	h.StartBarGroup(barcodegen.GroupUPCEANGuard, "")
	emitPattern(h, pattern, startBar)
	h.EndBarGroup()
}

// emitDigits emits a group of digits. Bit len-1-i of parities selects the G
// table for digit i. Right-hand digits use the R table.
func emitDigits(h barcodegen.ClassicHandler, digits string, parities int, right bool) {
	h.StartBarGroup(barcodegen.GroupUPCEANGroup, digits)
	for i := 0; i < len(digits); i++ {
		g := (parities>>(len(digits)-1-i))&1 == 1
		emitDigit(h, digits[i], g, right)
	}
	h.EndBarGroup()
}

func emitDigit(h barcodegen.ClassicHandler, digit byte, g, right bool) {
	idx := int(digit - '0')
	if g {
		idx += 10
	}
	emitPattern(h, LAndGPatterns[idx], right)
}

func emitSupplemental(h barcodegen.ClassicHandler, supp string) {
	var parities int
	if len(supp) == 2 {
		// Value mod 4 selects LL, LG, GL or GG.
		parities, _ = checkutil.Supplemental2Parity(supp)
	} else {
		check, _ := checkutil.Supplemental5Checksum(supp)
		parities = supplemental5Parities[check]
	}
	h.StartBarGroup(barcodegen.GroupUPCEANSupplemental, supp)
	for _, w := range supplementalSeparator {
		h.AddBar(false, w)
	}
	emitPattern(h, upceanSupplementalGuard, true)
	for i := 0; i < len(supp); i++ {
		g := (parities>>(len(supp)-1-i))&1 == 1
		emitDigit(h, supp[i], g, false)
		if i < len(supp)-1 {
			h.AddBar(false, 1)
			h.AddBar(true, 1)
		}
	}
	h.EndBarGroup()
}
