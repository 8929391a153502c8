package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/checkutil"
)

// Code128Codesets is a set of Code128 codesets the encoder may use.
type Code128Codesets int

const (
	CodesetA Code128Codesets = 1 << iota
	CodesetB
	CodesetC

	CodesetAll = CodesetA | CodesetB | CodesetC
)

// ParseCode128Codesets parses a codeset restriction such as "ABC", "AB" or
// "c". An empty string allows all codesets.
func ParseCode128Codesets(s string) (Code128Codesets, error) {
	if strings.TrimSpace(s) == "" {
		return CodesetAll, nil
	}
	var cs Code128Codesets
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'A':
			cs |= CodesetA
		case 'B':
			cs |= CodesetB
		case 'C':
			cs |= CodesetC
		case ' ', ',':
		default:
			return 0, fmt.Errorf("unknown Code128 codeset %q: %w", r, barcodegen.ErrConfiguration)
		}
	}
	if cs == 0 {
		return 0, fmt.Errorf("no Code128 codeset in %q: %w", s, barcodegen.ErrConfiguration)
	}
	return cs, nil
}

func (cs Code128Codesets) String() string {
	var sb strings.Builder
	if cs&CodesetA != 0 {
		sb.WriteByte('A')
	}
	if cs&CodesetB != 0 {
		sb.WriteByte('B')
	}
	if cs&CodesetC != 0 {
		sb.WriteByte('C')
	}
	return sb.String()
}

const (
	setNone = iota
	setA
	setB
	setC
)

func (cs Code128Codesets) allows(set int) bool {
	switch set {
	case setA:
		return cs&CodesetA != 0
	case setB:
		return cs&CodesetB != 0
	case setC:
		return cs&CodesetC != 0
	}
	return false
}

func isCode128FNC(r rune) bool {
	return r >= Code128EscapeFNC1 && r <= Code128EscapeFNC4
}

// inCodeset reports whether r can be encoded in set A or B.
func inCodeset(r rune, set int) bool {
	if isCode128FNC(r) {
		return true
	}
	switch set {
	case setA:
		return r >= 0 && r < 96
	case setB:
		return r >= 32 && r < 128
	}
	return false
}

// exclusiveCodeset returns the only one of A and B that can encode r, or
// setNone when both or neither can.
func exclusiveCodeset(r rune) int {
	switch {
	case r >= 0 && r < 32:
		return setA
	case r >= 96 && r < 128:
		return setB
	}
	return setNone
}

// Code128Symbol is a single encoded Code128 symbol character.
type Code128Symbol struct {
	Value int
	// Label is "idxN" for plain values or the name of a special character.
	Label string
}

// Code128Encoder turns messages into Code128 symbol values.
type Code128Encoder struct {
	codesets Code128Codesets
}

// NewCode128Encoder returns an encoder restricted to codesets.
func NewCode128Encoder(codesets Code128Codesets) *Code128Encoder {
	if codesets == 0 {
		codesets = CodesetAll
	}
	return &Code128Encoder{codesets: codesets}
}

// Encode validates msg and returns its symbol characters, from the start
// character through the checksum character. The stop pattern is not
// included.
func (e *Code128Encoder) Encode(msg string) ([]Code128Symbol, error) {
	runes := []rune(msg)
	if len(runes) == 0 {
		return nil, fmt.Errorf("empty Code128 message: %w", barcodegen.ErrInvalidMessage)
	}
	for i, r := range runes {
		if r > 127 && !isCode128FNC(r) {
			return nil, fmt.Errorf("character %q at position %d is outside the Code128 character set: %w",
				r, i, barcodegen.ErrInvalidMessage)
		}
	}

	var symbols []Code128Symbol
	add := func(v int, label string) {
		symbols = append(symbols, Code128Symbol{Value: v, Label: label})
	}
	set := setNone
	for pos := 0; pos < len(runes); {
		r := runes[pos]
		target, shift, err := e.next(runes, pos, set)
		if err != nil {
			return nil, err
		}
		switch {
		case set == setNone:
			start := code128StartA + target - setA
			add(start, code128Label(start, target))
			set = target
		case shift:
			add(code128Shift, code128Label(code128Shift, set))
			v := code128Value(r, target)
			add(v, code128Label(v, target))
			pos++
			continue
		case target != set:
			var latch int
			switch target {
			case setA:
				latch = code128CodeA
			case setB:
				latch = code128CodeB
			default:
				latch = code128CodeC
			}
			add(latch, code128Label(latch, set))
			set = target
		}
		if set == setC && r != Code128EscapeFNC1 {
			v := int(r-'0')*10 + int(runes[pos+1]-'0')
			add(v, fmt.Sprintf("idx%d", v))
			pos += 2
			continue
		}
		v := code128Value(r, set)
		add(v, code128Label(v, set))
		pos++
	}

	values := make([]int, len(symbols))
	for i, s := range symbols {
		values[i] = s.Value
	}
	check := checkutil.Mod103(values)
	add(check, fmt.Sprintf("idx%d", check))
	return symbols, nil
}

// next decides the codeset for the character at pos. shift is set when a
// single character should be encoded through a shift codeword.
func (e *Code128Encoder) next(runes []rune, pos, cur int) (target int, shift bool, err error) {
	r := runes[pos]
	if r == Code128EscapeFNC1 {
		if cur != setNone {
			return cur, false, nil
		}
		if pos+1 < len(runes) {
			t, _, err := e.next(runes, pos+1, setNone)
			return t, false, err
		}
		if e.codesets.allows(setB) || e.codesets.allows(setA) {
			return e.pickAB(runes, pos), false, nil
		}
		return setC, false, nil
	}

	run := checkutil.DigitRun(runes, pos)
	if cur == setC && run >= 2 {
		return setC, false, nil
	}
	allowsAB := e.codesets.allows(setA) || e.codesets.allows(setB)
	if e.codesets.allows(setC) && cur != setC {
		atEnd := pos+run == len(runes)
		if run >= 4 || (run >= 2 && atEnd) {
			// An odd trailing run costs one codeword less when its first
			// digit stays in the current set.
			if !(atEnd && run%2 == 1 && cur != setNone && allowsAB) {
				return setC, false, nil
			}
		}
	}
	if !allowsAB {
		if run >= 2 {
			return setC, false, nil
		}
		return 0, false, fmt.Errorf("character %q at position %d cannot be encoded in codeset C: %w",
			r, pos, barcodegen.ErrInvalidMessage)
	}

	if cur == setA || cur == setB {
		if inCodeset(r, cur) && e.codesets.allows(cur) {
			return cur, false, nil
		}
		other := setA + setB - cur
		if e.codesets.allows(other) && inCodeset(r, other) {
			single := pos+1 == len(runes) || inCodeset(runes[pos+1], cur)
			return other, single, nil
		}
		return 0, false, e.unencodable(r, pos)
	}

	t := e.pickAB(runes, pos)
	if !inCodeset(r, t) {
		return 0, false, e.unencodable(r, pos)
	}
	return t, false, nil
}

// pickAB chooses between codesets A and B from the first character ahead
// that only one of them can encode.
func (e *Code128Encoder) pickAB(runes []rune, pos int) int {
	a, b := e.codesets.allows(setA), e.codesets.allows(setB)
	if a && !b {
		return setA
	}
	if b && !a {
		return setB
	}
	for i := pos; i < len(runes); i++ {
		if s := exclusiveCodeset(runes[i]); s != setNone {
			return s
		}
	}
	return setB
}

func (e *Code128Encoder) unencodable(r rune, pos int) error {
	return fmt.Errorf("character %q at position %d cannot be encoded with codesets %s: %w",
		r, pos, e.codesets, barcodegen.ErrInvalidMessage)
}

func code128Value(r rune, set int) int {
	switch r {
	case Code128EscapeFNC1:
		return code128FNC1
	case Code128EscapeFNC2:
		return code128FNC2
	case Code128EscapeFNC3:
		return code128FNC3
	case Code128EscapeFNC4:
		if set == setA {
			return code128FNC4A
		}
		return code128FNC4B
	}
	if set == setA && r < 32 {
		return int(r) + 64
	}
	return int(r) - 32
}

func code128Label(v, set int) string {
	if set == setC && v < code128CodeC {
		return fmt.Sprintf("idx%d", v)
	}
	switch v {
	case code128FNC3:
		return "FNC3/96"
	case code128FNC2:
		return "FNC2/97"
	case code128Shift:
		return "Shift/98"
	case code128CodeC:
		return "CodeC/99"
	case code128CodeB:
		return "CodeB/FNC4"
	case code128CodeA:
		return "CodeA/FNC4"
	case code128FNC1:
		return "FNC1"
	case code128StartA:
		return "StartA"
	case code128StartB:
		return "StartB"
	case code128StartC:
		return "StartC"
	}
	return fmt.Sprintf("idx%d", v)
}

// Code128HumanReadable strips function character escapes from msg.
func Code128HumanReadable(msg string) string {
	return strings.Map(func(r rune) rune {
		if isCode128FNC(r) {
			return -1
		}
		return r
	}, msg)
}

// Code128Width returns the width in modules of a symbol with n symbol
// characters, start and checksum included.
func Code128Width(n int) int {
	return 11*n + 13
}

// EmitCode128 sends symbols to h as a single row, one bar group per symbol
// character followed by the stop pattern.
func EmitCode128(h barcodegen.ClassicHandler, msg string, symbols []Code128Symbol) {
	h.StartBarcode(msg, Code128HumanReadable(msg))
	h.StartRow()
	for i, s := range symbols {
		group := barcodegen.GroupMessageCharacter
		switch i {
		case 0:
			group = barcodegen.GroupStartCharacter
		case len(symbols) - 1:
			group = barcodegen.GroupChecksumCharacter
		}
		h.StartBarGroup(group, s.Label)
		emitPattern(h, Code128Patterns[s.Value], true)
		h.EndBarGroup()
	}
	h.StartBarGroup(barcodegen.GroupStopCharacter, "")
	emitPattern(h, Code128Patterns[code128Stop], true)
	h.EndBarGroup()
	h.EndRow()
	h.EndBarcode()
}
