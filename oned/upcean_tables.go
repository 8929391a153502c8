package oned

// UPC/EAN guard patterns.
var (
	UPCEANStartEndPattern = []int{1, 1, 1}
	UPCEANMiddlePattern   = []int{1, 1, 1, 1, 1}

	// upceanSupplementalGuard opens an add-on, bar first.
	upceanSupplementalGuard = []int{1, 1, 2}
)

// LPatterns contains the "odd" or "L" patterns for encoding UPC/EAN digits,
// space first.
var LPatterns = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// LAndGPatterns includes both the L and G patterns.
// Indices 0-9 are L patterns, 10-19 are G patterns (reversed L patterns).
// Right-hand digits reuse the L widths starting with a bar.
var LAndGPatterns [20][]int

func init() {
	for i := 0; i < 10; i++ {
		LAndGPatterns[i] = LPatterns[i]
	}
	for i := 10; i < 20; i++ {
		widths := LPatterns[i-10]
		reversed := make([]int, len(widths))
		for j := 0; j < len(widths); j++ {
			reversed[j] = widths[len(widths)-j-1]
		}
		LAndGPatterns[i] = reversed
	}
}

// ean13FirstDigitEncodings selects the G-parity digits of the left half of
// an EAN-13 symbol for each implied first digit. Bit 5-i set means digit i
// of the left half uses the G table.
var ean13FirstDigitEncodings = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// supplemental5Parities selects the G-parity digits of a 5-digit add-on by
// its checksum. Bit 4-i set means digit i uses the G table.
var supplemental5Parities = [10]int{
	0x18, 0x14, 0x12, 0x11, 0x0C, 0x06, 0x03, 0x0A, 0x09, 0x05,
}
