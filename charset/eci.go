// Package charset maps character set names to ECI values and to the
// golang.org/x/text encoders that turn messages into symbol bytes.
package charset

import (
	"errors"
	"strings"
)

var (
	// ErrFormatECI indicates an invalid ECI value.
	ErrFormatECI = errors.New("charset: invalid ECI value")

	// ErrUnknownCharset is returned for names that resolve to no encoding.
	ErrUnknownCharset = errors.New("charset: unknown character set")

	// ErrUnencodable is returned when a message holds a character the
	// encoding cannot represent.
	ErrUnencodable = errors.New("charset: character not representable")
)

// ECI represents a Character Set Extended Channel Interpretation.
type ECI struct {
	Value   int
	Name    string
	GoName  string // IANA name understood by golang.org/x/text
	Aliases []string
}

// pre-defined ECIs
var (
	ECICp437      = &ECI{0, "Cp437", "IBM437", []string{"CP437", "437"}}
	ECIISO8859_1  = &ECI{1, "ISO8859_1", "ISO-8859-1", []string{"Latin1"}}
	ECIISO8859_2  = &ECI{4, "ISO8859_2", "ISO-8859-2", nil}
	ECIISO8859_3  = &ECI{5, "ISO8859_3", "ISO-8859-3", nil}
	ECIISO8859_4  = &ECI{6, "ISO8859_4", "ISO-8859-4", nil}
	ECIISO8859_5  = &ECI{7, "ISO8859_5", "ISO-8859-5", nil}
	ECIISO8859_6  = &ECI{8, "ISO8859_6", "ISO-8859-6", nil}
	ECIISO8859_7  = &ECI{9, "ISO8859_7", "ISO-8859-7", nil}
	ECIISO8859_8  = &ECI{10, "ISO8859_8", "ISO-8859-8", nil}
	ECIISO8859_9  = &ECI{11, "ISO8859_9", "ISO-8859-9", nil}
	ECIISO8859_10 = &ECI{12, "ISO8859_10", "ISO-8859-10", nil}
	ECIISO8859_11 = &ECI{13, "ISO8859_11", "ISO-8859-11", nil}
	ECIISO8859_13 = &ECI{15, "ISO8859_13", "ISO-8859-13", nil}
	ECIISO8859_14 = &ECI{16, "ISO8859_14", "ISO-8859-14", nil}
	ECIISO8859_15 = &ECI{17, "ISO8859_15", "ISO-8859-15", nil}
	ECIISO8859_16 = &ECI{18, "ISO8859_16", "ISO-8859-16", nil}
	ECISJIS       = &ECI{20, "SJIS", "Shift_JIS", nil}
	ECICp1250     = &ECI{21, "Cp1250", "windows-1250", nil}
	ECICp1251     = &ECI{22, "Cp1251", "windows-1251", nil}
	ECICp1252     = &ECI{23, "Cp1252", "windows-1252", nil}
	ECICp1256     = &ECI{24, "Cp1256", "windows-1256", nil}
	ECIUTF16BE    = &ECI{25, "UnicodeBigUnmarked", "UTF-16BE", []string{"UnicodeBig"}}
	ECIUTF8       = &ECI{26, "UTF8", "UTF-8", nil}
	ECIASCII      = &ECI{27, "ASCII", "US-ASCII", nil}
	ECIBig5       = &ECI{28, "Big5", "Big5", nil}
	ECIGB18030    = &ECI{29, "GB18030", "GB18030", []string{"GB2312", "EUC_CN", "GBK"}}
	ECIEUC_KR     = &ECI{30, "EUC_KR", "EUC-KR", nil}
)

var (
	valueToECI map[int]*ECI
	nameToECI  map[string]*ECI
)

func init() {
	valueToECI = make(map[int]*ECI)
	nameToECI = make(map[string]*ECI)

	allECIs := []*ECI{
		ECICp437, ECIISO8859_1, ECIISO8859_2, ECIISO8859_3, ECIISO8859_4,
		ECIISO8859_5, ECIISO8859_6, ECIISO8859_7, ECIISO8859_8, ECIISO8859_9,
		ECIISO8859_10, ECIISO8859_11, ECIISO8859_13, ECIISO8859_14,
		ECIISO8859_15, ECIISO8859_16, ECISJIS, ECICp1250, ECICp1251,
		ECICp1252, ECICp1256, ECIUTF16BE, ECIUTF8, ECIASCII, ECIBig5,
		ECIGB18030, ECIEUC_KR,
	}

	// Legacy values that alias the same character set.
	extraValues := map[*ECI][]int{
		ECICp437:     {0, 2},
		ECIISO8859_1: {1, 3},
		ECIASCII:     {27, 170},
	}

	for _, eci := range allECIs {
		if vals, ok := extraValues[eci]; ok {
			for _, v := range vals {
				valueToECI[v] = eci
			}
		} else {
			valueToECI[eci.Value] = eci
		}
		nameToECI[normalize(eci.Name)] = eci
		nameToECI[normalize(eci.GoName)] = eci
		for _, alias := range eci.Aliases {
			nameToECI[normalize(alias)] = eci
		}
	}
}

// normalize folds case and drops separators so that "ISO-8859-1",
// "iso8859_1" and "ISO8859_1" compare equal.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(name)))
}

// GetECIByValue returns the ECI for the given value, or an error if invalid.
// Values without a known character set return a nil ECI.
func GetECIByValue(value int) (*ECI, error) {
	if value < 0 || value >= 900 {
		return nil, ErrFormatECI
	}
	return valueToECI[value], nil
}

// GetECIByName returns the ECI for the given encoding name, or nil.
func GetECIByName(name string) *ECI {
	return nameToECI[normalize(name)]
}
