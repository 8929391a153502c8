package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var encodings = map[*ECI]encoding.Encoding{
	ECICp437:      charmap.CodePage437,
	ECIISO8859_1:  charmap.ISO8859_1,
	ECIISO8859_2:  charmap.ISO8859_2,
	ECIISO8859_3:  charmap.ISO8859_3,
	ECIISO8859_4:  charmap.ISO8859_4,
	ECIISO8859_5:  charmap.ISO8859_5,
	ECIISO8859_6:  charmap.ISO8859_6,
	ECIISO8859_7:  charmap.ISO8859_7,
	ECIISO8859_8:  charmap.ISO8859_8,
	ECIISO8859_9:  charmap.ISO8859_9,
	ECIISO8859_10: charmap.ISO8859_10,
	ECIISO8859_13: charmap.ISO8859_13,
	ECIISO8859_14: charmap.ISO8859_14,
	ECIISO8859_15: charmap.ISO8859_15,
	ECIISO8859_16: charmap.ISO8859_16,
	ECISJIS:       japanese.ShiftJIS,
	ECICp1250:     charmap.Windows1250,
	ECICp1251:     charmap.Windows1251,
	ECICp1252:     charmap.Windows1252,
	ECICp1256:     charmap.Windows1256,
	ECIUTF16BE:    unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	ECIUTF8:       unicode.UTF8,
	ECIBig5:       traditionalchinese.Big5,
	ECIGB18030:    simplifiedchinese.GB18030,
	ECIEUC_KR:     korean.EUCKR,
}

// Charset is a resolved character set: its ECI designator, when it has one,
// and the encoder that produces its bytes.
type Charset struct {
	ECI      *ECI
	encoding encoding.Encoding
	ascii    bool
}

// Lookup resolves name to a Charset. Names known to the ECI table resolve
// directly; anything else goes through the IANA index and carries no ECI.
func Lookup(name string) (*Charset, error) {
	if eci := GetECIByName(name); eci != nil {
		if eci == ECIASCII {
			return &Charset{ECI: eci, encoding: charmap.ISO8859_1, ascii: true}, nil
		}
		if enc, ok := encodings[eci]; ok {
			return &Charset{ECI: eci, encoding: enc}, nil
		}
		name = eci.GoName
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCharset)
	}
	return &Charset{encoding: enc}, nil
}

// Name returns the canonical name of the character set.
func (c *Charset) Name() string {
	if c.ECI != nil {
		return c.ECI.Name
	}
	if name, err := ianaindex.IANA.Name(c.encoding); err == nil {
		return name
	}
	return "unknown"
}

// Encode converts s to the bytes of the character set.
func (c *Charset) Encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("invalid UTF-8 input: %w", ErrUnencodable)
	}
	b, err := c.encoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", c.Name(), err, ErrUnencodable)
	}
	if c.ascii {
		for i, v := range b {
			if v >= 0x80 {
				return nil, fmt.Errorf("%s: byte 0x%02x at %d: %w", c.Name(), v, i, ErrUnencodable)
			}
		}
	}
	return b, nil
}

// Encode resolves name and converts s to its bytes.
func Encode(name, s string) ([]byte, error) {
	cs, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return cs.Encode(s)
}
