package charset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetECIByName(t *testing.T) {
	tests := []struct {
		name string
		want *ECI
	}{
		{"Cp437", ECICp437},
		{"IBM437", ECICp437},
		{"ISO-8859-1", ECIISO8859_1},
		{"iso8859_1", ECIISO8859_1},
		{"UTF-8", ECIUTF8},
		{"utf8", ECIUTF8},
		{"Shift_JIS", ECISJIS},
		{"windows-1252", ECICp1252},
		{"GBK", ECIGB18030},
		{"nonsense", nil},
	}
	for _, tc := range tests {
		if got := GetECIByName(tc.name); got != tc.want {
			t.Errorf("GetECIByName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestGetECIByValue(t *testing.T) {
	for _, v := range []int{0, 2} {
		if eci, err := GetECIByValue(v); err != nil || eci != ECICp437 {
			t.Errorf("GetECIByValue(%d) = %v, %v", v, eci, err)
		}
	}
	if eci, err := GetECIByValue(26); err != nil || eci != ECIUTF8 {
		t.Errorf("GetECIByValue(26) = %v, %v", eci, err)
	}
	if _, err := GetECIByValue(900); !errors.Is(err, ErrFormatECI) {
		t.Errorf("GetECIByValue(900) error = %v", err)
	}
	if eci, err := GetECIByValue(899); err != nil || eci != nil {
		t.Errorf("GetECIByValue(899) = %v, %v", eci, err)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		charset string
		in      string
		want    []byte
	}{
		{"Cp437", "AÄé", []byte{'A', 0x8e, 0x82}},
		{"ISO-8859-1", "AÄé", []byte{'A', 0xc4, 0xe9}},
		{"UTF-8", "Ä", []byte{0xc3, 0x84}},
		{"UTF-16BE", "A", []byte{0x00, 'A'}},
		{"windows-1252", "€", []byte{0x80}},
		{"US-ASCII", "abc", []byte("abc")},
	}
	for _, tc := range tests {
		t.Run(tc.charset, func(t *testing.T) {
			got, err := Encode(tc.charset, tc.in)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("bytes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode("no-such-charset", "x"); !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("unknown charset error = %v", err)
	}
	if _, err := Encode("ISO-8859-1", "日本"); !errors.Is(err, ErrUnencodable) {
		t.Errorf("unencodable error = %v", err)
	}
	if _, err := Encode("US-ASCII", "é"); !errors.Is(err, ErrUnencodable) {
		t.Errorf("ascii error = %v", err)
	}
}

func TestLookupName(t *testing.T) {
	cs, err := Lookup("latin1")
	if err != nil {
		t.Fatal(err)
	}
	if cs.ECI != ECIISO8859_1 || cs.Name() != "ISO8859_1" {
		t.Errorf("Lookup(latin1) = %v %q", cs.ECI, cs.Name())
	}
}
