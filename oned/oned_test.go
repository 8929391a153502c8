package oned

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/internal/eventlog"
)

func record(t *testing.T, g barcodegen.ClassicGenerator, msg string) *eventlog.Recorder {
	t.Helper()
	rec := eventlog.NewRecorder()
	if err := g.Generate(rec, msg); err != nil {
		t.Fatalf("Generate(%q): %v", msg, err)
	}
	if err := rec.Err(); err != nil {
		t.Fatalf("Generate(%q): %v", msg, err)
	}
	return rec
}

func values(symbols []Code128Symbol) []int {
	out := make([]int, len(symbols))
	for i, s := range symbols {
		out[i] = s.Value
	}
	return out
}

// --- UPC/EAN ---

func newUPCEAN(t *testing.T, variant UPCEANVariant, mode barcodegen.ChecksumMode) *UPCEANGenerator {
	t.Helper()
	cfg := DefaultUPCEANConfig()
	cfg.ChecksumMode = mode
	g, err := NewUPCEANGenerator(variant, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestUPCEANGroups(t *testing.T) {
	tests := []struct {
		name      string
		variant   UPCEANVariant
		msg       string
		canonical string
		groups    []string
		modules   int
	}{
		{
			name:      "EAN-8 adds check digit",
			variant:   EAN8,
			msg:       "1234567",
			canonical: "12345670",
			groups:    []string{
				"upc-ean-guard:", "upc-ean-group:1234", "upc-ean-guard:",
				"upc-ean-group:5670", "upc-ean-check:0", "upc-ean-guard:",
			},
			modules:   67,
		},
		{
			name:      "EAN-13",
			variant:   EAN13,
			msg:       "5901234123457",
			canonical: "5901234123457",
			groups:    []string{
				"upc-ean-lead:5", "upc-ean-guard:", "upc-ean-group:901234", "upc-ean-guard:",
				"upc-ean-group:12345", "upc-ean-check:7", "upc-ean-guard:",
			},
			modules:   95,
		},
		{
			name:      "UPC-A",
			variant:   UPCA,
			msg:       "036000291452",
			canonical: "036000291452",
			groups:    []string{
				"upc-ean-guard:", "upc-ean-lead:0", "upc-ean-group:36000", "upc-ean-guard:",
				"upc-ean-group:29145", "upc-ean-check:2", "upc-ean-guard:",
			},
			modules:   95,
		},
		{
			name:      "UPC-A with 2-digit add-on",
			variant:   UPCA,
			msg:       "03600029145+12",
			canonical: "036000291452+12",
			groups:    []string{
				"upc-ean-guard:", "upc-ean-lead:0", "upc-ean-group:36000", "upc-ean-guard:",
				"upc-ean-group:29145", "upc-ean-check:2", "upc-ean-guard:", "upc-ean-supp:12",
			},
			modules:   95 + 27,
		},
		{
			name:      "EAN-13 with 5-digit add-on",
			variant:   EAN13,
			msg:       "590123412345+52199",
			canonical: "5901234123457+52199",
			groups:    []string{
				"upc-ean-lead:5", "upc-ean-guard:", "upc-ean-group:901234", "upc-ean-guard:",
				"upc-ean-group:12345", "upc-ean-check:7", "upc-ean-guard:", "upc-ean-supp:52199",
			},
			modules:   95 + 54,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := record(t, newUPCEAN(t, tc.variant, barcodegen.ChecksumAuto), tc.msg)
			start := rec.Events()[0]
			if start.Msg != tc.canonical || start.Formatted != tc.canonical {
				t.Errorf("StartBarcode(%q, %q), want %q for both", start.Msg, start.Formatted, tc.canonical)
			}
			if diff := cmp.Diff(tc.groups, rec.Groups()); diff != "" {
				t.Errorf("groups mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]int{tc.modules}, rec.Modules()); diff != "" {
				t.Errorf("modules mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUPCEANGuardPatterns(t *testing.T) {
	rec := record(t, newUPCEAN(t, EAN8, barcodegen.ChecksumAuto), "1234567")
	s := rec.String()
	if !strings.HasPrefix(s, "<BC><ROW><SBG:upc-ean-guard:>B1W1B1</SBG>") {
		t.Errorf("unexpected start guard in %s", s)
	}
	if !strings.Contains(s, "<SBG:upc-ean-guard:>W1B1W1B1W1</SBG>") {
		t.Errorf("missing center guard in %s", s)
	}
	if !strings.HasSuffix(s, "<SBG:upc-ean-guard:>B1W1B1</SBG></ROW></BC>") {
		t.Errorf("unexpected end guard in %s", s)
	}
	// Left digit 1 in the L table is 0011001.
	if !strings.Contains(s, "<SBG:upc-ean-group:1234>W2B2W2B1") {
		t.Errorf("unexpected first digit in %s", s)
	}
}

func TestUPCEANChecksumModes(t *testing.T) {
	tests := []struct {
		name    string
		variant UPCEANVariant
		mode    barcodegen.ChecksumMode
		msg     string
		want    error
	}{
		{"check mismatch", UPCA, barcodegen.ChecksumCheck, "036000291453", barcodegen.ErrChecksumMismatch},
		{"auto mismatch", UPCA, barcodegen.ChecksumAuto, "036000291453", barcodegen.ErrChecksumMismatch},
		{"add needs payload length", UPCA, barcodegen.ChecksumAdd, "036000291452", barcodegen.ErrInvalidMessage},
		{"check needs full length", EAN13, barcodegen.ChecksumCheck, "590123412345", barcodegen.ErrInvalidMessage},
		{"ignore needs full length", EAN8, barcodegen.ChecksumIgnore, "1234567", barcodegen.ErrInvalidMessage},
		{"too short", EAN8, barcodegen.ChecksumAuto, "123456", barcodegen.ErrInvalidMessage},
		{"letters", EAN13, barcodegen.ChecksumAuto, "59012341234A", barcodegen.ErrInvalidMessage},
		{"bad add-on length", EAN13, barcodegen.ChecksumAuto, "590123412345+123", barcodegen.ErrInvalidMessage},
		{"bad add-on digits", EAN13, barcodegen.ChecksumAuto, "590123412345+1x", barcodegen.ErrInvalidMessage},
		{"ignore accepts wrong digit", UPCA, barcodegen.ChecksumIgnore, "036000291453", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := eventlog.NewRecorder()
			err := newUPCEAN(t, tc.variant, tc.mode).Generate(rec, tc.msg)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Generate(%q) error = %v, want %v", tc.msg, err, tc.want)
			}
			if tc.want != nil && rec.Len() != 0 {
				t.Errorf("%d events emitted before the error", rec.Len())
			}
		})
	}
}

func TestUPCEANComputeChecksum(t *testing.T) {
	codec := NewUPCEANCodec(EAN13, barcodegen.ChecksumAuto)
	got, err := codec.ComputeChecksum("400638133393")
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("ComputeChecksum = %d, want 1", got)
	}
	if _, err := codec.ComputeChecksum("40063813339"); !errors.Is(err, barcodegen.ErrInvalidMessage) {
		t.Errorf("short payload error = %v", err)
	}
}

func TestUPCEANDimensions(t *testing.T) {
	g := newUPCEAN(t, EAN13, barcodegen.ChecksumAuto)
	dim, err := g.CalcDimensions("590123412345")
	if err != nil {
		t.Fatal(err)
	}
	qz := 10 * 0.33
	if w, want := dim.Width(), 95*0.33; !almostEqual(w, want) {
		t.Errorf("width = %g, want %g", w, want)
	}
	if w, want := dim.WidthPlusQuiet(), 95*0.33+2*qz; !almostEqual(w, want) {
		t.Errorf("width plus quiet = %g, want %g", w, want)
	}
	if h := dim.Height(); !almostEqual(h, 15) {
		t.Errorf("height = %g, want 15", h)
	}
}

// --- Code128 ---

func TestCode128Encode(t *testing.T) {
	tests := []struct {
		name     string
		codesets Code128Codesets
		msg      string
		values   []int
		labels   []string
	}{
		{
			name:   "short digit run at end switches to C",
			msg:    "123",
			values: []int{105, 12, 100, 19, 65},
			labels: []string{"StartC", "idx12", "CodeB/FNC4", "idx19", "idx65"},
		},
		{
			name:   "leading digits in C then latch B",
			msg:    "1337Mate",
			values: []int{105, 13, 37, 100, 45, 65, 84, 69, 27},
		},
		{
			name:   "control characters pick A",
			msg:    "AA\rBB\tCC",
			values: []int{103, 33, 33, 77, 34, 34, 73, 35, 35, 54},
		},
		{
			name:   "single control character is shifted",
			msg:    "ab\rcd",
			values: []int{104, 65, 66, 98, 77, 67, 68, 101},
			labels: []string{"StartB", "idx65", "idx66", "Shift/98", "idx77", "idx67", "idx68", "idx101"},
		},
		{
			name:     "codeset B only",
			codesets: CodesetB,
			msg:      "1234",
			values:   []int{104, 17, 18, 19, 20, 88},
		},
		{
			name:   "FNC1 escape",
			msg:    "ñ12",
			values: []int{105, 102, 12, (105 + 102 + 2*12) % 103},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			symbols, err := NewCode128Encoder(tc.codesets).Encode(tc.msg)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.values, values(symbols)); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
			if tc.labels == nil {
				return
			}
			labels := make([]string, len(symbols))
			for i, s := range symbols {
				labels[i] = s.Label
			}
			if diff := cmp.Diff(tc.labels, labels); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCode128Invalid(t *testing.T) {
	tests := []struct {
		name     string
		codesets Code128Codesets
		msg      string
	}{
		{"empty", CodesetAll, ""},
		{"non-ASCII", CodesetAll, "Grüße"},
		{"lowercase in A", CodesetA, "abc"},
		{"letters in C", CodesetC, "12A4"},
		{"odd digits in C", CodesetC, "123"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCode128Encoder(tc.codesets).Encode(tc.msg)
			if !errors.Is(err, barcodegen.ErrInvalidMessage) {
				t.Errorf("Encode(%q) error = %v, want ErrInvalidMessage", tc.msg, err)
			}
		})
	}
}

func TestParseCode128Codesets(t *testing.T) {
	for in, want := range map[string]Code128Codesets{
		"":    CodesetAll,
		"abc": CodesetAll,
		"A,B": CodesetA | CodesetB,
		"c":   CodesetC,
	} {
		got, err := ParseCode128Codesets(in)
		if err != nil {
			t.Errorf("ParseCode128Codesets(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCode128Codesets(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseCode128Codesets("D"); !errors.Is(err, barcodegen.ErrConfiguration) {
		t.Errorf("ParseCode128Codesets(D) error = %v", err)
	}
}

func TestCode128Events(t *testing.T) {
	g, err := NewCode128Generator(DefaultCode128Config())
	if err != nil {
		t.Fatal(err)
	}
	rec := record(t, g, "123")
	want := []string{
		"start-char:StartC", "msg-char:idx12", "msg-char:CodeB/FNC4", "msg-char:idx19",
		"check-char:idx65", "stop-char:",
	}
	if diff := cmp.Diff(want, rec.Groups()); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{Code128Width(5)}, rec.Modules()); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(rec.String(), "<SBG:stop-char:>B2W3B3W1B1W1B2</SBG></ROW></BC>") {
		t.Errorf("unexpected stop pattern in %s", rec)
	}
	if got := rec.Events()[0].Formatted; got != "123" {
		t.Errorf("formatted message = %q", got)
	}
}

func TestCode128HumanReadable(t *testing.T) {
	if got := Code128HumanReadable("ñ0101234ò56"); got != "010123456" {
		t.Errorf("Code128HumanReadable = %q", got)
	}
}

func TestCode128Dimensions(t *testing.T) {
	g, err := NewCode128Generator(DefaultCode128Config())
	if err != nil {
		t.Fatal(err)
	}
	dim, err := g.CalcDimensions("123")
	if err != nil {
		t.Fatal(err)
	}
	if w, want := dim.Width(), 68*0.21; !almostEqual(w, want) {
		t.Errorf("width = %g, want %g", w, want)
	}
}

// --- Interleaved 2 of 5 ---

func TestInterleaved2Of5Resolve(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		mode   barcodegen.ChecksumMode
		padOdd bool
		want   string
		err    error
	}{
		{"even", "1234", barcodegen.ChecksumAuto, false, "1234", nil},
		{"odd rejected", "123", barcodegen.ChecksumAuto, false, "", barcodegen.ErrInvalidMessage},
		{"odd padded", "123", barcodegen.ChecksumAuto, true, "0123", nil},
		{"add check digit", "123", barcodegen.ChecksumAdd, false, "1236", nil},
		{"check ok", "1236", barcodegen.ChecksumCheck, false, "1236", nil},
		{"check mismatch", "1235", barcodegen.ChecksumCheck, false, "", barcodegen.ErrChecksumMismatch},
		{"letters", "12a4", barcodegen.ChecksumAuto, false, "", barcodegen.ErrInvalidMessage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveInterleaved2Of5(tc.msg, tc.mode, tc.padOdd)
			if !errors.Is(err, tc.err) {
				t.Fatalf("error = %v, want %v", err, tc.err)
			}
			if got != tc.want {
				t.Errorf("digits = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInterleaved2Of5Events(t *testing.T) {
	cfg := DefaultInterleaved2Of5Config()
	g, err := NewInterleaved2Of5Generator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	rec := record(t, g, "1234")
	want := "<BC><ROW><SBG:start-char:>B1W1B1W1</SBG>" +
		"<SBG:msg-char:12>B2W1B1W2B1W1B1W1B2W2</SBG>" +
		"<SBG:msg-char:34>B2W1B2W1B1W2B1W1B1W2</SBG>" +
		"<SBG:stop-char:>B2W1B1</SBG></ROW></BC>"
	if got := rec.String(); got != want {
		t.Errorf("events:\n got %s\nwant %s", got, want)
	}
}

func TestInterleaved2Of5WideFactor(t *testing.T) {
	cfg := DefaultInterleaved2Of5Config()
	cfg.WideFactor = 4
	if _, err := NewInterleaved2Of5Generator(cfg); !errors.Is(err, barcodegen.ErrConfiguration) {
		t.Errorf("wide factor 4 error = %v", err)
	}
	narrow, wide := Interleaved2Of5Width("1234")
	if narrow != 4+12+2 || wide != 8+1 {
		t.Errorf("Interleaved2Of5Width = %d, %d", narrow, wide)
	}
}

func TestITF14(t *testing.T) {
	g, err := NewITF14Generator(DefaultITF14Config())
	if err != nil {
		t.Fatal(err)
	}
	rec := record(t, g, "1540014128876")
	want := []string{
		"start-char:", "msg-char:15", "msg-char:40", "msg-char:01", "msg-char:41",
		"msg-char:28", "msg-char:87", "msg-char:63", "stop-char:",
	}
	if diff := cmp.Diff(want, rec.Groups()); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	s := rec.String()
	if !strings.HasPrefix(s, "<BC><ROW><SBG:start-char:>B1W1B1W1</SBG><SBG:msg-char:15>B2W2B1W1B1W2B1W1B2W1</SBG>") {
		t.Errorf("unexpected prefix in %s", s)
	}

	for _, msg := range []string{"15400141288764", "154001412887", "1540014128876x"} {
		if err := g.Generate(eventlog.NewRecorder(), msg); err == nil {
			t.Errorf("Generate(%q) succeeded", msg)
		}
	}
}

func TestITF14Dimensions(t *testing.T) {
	cfg := DefaultITF14Config()
	g, err := NewITF14Generator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	dim, err := g.CalcDimensions("1540014128876")
	if err != nil {
		t.Fatal(err)
	}
	bars := float64(48)*cfg.ModuleWidth + float64(29)*cfg.ModuleWidth*cfg.WideFactor
	if w, want := dim.Width(), bars+2*cfg.BearerBarWidth; !almostEqual(w, want) {
		t.Errorf("width = %g, want %g", w, want)
	}
	if h, want := dim.Height(), cfg.Height+2*cfg.BearerBarWidth; !almostEqual(h, want) {
		t.Errorf("height = %g, want %g", h, want)
	}

	cfg.BearerBox = false
	g, err = NewITF14Generator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	dim, err = g.CalcDimensions("1540014128876")
	if err != nil {
		t.Fatal(err)
	}
	if w := dim.Width(); !almostEqual(w, bars) {
		t.Errorf("width without box = %g, want %g", w, bars)
	}
}

func TestRegisteredLinearGenerators(t *testing.T) {
	for _, sym := range []barcodegen.Symbology{
		barcodegen.SymbologyUPCA, barcodegen.SymbologyEAN13, barcodegen.SymbologyEAN8,
		barcodegen.SymbologyCode128, barcodegen.SymbologyInterleaved2Of5, barcodegen.SymbologyITF14,
	} {
		g, err := barcodegen.New(sym, nil)
		if err != nil {
			t.Errorf("New(%s): %v", sym, err)
			continue
		}
		if g.Symbology() != sym {
			t.Errorf("New(%s).Symbology() = %s", sym, g.Symbology())
		}
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
