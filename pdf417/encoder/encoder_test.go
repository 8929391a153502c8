package encoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/charset"
)

func TestEncodeHighLevel(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		opts HighLevelOptions
		want []int
	}{
		{"text", "PDF417", HighLevelOptions{}, []int{453, 178, 121, 239}},
		{"text lower latch", "Hello", HighLevelOptions{}, []int{237, 131, 344}},
		{"text punctuation", "Hello, World!", HighLevelOptions{},
			[]int{237, 131, 344, 853, 808, 687, 437, 333, 880}},
		{"text mixed", "A1.,B", HighLevelOptions{}, []int{28, 47, 418, 59}},
		{"short run is binary", "ab", HighLevelOptions{}, []int{901, 97, 98}},
		{"binary around punctuation", "a,.b", HighLevelOptions{}, []int{901, 97, 44, 46, 98}},
		{"numeric", "1234567890123", HighLevelOptions{}, []int{902, 17, 110, 836, 811, 223}},
		{"byte shift", "ABCDEFGHé", HighLevelOptions{}, []int{1, 63, 125, 187, 913, 130}},
		{"byte run", "abcédef", HighLevelOptions{}, []int{901, 163, 179, 510, 87, 745, 102}},
		{"mixed modes", "PDF417 test 1234567890123456 abc", HighLevelOptions{},
			[]int{453, 178, 121, 236, 829, 138, 596, 902, 19, 23, 229, 801, 348, 256, 901, 32, 97, 98, 99}},
		{"forced numeric", "123", HighLevelOptions{Compaction: CompactionNumeric}, []int{902, 1, 223}},
		{"forced byte", "ABC", HighLevelOptions{Compaction: CompactionByte}, []int{901, 65, 66, 67}},
		{"forced byte sixpack", "123456", HighLevelOptions{Compaction: CompactionByte},
			[]int{924, 82, 399, 748, 339, 234}},
		{"forced text", "Hello", HighLevelOptions{Compaction: CompactionText}, []int{237, 131, 344}},
		{"eci", "A", HighLevelOptions{ECI: charset.ECIUTF8}, []int{927, 26, 913, 65}},
		{"eci general purpose", "A", HighLevelOptions{ECI: &charset.ECI{Value: 1000}}, []int{926, 0, 100, 913, 65}},
		{"eci user defined", "A", HighLevelOptions{ECI: &charset.ECI{Value: 811000}}, []int{925, 100, 913, 65}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := tc.opts
			got, err := EncodeHighLevel(tc.msg, &opts)
			if err != nil {
				t.Fatalf("EncodeHighLevel(%q): %v", tc.msg, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("codewords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeHighLevelCharset(t *testing.T) {
	utf8, err := charset.Lookup("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeHighLevel("é", &HighLevelOptions{Charset: utf8})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{901, 0xc3, 0xa9}, got); diff != "" {
		t.Errorf("codewords mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeHighLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		opts HighLevelOptions
		want error
	}{
		{"empty", "", HighLevelOptions{}, barcodegen.ErrInvalidMessage},
		{"unencodable", "日本", HighLevelOptions{}, barcodegen.ErrInvalidMessage},
		{"text only", "café", HighLevelOptions{Compaction: CompactionText}, barcodegen.ErrInvalidMessage},
		{"digits only", "12a", HighLevelOptions{Compaction: CompactionNumeric}, barcodegen.ErrInvalidMessage},
		{"eci out of range", "A", HighLevelOptions{ECI: &charset.ECI{Value: 811800}}, barcodegen.ErrConfiguration},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := tc.opts
			if _, err := EncodeHighLevel(tc.msg, &opts); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseCompaction(t *testing.T) {
	for in, want := range map[string]Compaction{"": CompactionAuto, "Text": CompactionText, "byte": CompactionByte, "numeric": CompactionNumeric} {
		got, err := ParseCompaction(in)
		if err != nil || got != want {
			t.Errorf("ParseCompaction(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseCompaction("base64"); !errors.Is(err, barcodegen.ErrConfiguration) {
		t.Errorf("ParseCompaction(base64): got %v, want ErrConfiguration", err)
	}
}

func TestErrorCorrection(t *testing.T) {
	// ISO/IEC 15438 worked example.
	got, err := GenerateErrorCorrection([]int{5, 453, 178, 121, 239}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{452, 327, 657, 619}, got); diff != "" {
		t.Errorf("EC codewords mismatch (-want +got):\n%s", diff)
	}
	for _, level := range []int{-1, 9} {
		if _, err := ErrorCorrectionCodewordCount(level); !errors.Is(err, barcodegen.ErrConfiguration) {
			t.Errorf("level %d: got %v, want ErrConfiguration", level, err)
		}
	}
}

func TestErrorCorrectionCount(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("2^(level+1) codewords", prop.ForAll(
		func(data []int, level int) bool {
			ec, err := GenerateErrorCorrection(append([]int{len(data) + 1}, data...), level)
			return err == nil && len(ec) == 1<<(level+1)
		},
		gen.SliceOfN(20, gen.IntRange(0, 928)),
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}

func TestCalculateNumberOfRows(t *testing.T) {
	tests := []struct{ m, k, c, want int }{
		{3, 2, 2, 3},
		{7, 2, 2, 5},
		{3, 8, 1, 12},
		{3, 8, 5, 3},
		{100, 2, 1, 103},
	}
	for _, tc := range tests {
		if got := CalculateNumberOfRows(tc.m, tc.k, tc.c); got != tc.want {
			t.Errorf("CalculateNumberOfRows(%d, %d, %d) = %d, want %d", tc.m, tc.k, tc.c, got, tc.want)
		}
	}
	if got := NumberOfPadCodewords(7, 2, 2, 5); got != 0 {
		t.Errorf("NumberOfPadCodewords(7, 2, 2, 5) = %d, want 0", got)
	}
	if got := NumberOfPadCodewords(3, 2, 1, 10); got != 4 {
		t.Errorf("NumberOfPadCodewords(3, 2, 1, 10) = %d, want 4", got)
	}
}

func TestDetermineDimensions(t *testing.T) {
	cons := DefaultConstraints()
	got, err := DetermineDimensions(3, 8, cons)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Layout{Columns: 1, Rows: 12}, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}

	cons.MinCols, cons.MaxCols, cons.MinRows = 1, 1, 10
	got, err = DetermineDimensions(3, 2, cons)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Layout{Columns: 1, Rows: 10}, got); diff != "" {
		t.Errorf("padded layout mismatch (-want +got):\n%s", diff)
	}

	cons.MinRows = MinRowsInBarcode
	if _, err := DetermineDimensions(100, 2, cons); !errors.Is(err, barcodegen.ErrCapacityExceeded) {
		t.Errorf("one column: got %v, want ErrCapacityExceeded", err)
	}
	if _, err := DetermineDimensions(900, 32, DefaultConstraints()); !errors.Is(err, barcodegen.ErrCapacityExceeded) {
		t.Errorf("too many codewords: got %v, want ErrCapacityExceeded", err)
	}
}

func TestEncode(t *testing.T) {
	opts := &Options{Constraints: DefaultConstraints()}
	opts.Constraints.MinCols, opts.Constraints.MaxCols = 2, 2
	sym, err := Encode("1234567890123", opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Layout{Columns: 2, Rows: 5}, sym.Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{8, 902, 17, 110, 836, 811, 223, 900}, sym.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{301, 270}, sym.ErrorCorrectionCodewords()); diff != "" {
		t.Errorf("EC mismatch (-want +got):\n%s", diff)
	}
	if len(sym.Codewords) != sym.Columns*sym.Rows {
		t.Errorf("%d codewords fill a %dx%d symbol", len(sym.Codewords), sym.Columns, sym.Rows)
	}
	if sym.Width() != 103 {
		t.Errorf("width = %d modules, want 103", sym.Width())
	}

	if _, err := Encode("A", &Options{}); !errors.Is(err, barcodegen.ErrConfiguration) {
		t.Errorf("zero constraints: got %v, want ErrConfiguration", err)
	}
	big := strings.Repeat("A", 2000)
	if _, err := Encode(big, nil); !errors.Is(err, barcodegen.ErrCapacityExceeded) {
		t.Errorf("oversized message: got %v, want ErrCapacityExceeded", err)
	}
}

func TestRowIndicators(t *testing.T) {
	sym := &Symbol{
		Layout:               Layout{Columns: 2, Rows: 5},
		ErrorCorrectionLevel: 1,
		Codewords:            make([]int, 10),
	}
	tests := []Row{
		{Cluster: 0, Left: 1, Right: 1},
		{Cluster: 3, Left: 4, Right: 1},
		{Cluster: 6, Left: 1, Right: 4},
		{Cluster: 0, Left: 31, Right: 31},
		{Cluster: 3, Left: 34, Right: 31},
	}
	for y, want := range tests {
		got := sym.Row(y)
		got.Data = nil
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", y, diff)
		}
	}
}

func TestPatternWidths(t *testing.T) {
	if diff := cmp.Diff([]int{8, 1, 1, 1, 1, 1, 1, 3}, PatternWidths(StartPattern, ModulesInCodeword)); diff != "" {
		t.Errorf("start pattern mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{7, 1, 1, 3, 1, 1, 1, 2, 1}, PatternWidths(StopPattern, ModulesInStopPattern)); diff != "" {
		t.Errorf("stop pattern mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		pattern uint32
		cluster int
		want    []int
	}{
		{0x1d5c0, 0, []int{3, 1, 1, 1, 1, 1, 3, 6}},
		{0x1f560, 3, []int{5, 1, 1, 1, 1, 1, 2, 5}},
		{0x1abe0, 6, []int{2, 1, 1, 1, 1, 1, 5, 5}},
	}
	for _, tc := range tests {
		got, err := CodewordWidths(tc.pattern, tc.cluster)
		if err != nil {
			t.Errorf("CodewordWidths(%#x): %v", tc.pattern, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("CodewordWidths(%#x) mismatch (-want +got):\n%s", tc.pattern, diff)
		}
	}
	for _, bad := range []struct {
		pattern uint32
		cluster int
	}{
		{0x1d5c0, 3}, // wrong cluster
		{0x1d5c1, 0}, // ends with a bar
		{0x0d5c0, 0}, // starts with a space
		{0x1fc00, 0}, // too few elements
		{0x3d5c0, 0}, // 18 modules
	} {
		if _, err := CodewordWidths(bad.pattern, bad.cluster); !errors.Is(err, barcodegen.ErrConfiguration) {
			t.Errorf("CodewordWidths(%#x, %d): got %v, want ErrConfiguration", bad.pattern, bad.cluster, err)
		}
	}
}
