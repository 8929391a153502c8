package barcodegen_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/datamatrix"
	_ "github.com/ericlevine/barcodegen/oned"
	_ "github.com/ericlevine/barcodegen/pdf417"
)

type text struct {
	Text   string
	X1, X2 float64
	Y      float64
}

type fakeCanvas struct {
	dim   barcodegen.Dimension
	rects []barcodegen.Rect
	texts []text
}

func (c *fakeCanvas) EstablishDimensions(dim barcodegen.Dimension) { c.dim = dim }

func (c *fakeCanvas) DrawRectWH(x, y, w, h float64) {
	c.rects = append(c.rects, barcodegen.Rect{X: x, Y: y, W: w, H: h})
}

func (c *fakeCanvas) DrawRect(x0, y0, x1, y1 float64) {
	c.DrawRectWH(x0, y0, x1-x0, y1-y0)
}

func (c *fakeCanvas) DrawCenteredText(s string, x1, x2, y float64, fontName string, fontSize float64) {
	c.texts = append(c.texts, text{s, x1, x2, y})
}

func assertRect(t *testing.T, want, got barcodegen.Rect) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
	assert.InDelta(t, want.W, got.W, 1e-9, "w")
	assert.InDelta(t, want.H, got.H, 1e-9, "h")
}

func TestDimension(t *testing.T) {
	d := barcodegen.NewDimensionWithQuietZone(10, 5, 14, 9, 2, 2)
	assert.Equal(t, barcodegen.Rect{W: 14, H: 9}, d.BoundingRect())
	assert.Equal(t, barcodegen.Rect{X: 2, Y: 2, W: 10, H: 5}, d.ContentRect())
	assert.Equal(t, "Dim: 10 x 5 (incl. quiet zone: 14 x 9)", d.String())

	plain := barcodegen.NewDimension(3, 4)
	assert.Equal(t, 3.0, plain.WidthPlusQuiet())
	assert.Equal(t, 4.0, plain.HeightPlusQuiet())
	assert.Zero(t, plain.XOffset())
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want barcodegen.Length
		mm   float64
	}{
		{"0.21mm", barcodegen.MM(0.21), 0.21},
		{"3", barcodegen.MM(3), 3},
		{"10mw", barcodegen.ModuleWidths(10), 2.1},
		{"1in", barcodegen.Length{Value: 1, Unit: barcodegen.UnitInch}, 25.4},
		{"2cm", barcodegen.Length{Value: 2, Unit: barcodegen.UnitCM}, 20},
		{"72pt", barcodegen.Length{Value: 72, Unit: barcodegen.UnitPoint}, 25.4},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := barcodegen.ParseLength(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.InDelta(t, tc.mm, got.ToMM(0.21), 1e-9)
		})
	}

	for _, in := range []string{"", "abc", "-1mm"} {
		_, err := barcodegen.ParseLength(in)
		assert.ErrorIs(t, err, barcodegen.ErrConfiguration, in)
	}

	var l barcodegen.Length
	require.NoError(t, l.UnmarshalText([]byte("5mw")))
	b, err := l.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "5mw", string(b))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		msg, pattern, want string
	}{
		{"1234", "", "1234"},
		{"123456", "__/__/__", "12/34/56"},
		{"0012345", "##_____", "12345"},
		{"12", `\__`, "_1" + "2"},
		{"123456", "_-_", "1-23456"},
		{"12", "____", "12"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, barcodegen.FormatMessage(tc.msg, tc.pattern), "%q with %q", tc.msg, tc.pattern)
	}
}

func TestParseChecksumMode(t *testing.T) {
	for name, want := range map[string]barcodegen.ChecksumMode{
		"":       barcodegen.ChecksumAuto,
		"auto":   barcodegen.ChecksumAuto,
		"ADD":    barcodegen.ChecksumAdd,
		"check":  barcodegen.ChecksumCheck,
		"ignore": barcodegen.ChecksumIgnore,
	} {
		got, err := barcodegen.ParseChecksumMode(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := barcodegen.ParseChecksumMode("verify")
	assert.ErrorIs(t, err, barcodegen.ErrConfiguration)
}

func TestParseSymbology(t *testing.T) {
	for name, want := range map[string]barcodegen.Symbology{
		"upc-a":      barcodegen.SymbologyUPCA,
		"EAN13":      barcodegen.SymbologyEAN13,
		"itf14":      barcodegen.SymbologyITF14,
		"2of5":       barcodegen.SymbologyInterleaved2Of5,
		"datamatrix": barcodegen.SymbologyDataMatrix,
	} {
		got, err := barcodegen.ParseSymbology(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := barcodegen.ParseSymbology("qr")
	assert.ErrorIs(t, err, barcodegen.ErrConfiguration)
	assert.True(t, barcodegen.SymbologyPDF417.Is2D())
	assert.False(t, barcodegen.SymbologyCode128.Is2D())
}

func TestBaseConfig(t *testing.T) {
	cfg := barcodegen.NewBaseConfig(0.2, 10)
	assert.InDelta(t, 2.0, cfg.QuietZone, 1e-9)

	cfg.Apply(&barcodegen.Options{ModuleWidth: 0.5})
	assert.InDelta(t, 5.0, cfg.QuietZone, 1e-9, "default quiet zone follows module width")

	qz := barcodegen.ModuleWidths(4)
	off := false
	cfg.Apply(&barcodegen.Options{QuietZone: &qz, QuietZoneEnabled: &off})
	assert.InDelta(t, 2.0, cfg.QuietZone, 1e-9)
	assert.Zero(t, cfg.EffectiveQuietZone())
	require.NoError(t, cfg.Validate())

	bad := barcodegen.NewBaseConfig(0.2, 10)
	bad.Height = 1
	assert.ErrorIs(t, bad.Validate(), barcodegen.ErrConfiguration)
	bad.HumanReadable.Placement = barcodegen.PlacementNone
	assert.NoError(t, bad.Validate())
	bad.ModuleWidth = 0
	assert.ErrorIs(t, bad.Validate(), barcodegen.ErrConfiguration)
}

func TestClassicCanvasHandler(t *testing.T) {
	cfg := barcodegen.NewBaseConfig(0.5, 10)
	layout := barcodegen.CanvasLayout{Config: &cfg, Dimension: cfg.Dimension(2, cfg.Height)}
	canvas := &fakeCanvas{}
	h := barcodegen.NewClassicCanvasHandler(canvas, layout)

	h.StartBarcode("12", "12")
	h.StartRow()
	h.AddBar(true, 2)
	h.AddBar(false, 1)
	h.AddBar(true, 1)
	h.EndRow()
	h.EndBarcode()

	barHeight := cfg.Height - barcodegen.DefaultFontSize
	require.Len(t, canvas.rects, 2)
	assertRect(t, barcodegen.Rect{X: 5, Y: 5, W: 1, H: barHeight}, canvas.rects[0])
	assertRect(t, barcodegen.Rect{X: 6.5, Y: 5, W: 0.5, H: barHeight}, canvas.rects[1])
	require.Len(t, canvas.texts, 1)
	assert.Equal(t, "12", canvas.texts[0].Text)
	assert.InDelta(t, 5.0, canvas.texts[0].X1, 1e-9)
	assert.InDelta(t, 7.0, canvas.texts[0].X2, 1e-9)
	assert.InDelta(t, 20.0, canvas.texts[0].Y, 1e-9)
	assert.InDelta(t, 12.0, canvas.dim.WidthPlusQuiet(), 1e-9)
}

func TestClassicCanvasHandlerTopCaption(t *testing.T) {
	cfg := barcodegen.NewBaseConfig(1, 0)
	cfg.HumanReadable.Placement = barcodegen.PlacementTop
	cfg.HumanReadable.Pattern = "_-_"
	layout := barcodegen.CanvasLayout{Config: &cfg, Dimension: cfg.Dimension(1, cfg.Height)}
	canvas := &fakeCanvas{}
	h := barcodegen.NewClassicCanvasHandler(canvas, layout)

	h.StartBarcode("12", "12")
	h.AddBar(true, 1)
	h.EndBarcode()

	fs := barcodegen.DefaultFontSize
	require.Len(t, canvas.rects, 1)
	assertRect(t, barcodegen.Rect{X: 0, Y: fs, W: 1, H: cfg.Height - fs}, canvas.rects[0])
	require.Len(t, canvas.texts, 1)
	assert.Equal(t, "1-2", canvas.texts[0].Text)
	assert.InDelta(t, fs, canvas.texts[0].Y, 1e-9)
}

type fixedRenderer struct{}

func (fixedRenderer) Widths(cw barcodegen.Codeword) []int { return []int{cw.Value, 1} }

func TestTwoDimCanvasHandler(t *testing.T) {
	cfg := barcodegen.NewBaseConfig(1, 0)
	cfg.HumanReadable.Placement = barcodegen.PlacementNone
	layout := barcodegen.CanvasLayout{Config: &cfg, Dimension: cfg.Dimension(3, 4)}
	canvas := &fakeCanvas{}
	h := barcodegen.NewTwoDimCanvasHandler(canvas, layout, 2, fixedRenderer{})

	h.StartBarcode("x", "x")
	for row := 0; row < 2; row++ {
		h.StartRow()
		h.AddCodeword(barcodegen.Codeword{Value: 2})
		h.EndRow()
	}
	h.EndBarcode()

	require.Len(t, canvas.rects, 2)
	assertRect(t, barcodegen.Rect{X: 0, Y: 0, W: 2, H: 2}, canvas.rects[0])
	assertRect(t, barcodegen.Rect{X: 0, Y: 2, W: 2, H: 2}, canvas.rects[1])
	assert.Empty(t, canvas.texts)
}

func TestBearerBarCanvasHandler(t *testing.T) {
	cfg := barcodegen.NewBaseConfig(1, 0)
	cfg.Height = 10
	cfg.HumanReadable.Placement = barcodegen.PlacementNone
	layout := barcodegen.CanvasLayout{Config: &cfg, Dimension: cfg.Dimension(24, 14)}
	canvas := &fakeCanvas{}
	h := barcodegen.NewBearerBarCanvasHandler(canvas, layout, 2, true)

	h.StartBarcode("00", "00")
	h.AddBar(true, 1)
	h.EndBarcode()

	want := []barcodegen.Rect{
		{X: 0, Y: 0, W: 24, H: 2},
		{X: 0, Y: 12, W: 24, H: 2},
		{X: 0, Y: 0, W: 2, H: 14},
		{X: 22, Y: 0, W: 2, H: 14},
		{X: 2, Y: 2, W: 1, H: 10},
	}
	require.Len(t, canvas.rects, len(want))
	for i := range want {
		assertRect(t, want[i], canvas.rects[i])
	}

	shifted := barcodegen.BearerLayout(barcodegen.CanvasLayout{Config: &barcodegen.BaseConfig{}}, 3, false)
	assert.Zero(t, shifted.InsetX)
	assert.Equal(t, 3.0, shifted.InsetY)
	assert.Equal(t, 3.0, shifted.TextOffset)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []barcodegen.Symbology{
		barcodegen.SymbologyUPCA,
		barcodegen.SymbologyEAN13,
		barcodegen.SymbologyEAN8,
		barcodegen.SymbologyCode128,
		barcodegen.SymbologyInterleaved2Of5,
		barcodegen.SymbologyITF14,
		barcodegen.SymbologyPDF417,
		barcodegen.SymbologyDataMatrix,
	}, barcodegen.Registered())

	_, err := barcodegen.New(barcodegen.Symbology(99), nil)
	assert.ErrorIs(t, err, barcodegen.ErrConfiguration)

	_, err = barcodegen.New(barcodegen.SymbologyCode128, &barcodegen.Options{Codesets: "XYZ"})
	assert.ErrorIs(t, err, barcodegen.ErrConfiguration)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	factory := func(opts *barcodegen.Options) (barcodegen.Generator, error) {
		cfg, err := datamatrix.ConfigFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return datamatrix.NewGenerator(cfg)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			barcodegen.RegisterGenerator(barcodegen.SymbologyDataMatrix, factory)
		}()
		go func() {
			defer wg.Done()
			_, err := barcodegen.New(barcodegen.SymbologyDataMatrix, nil)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			assert.Contains(t, barcodegen.Registered(), barcodegen.SymbologyDataMatrix)
		}()
	}
	wg.Wait()
}

func TestGenerateBarcodeLeavesCanvasUntouchedOnError(t *testing.T) {
	g, err := barcodegen.New(barcodegen.SymbologyEAN13, nil)
	require.NoError(t, err)
	canvas := &fakeCanvas{}
	err = g.GenerateBarcode(canvas, "590123412340")
	require.NoError(t, err)
	assert.NotEmpty(t, canvas.rects)

	canvas = &fakeCanvas{}
	err = g.GenerateBarcode(canvas, "5901234123450")
	assert.ErrorIs(t, err, barcodegen.ErrChecksumMismatch)
	assert.Empty(t, canvas.rects)
	assert.Empty(t, canvas.texts)
}
