package barcodegen

// Canvas is the drawing surface a generator renders into. Coordinates and
// sizes are in millimetres with the origin at the top left corner.
type Canvas interface {
	// EstablishDimensions is called once before anything is drawn.
	EstablishDimensions(dim Dimension)
	DrawRectWH(x, y, w, h float64)
	DrawRect(x0, y0, x1, y1 float64)
}

// TextCanvas is implemented by canvases that render captions. Canvases that
// do not implement it receive bars only.
type TextCanvas interface {
	// DrawCenteredText draws text centered between x1 and x2 with its
	// baseline at y.
	DrawCenteredText(text string, x1, x2, y float64, fontName string, fontSize float64)
}

// CanvasLayout describes where a generator places its bars on a canvas.
type CanvasLayout struct {
	Config    *BaseConfig
	Dimension Dimension
	// BarWidth converts a logical width into millimetres. Nil means
	// width × module width.
	BarWidth func(width int) float64
	// InsetX and InsetY shift the bar origin inside the content area.
	InsetX, InsetY float64
	// TextOffset moves the caption baseline down.
	TextOffset float64
}

func (l *CanvasLayout) barWidth(width int) float64 {
	if l.BarWidth != nil {
		return l.BarWidth(width)
	}
	return float64(width) * l.Config.ModuleWidth
}

func (l *CanvasLayout) startX() float64 { return l.Dimension.XOffset() + l.InsetX }
func (l *CanvasLayout) startY() float64 { return l.Dimension.YOffset() + l.InsetY }

func drawCaption(canvas Canvas, l *CanvasLayout, text string, x1, x2 float64) {
	cfg := l.Config
	if cfg.HumanReadable.Placement == PlacementNone || text == "" {
		return
	}
	tc, ok := canvas.(TextCanvas)
	if !ok {
		return
	}
	y := l.startY() + cfg.TextBaseline() + l.TextOffset
	tc.DrawCenteredText(text, x1, x2, y, cfg.HumanReadable.FontName, cfg.HumanReadable.FontSize)
}

// ClassicCanvasHandler adapts a Canvas into a ClassicHandler for linear
// symbologies.
type ClassicCanvasHandler struct {
	canvas    Canvas
	layout    CanvasLayout
	x         float64
	formatted string
}

// NewClassicCanvasHandler returns a handler drawing onto canvas.
func NewClassicCanvasHandler(canvas Canvas, layout CanvasLayout) *ClassicCanvasHandler {
	return &ClassicCanvasHandler{canvas: canvas, layout: layout}
}

// Canvas returns the underlying canvas.
func (h *ClassicCanvasHandler) Canvas() Canvas { return h.canvas }

// Layout returns the layout the handler draws with.
func (h *ClassicCanvasHandler) Layout() *CanvasLayout { return &h.layout }

// X returns the current horizontal drawing position.
func (h *ClassicCanvasHandler) X() float64 { return h.x }

func (h *ClassicCanvasHandler) StartBarcode(msg, formattedMsg string) {
	h.formatted = FormatMessage(formattedMsg, h.layout.Config.HumanReadable.Pattern)
	h.canvas.EstablishDimensions(h.layout.Dimension)
	h.x = h.layout.startX()
}

func (h *ClassicCanvasHandler) StartRow() {}

func (h *ClassicCanvasHandler) StartBarGroup(group BarGroup, submsg string) {}

// BarTop returns the y coordinate of the top of the bars.
func (h *ClassicCanvasHandler) BarTop() float64 {
	y := h.layout.startY()
	if h.layout.Config.HumanReadable.Placement == PlacementTop {
		y += h.layout.Config.HumanReadableHeight()
	}
	return y
}

func (h *ClassicCanvasHandler) AddBar(black bool, width int) {
	w := h.layout.barWidth(width)
	if black {
		h.canvas.DrawRectWH(h.x, h.BarTop(), w, h.layout.Config.BarHeight())
	}
	h.x += w
}

func (h *ClassicCanvasHandler) EndBarGroup() {}

func (h *ClassicCanvasHandler) EndRow() {}

func (h *ClassicCanvasHandler) EndBarcode() {
	drawCaption(h.canvas, &h.layout, h.formatted, h.layout.startX(), h.x)
}

// CodewordRenderer expands a codeword into its alternating bar and space
// widths, starting with a bar.
type CodewordRenderer interface {
	Widths(cw Codeword) []int
}

// TwoDimCanvasHandler adapts a Canvas into a TwoDimHandler. Every row is
// drawn RowHeight millimetres tall.
type TwoDimCanvasHandler struct {
	canvas    Canvas
	layout    CanvasLayout
	rowHeight float64
	renderer  CodewordRenderer
	x, y      float64
	maxX      float64
	formatted string
}

// NewTwoDimCanvasHandler returns a handler drawing rows of rowHeight onto
// canvas. The renderer may be nil when the symbology emits bars only.
func NewTwoDimCanvasHandler(canvas Canvas, layout CanvasLayout, rowHeight float64, renderer CodewordRenderer) *TwoDimCanvasHandler {
	return &TwoDimCanvasHandler{canvas: canvas, layout: layout, rowHeight: rowHeight, renderer: renderer}
}

func (h *TwoDimCanvasHandler) StartBarcode(msg, formattedMsg string) {
	h.formatted = FormatMessage(formattedMsg, h.layout.Config.HumanReadable.Pattern)
	h.canvas.EstablishDimensions(h.layout.Dimension)
	h.y = h.layout.startY()
	if h.layout.Config.HumanReadable.Placement == PlacementTop {
		h.y += h.layout.Config.HumanReadableHeight()
	}
	h.maxX = h.layout.startX()
}

func (h *TwoDimCanvasHandler) StartRow() {
	h.x = h.layout.startX()
}

func (h *TwoDimCanvasHandler) StartBarGroup(group BarGroup, submsg string) {}

func (h *TwoDimCanvasHandler) AddBar(black bool, width int) {
	w := h.layout.barWidth(width)
	if black {
		h.canvas.DrawRectWH(h.x, h.y, w, h.rowHeight)
	}
	h.x += w
	if h.x > h.maxX {
		h.maxX = h.x
	}
}

func (h *TwoDimCanvasHandler) AddCodeword(cw Codeword) {
	if h.renderer == nil {
		return
	}
	black := true
	for _, w := range h.renderer.Widths(cw) {
		h.AddBar(black, w)
		black = !black
	}
}

func (h *TwoDimCanvasHandler) EndBarGroup() {}

func (h *TwoDimCanvasHandler) EndRow() {
	h.y += h.rowHeight
}

func (h *TwoDimCanvasHandler) EndBarcode() {
	drawCaption(h.canvas, &h.layout, h.formatted, h.layout.startX(), h.maxX)
}
