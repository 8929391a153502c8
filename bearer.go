package barcodegen

// BearerBarCanvasHandler draws ITF-14 bearer bars around the symbol drawn by
// an embedded ClassicCanvasHandler.
//
// The horizontal bearer bars span the full width including quiet zones. With
// a bearer box, vertical bars close the frame at the outer edges and the bars
// start one bearer width further right.
type BearerBarCanvasHandler struct {
	*ClassicCanvasHandler
	bearerWidth float64
	box         bool
}

// BearerLayout adjusts layout for bearer bars of the given width.
func BearerLayout(layout CanvasLayout, bearerWidth float64, box bool) CanvasLayout {
	if box {
		layout.InsetX += bearerWidth
	}
	layout.InsetY += bearerWidth
	switch layout.Config.HumanReadable.Placement {
	case PlacementBottom:
		layout.TextOffset += bearerWidth
	case PlacementTop:
		layout.TextOffset -= bearerWidth
	}
	return layout
}

// NewBearerBarCanvasHandler returns a handler drawing onto canvas. The layout
// must not already include the bearer adjustment.
func NewBearerBarCanvasHandler(canvas Canvas, layout CanvasLayout, bearerWidth float64, box bool) *BearerBarCanvasHandler {
	return &BearerBarCanvasHandler{
		ClassicCanvasHandler: NewClassicCanvasHandler(canvas, BearerLayout(layout, bearerWidth, box)),
		bearerWidth:          bearerWidth,
		box:                  box,
	}
}

func (h *BearerBarCanvasHandler) StartBarcode(msg, formattedMsg string) {
	h.ClassicCanvasHandler.StartBarcode(msg, formattedMsg)

	layout := h.Layout()
	dim := layout.Dimension
	bw := h.bearerWidth
	barHeight := layout.Config.BarHeight()
	top := h.BarTop() - bw
	bottom := top + bw + barHeight
	c := h.Canvas()
	c.DrawRectWH(0, top, dim.WidthPlusQuiet(), bw)
	c.DrawRectWH(0, bottom, dim.WidthPlusQuiet(), bw)
	if h.box {
		c.DrawRectWH(0, top, bw, barHeight+2*bw)
		c.DrawRectWH(dim.WidthPlusQuiet()-bw, top, bw, barHeight+2*bw)
	}
}
