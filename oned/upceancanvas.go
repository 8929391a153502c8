package oned

import (
	"github.com/ericlevine/barcodegen"
)

type caption struct {
	text   string
	x1, x2 float64
	y      float64
}

// upceanCanvasHandler draws UPC/EAN symbols. Guard bars reach into the
// caption area, digit groups get their own caption and the add-on caption
// sits above the add-on bars.
type upceanCanvasHandler struct {
	*barcodegen.ClassicCanvasHandler
	groups   []barcodegen.BarGroup
	submsgs  []string
	starts   []float64
	captions []caption
	startX   float64
	mainEnd  float64
	check    string
}

func newUPCEANCanvasHandler(canvas barcodegen.Canvas, layout barcodegen.CanvasLayout) *upceanCanvasHandler {
	return &upceanCanvasHandler{ClassicCanvasHandler: barcodegen.NewClassicCanvasHandler(canvas, layout)}
}

func (h *upceanCanvasHandler) StartBarcode(msg, formattedMsg string) {
	h.ClassicCanvasHandler.StartBarcode(msg, formattedMsg)
	h.startX = h.X()
}

func (h *upceanCanvasHandler) StartBarGroup(group barcodegen.BarGroup, submsg string) {
	h.groups = append(h.groups, group)
	h.submsgs = append(h.submsgs, submsg)
	h.starts = append(h.starts, h.X())
}

func (h *upceanCanvasHandler) current() (barcodegen.BarGroup, bool) {
	if len(h.groups) == 0 {
		return 0, false
	}
	return h.groups[len(h.groups)-1], true
}

func (h *upceanCanvasHandler) AddBar(black bool, width int) {
	group, ok := h.current()
	layout := h.Layout()
	cfg := layout.Config
	if !black || !ok || cfg.HumanReadable.Placement == barcodegen.PlacementNone {
		h.ClassicCanvasHandler.AddBar(black, width)
		return
	}
	w := float64(width) * cfg.ModuleWidth
	top := h.BarTop()
	height := cfg.BarHeight()
	switch group {
	case barcodegen.GroupUPCEANGuard:
		ext := cfg.HumanReadable.FontSize / 2
		if cfg.HumanReadable.Placement == barcodegen.PlacementTop {
			top -= ext
		}
		height += ext
	case barcodegen.GroupUPCEANSupplemental:
		if cfg.HumanReadable.Placement == barcodegen.PlacementBottom {
			top += cfg.HumanReadableHeight()
		}
	default:
		h.ClassicCanvasHandler.AddBar(black, width)
		return
	}
	h.Canvas().DrawRectWH(h.X(), top, w, height)
	h.ClassicCanvasHandler.AddBar(false, width)
}

func (h *upceanCanvasHandler) EndBarGroup() {
	n := len(h.groups) - 1
	if n < 0 {
		return
	}
	group, submsg, start := h.groups[n], h.submsgs[n], h.starts[n]
	h.groups, h.submsgs, h.starts = h.groups[:n], h.submsgs[:n], h.starts[:n]

	cfg := h.Layout().Config
	mw := cfg.ModuleWidth
	baseline := h.Layout().Dimension.YOffset() + cfg.TextBaseline()
	switch group {
	case barcodegen.GroupUPCEANLead:
		h.captions = append(h.captions, caption{submsg, h.startX - 7*mw, h.startX - mw, baseline})
	case barcodegen.GroupUPCEANGroup:
		h.captions = append(h.captions, caption{submsg, start, h.X(), baseline})
	case barcodegen.GroupUPCEANCheck:
		if n == 0 {
			// Outside a digit group the check digit is printed right of the
			// symbol.
			h.check = submsg
		}
	case barcodegen.GroupUPCEANGuard:
		h.mainEnd = h.X()
	case barcodegen.GroupUPCEANSupplemental:
		y := h.BarTop() + cfg.HumanReadable.FontSize
		if cfg.HumanReadable.Placement == barcodegen.PlacementTop {
			y = h.Layout().Dimension.YOffset() + cfg.TextBaseline()
		}
		// The caption covers the add-on bars, not the separator.
		sep := float64(patternWidth(supplementalSeparator)) * mw
		h.captions = append(h.captions, caption{submsg, start + sep, h.X(), y})
	}
}

func (h *upceanCanvasHandler) EndBarcode() {
	cfg := h.Layout().Config
	if cfg.HumanReadable.Placement == barcodegen.PlacementNone {
		return
	}
	tc, ok := h.Canvas().(barcodegen.TextCanvas)
	if !ok {
		return
	}
	if h.check != "" {
		baseline := h.Layout().Dimension.YOffset() + cfg.TextBaseline()
		h.captions = append(h.captions, caption{h.check, h.mainEnd + cfg.ModuleWidth, h.mainEnd + 7*cfg.ModuleWidth, baseline})
	}
	for _, c := range h.captions {
		tc.DrawCenteredText(c.text, c.x1, c.x2, c.y, cfg.HumanReadable.FontName, cfg.HumanReadable.FontSize)
	}
}
