// Package eventlog records the logic handler event stream of a symbol and
// checks it against the handler protocol.
package eventlog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericlevine/barcodegen"
)

// Kind names an event.
type Kind string

const (
	KindStartBarcode  Kind = "start-barcode"
	KindStartRow      Kind = "start-row"
	KindStartBarGroup Kind = "start-group"
	KindBar           Kind = "bar"
	KindCodeword      Kind = "codeword"
	KindEndBarGroup   Kind = "end-group"
	KindEndRow        Kind = "end-row"
	KindEndBarcode    Kind = "end-barcode"
)

// Event is a single recorded handler call.
type Event struct {
	Kind      Kind   `yaml:"event" json:"event"`
	Msg       string `yaml:"msg,omitempty" json:"msg,omitempty"`
	Formatted string `yaml:"formatted,omitempty" json:"formatted,omitempty"`
	Group     string `yaml:"group,omitempty" json:"group,omitempty"`
	Submsg    string `yaml:"submsg,omitempty" json:"submsg,omitempty"`
	Black     bool   `yaml:"black,omitempty" json:"black,omitempty"`
	Width     int    `yaml:"width,omitempty" json:"width,omitempty"`
	Value     int    `yaml:"value,omitempty" json:"value,omitempty"`
	Cluster   int    `yaml:"cluster,omitempty" json:"cluster,omitempty"`
}

// Recorder implements barcodegen.TwoDimHandler and records every call.
// Protocol violations are collected and reported by Err.
type Recorder struct {
	events     []Event
	violations []string
	depth      int
	inRow      bool
	started    bool
	ended      bool
}

var _ barcodegen.TwoDimHandler = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) violate(format string, args ...any) {
	r.violations = append(r.violations, fmt.Sprintf(format, args...))
}

func (r *Recorder) record(e Event) {
	if r.ended {
		r.violate("%s after end-barcode", e.Kind)
	} else if !r.started && e.Kind != KindStartBarcode {
		r.violate("%s before start-barcode", e.Kind)
	}
	r.events = append(r.events, e)
}

func (r *Recorder) StartBarcode(msg, formattedMsg string) {
	if r.started {
		r.violate("start-barcode called twice")
	}
	r.record(Event{Kind: KindStartBarcode, Msg: msg, Formatted: formattedMsg})
	r.started = true
}

func (r *Recorder) StartRow() {
	if r.inRow {
		r.violate("start-row inside a row")
	}
	r.inRow = true
	r.record(Event{Kind: KindStartRow})
}

func (r *Recorder) StartBarGroup(group barcodegen.BarGroup, submsg string) {
	r.depth++
	if r.depth > 2 {
		r.violate("bar groups nested %d levels deep", r.depth)
	}
	r.record(Event{Kind: KindStartBarGroup, Group: group.String(), Submsg: submsg})
}

func (r *Recorder) AddBar(black bool, width int) {
	if width < 1 {
		r.violate("bar width %d is not positive", width)
	}
	if !r.inRow {
		r.violate("bar outside a row")
	}
	r.record(Event{Kind: KindBar, Black: black, Width: width})
}

func (r *Recorder) AddCodeword(cw barcodegen.Codeword) {
	if !r.inRow {
		r.violate("codeword outside a row")
	}
	r.record(Event{Kind: KindCodeword, Value: cw.Value, Cluster: cw.Cluster})
}

func (r *Recorder) EndBarGroup() {
	if r.depth == 0 {
		r.violate("end-group without start-group")
	} else {
		r.depth--
	}
	r.record(Event{Kind: KindEndBarGroup})
}

func (r *Recorder) EndRow() {
	if !r.inRow {
		r.violate("end-row without start-row")
	}
	if r.depth != 0 {
		r.violate("end-row with %d open groups", r.depth)
	}
	r.inRow = false
	r.record(Event{Kind: KindEndRow})
}

func (r *Recorder) EndBarcode() {
	if r.inRow {
		r.violate("end-barcode inside a row")
	}
	r.record(Event{Kind: KindEndBarcode})
	r.ended = true
}

// Events returns the recorded events.
func (r *Recorder) Events() []Event {
	return r.events
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Err returns the protocol violations seen so far, or nil. A stream that
// started must also have ended.
func (r *Recorder) Err() error {
	v := r.violations
	if r.started && !r.ended {
		v = append(v, "missing end-barcode")
	}
	if len(v) == 0 {
		return nil
	}
	return fmt.Errorf("handler protocol violated: %s", strings.Join(v, "; "))
}

// Count returns the number of events of kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Codewords returns the values of all recorded codewords.
func (r *Recorder) Codewords() []int {
	var out []int
	for _, e := range r.events {
		if e.Kind == KindCodeword {
			out = append(out, e.Value)
		}
	}
	return out
}

// Groups returns the "group:submsg" of every bar group in order.
func (r *Recorder) Groups() []string {
	var out []string
	for _, e := range r.events {
		if e.Kind == KindStartBarGroup {
			out = append(out, e.Group+":"+e.Submsg)
		}
	}
	return out
}

// Modules returns the number of modules in every row, bars and spaces
// included.
func (r *Recorder) Modules() []int {
	var out []int
	n := 0
	for _, e := range r.events {
		switch e.Kind {
		case KindStartRow:
			n = 0
		case KindBar:
			n += e.Width
		case KindEndRow:
			out = append(out, n)
		}
	}
	return out
}

// String renders the stream compactly. Bars are written as B<width> or
// W<width>, groups as <SBG:group:submsg>…</SBG>, codewords as [value:cluster].
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, e := range r.events {
		switch e.Kind {
		case KindStartBarcode:
			sb.WriteString("<BC>")
		case KindStartRow:
			sb.WriteString("<ROW>")
		case KindStartBarGroup:
			sb.WriteString("<SBG:" + e.Group + ":" + e.Submsg + ">")
		case KindBar:
			if e.Black {
				sb.WriteByte('B')
			} else {
				sb.WriteByte('W')
			}
			sb.WriteString(strconv.Itoa(e.Width))
		case KindCodeword:
			sb.WriteString("[" + strconv.Itoa(e.Value) + ":" + strconv.Itoa(e.Cluster) + "]")
		case KindEndBarGroup:
			sb.WriteString("</SBG>")
		case KindEndRow:
			sb.WriteString("</ROW>")
		case KindEndBarcode:
			sb.WriteString("</BC>")
		}
	}
	return sb.String()
}
