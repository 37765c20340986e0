package render

import "image/color"

type CallKind string

const (
	CallClear    CallKind = "clear"
	CallFillRect CallKind = "fill_rect"
	CallStroke   CallKind = "stroke"
	CallFill     CallKind = "fill"
	CallText     CallKind = "text"
)

// Call is one recorded drawing command.
type Call struct {
	Kind   CallKind
	Rect   [4]float64
	Color  color.Color
	Path   Path
	Stroke Stroke
	Paint  Paint
	Text   string
	At     Point
	Style  TextStyle
}

// Recorder is a Surface that records every call instead of drawing. It lets
// renderers be exercised without a display.
type Recorder struct {
	W, H  float64
	Calls []Call
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Width() float64  { return r.W }
func (r *Recorder) Height() float64 { return r.H }

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Calls = append(r.Calls, Call{Kind: CallClear, Rect: [4]float64{x, y, w, h}})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallFillRect, Rect: [4]float64{x, y, w, h}, Color: c})
}

func (r *Recorder) StrokePath(p Path, s Stroke) {
	r.Calls = append(r.Calls, Call{Kind: CallStroke, Path: p, Stroke: s})
}

func (r *Recorder) FillPath(p Path, paint Paint) {
	r.Calls = append(r.Calls, Call{Kind: CallFill, Path: p, Paint: paint})
}

func (r *Recorder) DrawText(text string, x, y float64, style TextStyle) {
	r.Calls = append(r.Calls, Call{Kind: CallText, Text: text, At: Point{x, y}, Style: style})
}

// Filter returns the calls of the given kind in order.
func (r *Recorder) Filter(kind CallKind) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of calls of the given kind.
func (r *Recorder) Count(kind CallKind) int {
	return len(r.Filter(kind))
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
