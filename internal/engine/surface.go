package engine

import (
	"image"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// Surface is the drawing target a frontend provides. Coordinates are in
// whole world units; the Renderer truncates before calling in.
type Surface interface {
	// Size returns the surface size in world units.
	Size() (w, h int)

	Fill(c core.RGB)
	FillRect(x, y, w, h int, c core.RGB)
	StrokeRect(x, y, w, h, width int, c core.RGB)
	FillCircle(cx, cy, r int, c core.RGB)
	Line(x0, y0, x1, y1 int, c core.RGB)
	FillPolygon(pts []image.Point, c core.RGB)

	// Text draws s with its top-left corner at (x, y).
	Text(x, y int, s string, c core.RGB, f assets.Font)
	TextSize(s string, f assets.Font) (w, h int)

	// Image draws img with its top-left corner at (x, y), rotated by
	// angle degrees counter-clockwise about its own center.
	Image(img assets.Image, x, y int, angle float64)
	ImageSize(img assets.Image) (w, h int)
}

// NopSurface discards all drawing and reports catalog metrics.
type NopSurface struct {
	W, H int
}

func (s NopSurface) Size() (int, int)                           { return s.W, s.H }
func (NopSurface) Fill(core.RGB)                                {}
func (NopSurface) FillRect(int, int, int, int, core.RGB)        {}
func (NopSurface) StrokeRect(int, int, int, int, int, core.RGB) {}
func (NopSurface) FillCircle(int, int, int, core.RGB)           {}
func (NopSurface) Line(int, int, int, int, core.RGB)            {}
func (NopSurface) FillPolygon([]image.Point, core.RGB)          {}
func (NopSurface) Text(int, int, string, core.RGB, assets.Font) {}
func (NopSurface) Image(assets.Image, int, int, float64)        {}
func (NopSurface) TextSize(s string, f assets.Font) (int, int)  { return catalogTextSize(s, f) }
func (NopSurface) ImageSize(img assets.Image) (int, int)        { return catalogImageSize(img) }

func catalogTextSize(s string, f assets.Font) (int, int) {
	v := assets.MeasureText(s, f)
	return int(v.X), int(v.Y)
}

func catalogImageSize(img assets.Image) (int, int) {
	v := assets.Size(img)
	return int(v.X), int(v.Y)
}

// Op names a recorded draw call.
type Op string

const (
	OpFill       Op = "fill"
	OpRect       Op = "rect"
	OpRectBorder Op = "rect_border"
	OpCircle     Op = "circle"
	OpLine       Op = "line"
	OpPolygon    Op = "polygon"
	OpText       Op = "text"
	OpImage      Op = "image"
)

// DrawCall is one call captured by a RecordingSurface.
type DrawCall struct {
	Op     Op
	X, Y   int // Position, circle center or line start
	W, H   int // Size, circle radius in W, or line end
	Color  core.RGB
	Text   string
	Font   assets.Font
	Stroke int // Border width of OpRectBorder
	Image  assets.Image
	Angle  float64
	Points []image.Point
}

// RecordingSurface keeps every draw call in order. Useful for tests and
// for asserting draw order.
type RecordingSurface struct {
	W, H  int
	Calls []DrawCall
}

// NewRecordingSurface creates an empty recorder of the given size.
func NewRecordingSurface(w, h int) *RecordingSurface {
	return &RecordingSurface{W: w, H: h}
}

func (s *RecordingSurface) add(c DrawCall) { s.Calls = append(s.Calls, c) }

func (s *RecordingSurface) Size() (int, int) { return s.W, s.H }

func (s *RecordingSurface) Fill(c core.RGB) {
	s.add(DrawCall{Op: OpFill, W: s.W, H: s.H, Color: c})
}

func (s *RecordingSurface) FillRect(x, y, w, h int, c core.RGB) {
	s.add(DrawCall{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (s *RecordingSurface) StrokeRect(x, y, w, h, width int, c core.RGB) {
	s.add(DrawCall{Op: OpRectBorder, X: x, Y: y, W: w, H: h, Stroke: width, Color: c})
}

func (s *RecordingSurface) FillCircle(cx, cy, r int, c core.RGB) {
	s.add(DrawCall{Op: OpCircle, X: cx, Y: cy, W: r, H: r, Color: c})
}

func (s *RecordingSurface) Line(x0, y0, x1, y1 int, c core.RGB) {
	s.add(DrawCall{Op: OpLine, X: x0, Y: y0, W: x1, H: y1, Color: c})
}

func (s *RecordingSurface) FillPolygon(pts []image.Point, c core.RGB) {
	s.add(DrawCall{Op: OpPolygon, Points: append([]image.Point(nil), pts...), Color: c})
}

func (s *RecordingSurface) Text(x, y int, text string, c core.RGB, f assets.Font) {
	s.add(DrawCall{Op: OpText, X: x, Y: y, Text: text, Font: f, Color: c})
}

func (s *RecordingSurface) TextSize(text string, f assets.Font) (int, int) {
	return catalogTextSize(text, f)
}

func (s *RecordingSurface) Image(img assets.Image, x, y int, angle float64) {
	s.add(DrawCall{Op: OpImage, X: x, Y: y, Image: img, Angle: angle})
}

func (s *RecordingSurface) ImageSize(img assets.Image) (int, int) {
	return catalogImageSize(img)
}

// Replay issues the recorded calls on dst in order.
func (s *RecordingSurface) Replay(dst Surface) {
	for _, c := range s.Calls {
		switch c.Op {
		case OpFill:
			dst.Fill(c.Color)
		case OpRect:
			dst.FillRect(c.X, c.Y, c.W, c.H, c.Color)
		case OpRectBorder:
			dst.StrokeRect(c.X, c.Y, c.W, c.H, c.Stroke, c.Color)
		case OpCircle:
			dst.FillCircle(c.X, c.Y, c.W, c.Color)
		case OpLine:
			dst.Line(c.X, c.Y, c.W, c.H, c.Color)
		case OpPolygon:
			dst.FillPolygon(c.Points, c.Color)
		case OpText:
			dst.Text(c.X, c.Y, c.Text, c.Color, c.Font)
		case OpImage:
			dst.Image(c.Image, c.X, c.Y, c.Angle)
		}
	}
}

// Reset drops all recorded calls.
func (s *RecordingSurface) Reset() {
	s.Calls = s.Calls[:0]
}

// Count returns how many calls used op.
func (s *RecordingSurface) Count(op Op) int {
	n := 0
	for _, c := range s.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns every string drawn, in order.
func (s *RecordingSurface) Texts() []string {
	var out []string
	for _, c := range s.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Index returns the position of the first call matching pred, or -1.
func (s *RecordingSurface) Index(pred func(DrawCall) bool) int {
	for i, c := range s.Calls {
		if pred(c) {
			return i
		}
	}
	return -1
}
