package engine

import (
	"image"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// Renderer is a stateless facade issuing draw calls against one Surface.
// Calls paint in order; there is no batching and no z-ordering.
type Renderer struct {
	s Surface
}

// NewRenderer wraps a surface.
func NewRenderer(s Surface) *Renderer {
	return &Renderer{s: s}
}

// Surface returns the wrapped surface.
func (r *Renderer) Surface() Surface {
	return r.s
}

// Size returns the surface size.
func (r *Renderer) Size() core.Vector2 {
	w, h := r.s.Size()
	return core.Vec(float64(w), float64(h))
}

// Fill paints the whole surface.
func (r *Renderer) Fill(c core.RGB) {
	r.s.Fill(c)
}

// DrawRect fills a rectangle.
func (r *Renderer) DrawRect(rect core.Rectangle, c core.RGB) {
	r.s.FillRect(int(rect.Pos.X), int(rect.Pos.Y), int(rect.Size.X), int(rect.Size.Y), c)
}

// DrawRectBorder outlines a rectangle with the given stroke width.
func (r *Renderer) DrawRectBorder(rect core.Rectangle, c core.RGB, width int) {
	r.s.StrokeRect(int(rect.Pos.X), int(rect.Pos.Y), int(rect.Size.X), int(rect.Size.Y), width, c)
}

// DrawCircle fills a circle.
func (r *Renderer) DrawCircle(center core.Vector2, radius float64, c core.RGB) {
	r.s.FillCircle(int(center.X), int(center.Y), int(radius), c)
}

// DrawLine draws a segment from a to b.
func (r *Renderer) DrawLine(a, b core.Vector2, c core.RGB) {
	r.s.Line(int(a.X), int(a.Y), int(b.X), int(b.Y), c)
}

// DrawPolygon fills the polygon through pts.
func (r *Renderer) DrawPolygon(pts []core.Vector2, c core.RGB) {
	ip := make([]image.Point, len(pts))
	for i, p := range pts {
		ip[i] = image.Pt(int(p.X), int(p.Y))
	}
	r.s.FillPolygon(ip, c)
}

// TextSize returns the size text would occupy in font f.
func (r *Renderer) TextSize(text string, f assets.Font) core.Vector2 {
	w, h := r.s.TextSize(text, f)
	return core.Vec(float64(w), float64(h))
}

// DrawText draws text with its top-left corner at pos.
func (r *Renderer) DrawText(text string, pos core.Vector2, c core.RGB, f assets.Font) {
	r.s.Text(int(pos.X), int(pos.Y), text, c, f)
}

// DrawTextCentered draws text centered on pos.
func (r *Renderer) DrawTextCentered(text string, pos core.Vector2, c core.RGB, f assets.Font) {
	size := r.TextSize(text, f)
	r.DrawText(text, pos.Sub(size.Div(2)), c, f)
}

// ImageSize returns the size of an image handle.
func (r *Renderer) ImageSize(img assets.Image) core.Vector2 {
	w, h := r.s.ImageSize(img)
	return core.Vec(float64(w), float64(h))
}

// DrawImage draws img with its top-left corner at pos.
func (r *Renderer) DrawImage(img assets.Image, pos core.Vector2) {
	r.s.Image(img, int(pos.X), int(pos.Y), 0)
}

// DrawImageCentered draws img centered on pos.
func (r *Renderer) DrawImageCentered(img assets.Image, pos core.Vector2) {
	r.DrawImage(img, pos.Sub(r.ImageSize(img).Div(2)))
}

// DrawImageRotated draws img at pos rotated by angle degrees.
func (r *Renderer) DrawImageRotated(img assets.Image, pos core.Vector2, angle float64) {
	r.s.Image(img, int(pos.X), int(pos.Y), angle)
}

// DrawImageRotatedCentered draws img centered on pos, rotated by angle degrees.
func (r *Renderer) DrawImageRotatedCentered(img assets.Image, pos core.Vector2, angle float64) {
	r.DrawImageRotated(img, pos.Sub(r.ImageSize(img).Div(2)), angle)
}
