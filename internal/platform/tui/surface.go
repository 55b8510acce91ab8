package tui

import (
	"image"
	"unicode/utf8"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// CellSurface rasterises world-space draw calls into a cell Screen. The
// world keeps its logical size; each cell covers a world/cells slice of it.
// Text is laid out one glyph per cell and centered on the span it would
// cover at its nominal size, so centered labels stay centered.
type CellSurface struct {
	screen *core.Screen
	w, h   int
}

// NewCellSurface wraps screen as a world of w by h units.
func NewCellSurface(screen *core.Screen, w, h int) *CellSurface {
	return &CellSurface{screen: screen, w: max(w, 1), h: max(h, 1)}
}

// Screen returns the underlying cell buffer.
func (s *CellSurface) Screen() *core.Screen { return s.screen }

// SetWorldSize changes the logical size mapped onto the screen.
func (s *CellSurface) SetWorldSize(w, h int) {
	s.w, s.h = max(w, 1), max(h, 1)
}

func (s *CellSurface) Size() (int, int) { return s.w, s.h }

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (s *CellSurface) col(x int) int { return floorDiv(x*s.screen.Width(), s.w) }
func (s *CellSurface) row(y int) int { return floorDiv(y*s.screen.Height(), s.h) }

// cellCenter returns the world position of the middle of cell (cx, cy).
func (s *CellSurface) cellCenter(cx, cy int) core.Vector2 {
	return core.Vec(
		(float64(cx)+0.5)*float64(s.w)/float64(s.screen.Width()),
		(float64(cy)+0.5)*float64(s.h)/float64(s.screen.Height()),
	)
}

// span converts a world box to a cell box covering at least one cell.
func (s *CellSurface) span(x, y, w, h int) (c0, r0, cw, rh int) {
	c0, r0 = s.col(x), s.row(y)
	c1, r1 := s.col(x+w), s.row(y+h)
	return c0, r0, max(c1-c0, 1), max(r1-r0, 1)
}

func (s *CellSurface) Fill(c core.RGB) {
	s.screen.Fill(c)
}

func (s *CellSurface) FillRect(x, y, w, h int, c core.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, r0, cw, rh := s.span(x, y, w, h)
	s.screen.FillRect(c0, r0, cw, rh, c)
}

func (s *CellSurface) StrokeRect(x, y, w, h, _ int, c core.RGB) {
	c0, r0, cw, rh := s.span(x, y, w, h)
	s.screen.DrawBox(c0, r0, max(cw, 2), max(rh, 2), c)
}

// FillCircle paints the cells whose centers fall inside the circle. A
// circle smaller than a cell becomes a dot glyph.
func (s *CellSurface) FillCircle(cx, cy, r int, c core.RGB) {
	if r <= 0 {
		return
	}
	center := core.Vec(float64(cx), float64(cy))
	c0, r0, cw, rh := s.span(cx-r, cy-r, 2*r, 2*r)
	painted := false
	for y := r0; y < r0+rh; y++ {
		for x := c0; x < c0+cw; x++ {
			if s.cellCenter(x, y).Distance(center) <= float64(r) {
				s.screen.Paint(x, y, c)
				painted = true
			}
		}
	}
	if !painted {
		s.screen.SetRune(s.col(cx), s.row(cy), '•', c)
	}
}

// Line steps through cells from one end to the other.
func (s *CellSurface) Line(x0, y0, x1, y1 int, c core.RGB) {
	a := core.Vec(float64(s.col(x0)), float64(s.row(y0)))
	b := core.Vec(float64(s.col(x1)), float64(s.row(y1)))
	steps := int(max(abs(b.X-a.X), abs(b.Y-a.Y)))
	for i := 0; i <= steps; i++ {
		p := a
		if steps > 0 {
			p = a.Add(b.Sub(a).Mul(float64(i) / float64(steps)))
		}
		s.screen.SetRune(int(p.X+0.5), int(p.Y+0.5), '·', c)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (s *CellSurface) FillPolygon(pts []image.Point, c core.RGB) {
	if len(pts) < 3 {
		return
	}
	poly := make([]core.Vector2, len(pts))
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for i, p := range pts {
		poly[i] = core.Vec(float64(p.X), float64(p.Y))
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	s.fillShape(minX, minY, maxX-minX, maxY-minY, poly, mark{bg: c})
}

// mark is how fillShape treats a covered cell: a background paint when
// glyph is zero, otherwise a colored glyph over the existing background.
type mark struct {
	glyph rune
	fg    core.RGB
	bg    core.RGB
}

// fillShape marks the cells of the box (x, y, w, h) whose centers fall in
// poly. It reports whether any cell was marked.
func (s *CellSurface) fillShape(x, y, w, h int, poly []core.Vector2, m mark) bool {
	c0, r0, cw, rh := s.span(x, y, w, h)
	marked := false
	for cy := r0; cy < r0+rh; cy++ {
		for cx := c0; cx < c0+cw; cx++ {
			if poly != nil && !insidePolygon(s.cellCenter(cx, cy), poly) {
				continue
			}
			if m.glyph == 0 {
				s.screen.Paint(cx, cy, m.bg)
			} else {
				s.screen.SetRune(cx, cy, m.glyph, m.fg)
			}
			marked = true
		}
	}
	return marked
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(p core.Vector2, poly []core.Vector2) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Text centers the glyph run on the box the text would cover at its
// nominal size.
func (s *CellSurface) Text(x, y int, text string, c core.RGB, f assets.Font) {
	w, h := s.TextSize(text, f)
	s.textAt(x+w/2, y+h/2, text, c)
}

func (s *CellSurface) textAt(cx, cy int, text string, c core.RGB) {
	n := utf8.RuneCountInString(text)
	s.screen.DrawText(s.col(cx)-n/2, s.row(cy), text, c)
}

func (s *CellSurface) TextSize(text string, f assets.Font) (int, int) {
	v := assets.MeasureText(text, f)
	return int(v.X), int(v.Y)
}

// Image draws a catalog sprite as glyph cells inside its outline. Cards
// with text lines get a painted background instead. Rotation is not
// represented in cells.
func (s *CellSurface) Image(img assets.Image, x, y int, _ float64) {
	sp, ok := assets.Lookup(img)
	if !ok {
		return
	}

	if len(sp.Lines) > 0 {
		s.FillRect(x, y, sp.W, sp.H, sp.Color)
		s.StrokeRect(x, y, sp.W, sp.H, 1, sp.Accent)
		mid := s.row(y + sp.H/2)
		top := mid - len(sp.Lines)/2
		for i, line := range sp.Lines {
			n := utf8.RuneCountInString(line)
			s.screen.DrawText(s.col(x+sp.W/2)-n/2, top+i, line, sp.Accent)
		}
		return
	}

	var poly []core.Vector2
	if sp.Outline != nil {
		poly = make([]core.Vector2, len(sp.Outline))
		for i, p := range sp.Outline {
			poly[i] = core.Vec(float64(x)+p.X*float64(sp.W), float64(y)+p.Y*float64(sp.H))
		}
	}
	if !s.fillShape(x, y, sp.W, sp.H, poly, mark{glyph: sp.Glyph, fg: sp.Color}) {
		s.screen.SetRune(s.col(x+sp.W/2), s.row(y+sp.H/2), sp.Glyph, sp.Color)
	}
}

func (s *CellSurface) ImageSize(img assets.Image) (int, int) {
	v := assets.Size(img)
	return int(v.X), int(v.Y)
}
