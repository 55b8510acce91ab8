package desktop

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// cardFont prints the lines of card sprites.
var cardFont = assets.Font{Face: "sans", Size: 26}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

// The bitmap face is scaled to the requested size when drawn.
var (
	face        = text.NewGoXFace(basicfont.Face7x13)
	faceAdvance = float64(basicfont.Face7x13.Advance)
	faceHeight  = float64(basicfont.Face7x13.Height)
)

func init() {
	whiteImage.Fill(color.White)
}

// imageSurface draws world-space calls straight onto an ebiten image. The
// image is the logical screen, so world units are pixels.
type imageSurface struct {
	dst     *ebiten.Image
	sprites *spriteCache
}

func (s imageSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s imageSurface) Fill(c core.RGB) {
	s.dst.Fill(c)
}

func (s imageSurface) FillRect(x, y, w, h int, c core.RGB) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s imageSurface) StrokeRect(x, y, w, h, width int, c core.RGB) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(max(width, 1)), c, false)
}

func (s imageSurface) FillCircle(cx, cy, r int, c core.RGB) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s imageSurface) Line(x0, y0, x1, y1 int, c core.RGB) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, true)
}

func (s imageSurface) FillPolygon(pts []image.Point, c core.RGB) {
	poly := make([]core.Vector2, len(pts))
	for i, p := range pts {
		poly[i] = core.Vec(float64(p.X), float64(p.Y))
	}
	fillPolygon(s.dst, poly, c)
}

func (s imageSurface) Text(x, y int, str string, c core.RGB, f assets.Font) {
	drawText(s.dst, x, y, str, c, f)
}

// TextSize reports catalog metrics so layout matches every frontend.
func (s imageSurface) TextSize(str string, f assets.Font) (int, int) {
	v := assets.MeasureText(str, f)
	return int(v.X), int(v.Y)
}

// Image draws a cached sprite rotated counter-clockwise about its center.
func (s imageSurface) Image(img assets.Image, x, y int, angle float64) {
	sprite := s.sprites.get(img)
	if sprite == nil {
		return
	}
	b := sprite.Bounds()
	hw, hh := float64(b.Dx())/2, float64(b.Dy())/2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-hw, -hh)
	op.GeoM.Rotate(-angle * math.Pi / 180)
	op.GeoM.Translate(float64(x)+hw, float64(y)+hh)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(sprite, op)
}

func (s imageSurface) ImageSize(img assets.Image) (int, int) {
	v := assets.Size(img)
	return int(v.X), int(v.Y)
}

// drawText scales the bitmap face to f and centers the run on the box the
// catalog metrics give it.
func drawText(dst *ebiten.Image, x, y int, str string, c core.RGB, f assets.Font) {
	box := assets.MeasureText(str, f)
	scale := float64(f.Size) / faceHeight
	drawn := faceAdvance * scale * float64(len([]rune(str)))

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x)+(box.X-drawn)/2, float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, str, face, op)
}

// fillPolygon fills poly with the even-odd rule.
func fillPolygon(dst *ebiten.Image, poly []core.Vector2, c core.RGB) {
	if len(poly) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, 1
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.EvenOdd,
		AntiAlias: true,
	})
}

// spriteCache renders each catalog sprite once.
type spriteCache struct {
	images map[assets.Image]*ebiten.Image
}

func newSpriteCache() *spriteCache {
	return &spriteCache{images: make(map[assets.Image]*ebiten.Image)}
}

// warm renders the whole catalog up front.
func (c *spriteCache) warm() {
	for _, img := range assets.All() {
		c.get(img)
	}
}

func (c *spriteCache) get(img assets.Image) *ebiten.Image {
	if im, ok := c.images[img]; ok {
		return im
	}
	sp, ok := assets.Lookup(img)
	if !ok {
		return nil
	}
	im := renderSprite(sp)
	c.images[img] = im
	return im
}

// renderSprite paints a sprite at its natural size: cards get a panel with
// their lines, shapes get their outline filled and traced in the accent.
func renderSprite(sp assets.Sprite) *ebiten.Image {
	im := ebiten.NewImage(sp.W, sp.H)
	w, h := float32(sp.W), float32(sp.H)

	switch {
	case len(sp.Lines) > 0:
		im.Fill(sp.Color)
		vector.StrokeRect(im, 2, 2, w-4, h-4, 3, sp.Accent, false)
		lineH := cardFont.Size * 3 / 2
		top := (sp.H - lineH*len(sp.Lines)) / 2
		for i, line := range sp.Lines {
			lw := int(assets.MeasureText(line, cardFont).X)
			drawText(im, (sp.W-lw)/2, top+i*lineH, line, sp.Accent, cardFont)
		}

	case sp.Outline == nil:
		vector.DrawFilledRect(im, 0, 0, w, h, sp.Color, true)
		vector.DrawFilledRect(im, w/4, 0, w/2, h/3, sp.Accent, true)

	default:
		poly := make([]core.Vector2, len(sp.Outline))
		for i, p := range sp.Outline {
			poly[i] = core.Vec(p.X*float64(sp.W), p.Y*float64(sp.H))
		}
		fillPolygon(im, poly, sp.Color)
		for i, p := range poly {
			q := poly[(i+1)%len(poly)]
			vector.StrokeLine(im, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 2, sp.Accent, true)
		}
	}
	return im
}
