// Package assets names the images and fonts the shooter draws with.
// Handles are opaque to game code; each frontend realises them from the
// catalog below (procedural shapes on desktop, glyph blocks in the terminal).
package assets

import (
	"sort"
	"unicode/utf8"

	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// Image is an opaque image handle.
type Image string

const (
	Ship     Image = "spaceship"
	Enemy    Image = "enemy"
	Shot     Image = "shot"
	Power    Image = "power"
	Heart    Image = "heart"
	Tutorial Image = "tutorial"
)

// Font is an opaque font handle: a face name and a pixel size.
type Font struct {
	Face string
	Size int
}

var (
	Monospace60 = Font{Face: "monospace", Size: 60}
	Sans50      = Font{Face: "sans", Size: 50}
)

// A monospace glyph advances 6/10 of its size.
const (
	advanceNum = 6
	advanceDen = 10
)

// MeasureText returns the nominal size of s rendered in f.
func MeasureText(s string, f Font) core.Vector2 {
	n := utf8.RuneCountInString(s)
	return core.Vec(float64(n*f.Size*advanceNum)/advanceDen, float64(f.Size))
}

// Sprite describes how frontends realise an Image.
type Sprite struct {
	W, H    int            // Natural size in world units
	Glyph   rune           // Terminal fill glyph
	Color   core.RGB       // Main color
	Accent  core.RGB       // Secondary color (outline, cockpit)
	Outline []core.Vector2 // Polygon in unit coordinates; nil means a full rectangle
	Lines   []string       // Text printed on card images
}

var catalog = map[Image]Sprite{
	Ship: {
		W: 50, H: 50, Glyph: '▲',
		Color:  core.RGB{R: 180, G: 190, B: 255},
		Accent: core.RGB{R: 90, G: 200, B: 255},
		Outline: []core.Vector2{
			{X: 0.5, Y: 0}, {X: 0.65, Y: 0.45}, {X: 1, Y: 0.8}, {X: 1, Y: 1},
			{X: 0.5, Y: 0.85}, {X: 0, Y: 1}, {X: 0, Y: 0.8}, {X: 0.35, Y: 0.45},
		},
	},
	Enemy: {
		W: 90, H: 75, Glyph: '▼',
		Color:  core.RGB{R: 220, G: 80, B: 80},
		Accent: core.RGB{R: 255, G: 200, B: 120},
		Outline: []core.Vector2{
			{X: 0, Y: 0.2}, {X: 0.3, Y: 0}, {X: 0.7, Y: 0}, {X: 1, Y: 0.2},
			{X: 0.85, Y: 0.7}, {X: 0.5, Y: 1}, {X: 0.15, Y: 0.7},
		},
	},
	Shot: {
		W: 10, H: 33, Glyph: '│',
		Color:  core.RGB{R: 120, G: 255, B: 160},
		Accent: core.White,
	},
	Power: {
		W: 30, H: 30, Glyph: '◆',
		Color:  core.RGB{R: 255, G: 220, B: 60},
		Accent: core.White,
		Outline: []core.Vector2{
			{X: 0.5, Y: 0}, {X: 1, Y: 0.5}, {X: 0.5, Y: 1}, {X: 0, Y: 0.5},
		},
	},
	Heart: {
		W: 40, H: 40, Glyph: '♥',
		Color:  core.RGB{R: 230, G: 40, B: 70},
		Accent: core.White,
		Outline: []core.Vector2{
			{X: 0.5, Y: 0.25}, {X: 0.75, Y: 0}, {X: 1, Y: 0.1}, {X: 1, Y: 0.45},
			{X: 0.5, Y: 1}, {X: 0, Y: 0.45}, {X: 0, Y: 0.1}, {X: 0.25, Y: 0},
		},
	},
	Tutorial: {
		W: 500, H: 220, Glyph: ' ',
		Color:  core.RGB{R: 30, G: 30, B: 60},
		Accent: core.White,
		Lines: []string{
			"WASD / Arrows - move",
			"Space - shoot",
			"P - pause",
			"Catch power-ups to widen fire",
		},
	},
}

// Lookup returns the sprite for img.
func Lookup(img Image) (Sprite, bool) {
	s, ok := catalog[img]
	return s, ok
}

// Size returns the natural size of img, or zero for unknown handles.
func Size(img Image) core.Vector2 {
	s, ok := catalog[img]
	if !ok {
		return core.Vector2{}
	}
	return core.Vec(float64(s.W), float64(s.H))
}

// All returns every known image handle, sorted by name.
func All() []Image {
	out := make([]Image, 0, len(catalog))
	for img := range catalog {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
