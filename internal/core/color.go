package core

import "fmt"

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Palette used by the shooter.
var (
	Black        = RGB{0, 0, 0}
	White        = RGB{255, 255, 255}
	MenuGray     = RGB{100, 100, 100}
	TitleGray    = RGB{133, 133, 133}
	ButtonIdle   = RGB{133, 133, 133}
	ButtonHover  = RGB{200, 200, 200}
	ButtonClick  = RGB{230, 230, 230}
	PlayerTint   = RGB{200, 200, 255} // Player hit particles
	EnemyTint    = RGB{255, 200, 200} // Enemy hit particles
	EnemyShot    = RGB{255, 64, 64}
)

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luma returns the perceived brightness in [0, 255].
func (c RGB) Luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// RGBA implements color.Color so an RGB can be handed to image APIs directly.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
