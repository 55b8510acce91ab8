package core

// Default window settings.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFPS    = 60
)

// RuntimeConfig contains process-level parameters handed to the application.
type RuntimeConfig struct {
	Width  int   // World width in units (pixels on desktop)
	Height int   // World height in units
	FPS    int   // Frames per second
	Seed   int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FPS:    DefaultFPS,
		Seed:   0, // 0 means use current time in platform layer
	}
}

// Size returns the world size as a vector.
func (c RuntimeConfig) Size() Vector2 {
	return Vec(float64(c.Width), float64(c.Height))
}
