package quilt

import "fmt"

// Config controls the geometry of one atlas. It is immutable for the
// lifetime of a packer or Atlas instance.
type Config struct {
	// MaxWidth is the bin width in pixels.
	MaxWidth int
	// MaxHeight is the bin height in pixels.
	MaxHeight int

	// AllowRotation permits storing a texture rotated 90 degrees clockwise
	// when the rotated orientation packs tighter.
	AllowRotation bool

	// BorderPadding is empty space kept between the bin edge and any texture.
	BorderPadding int
	// TexturePadding is empty space kept between neighboring textures.
	TexturePadding int
	// TextureExtrusion repeats each texture's border pixels this many times
	// on every side, to avoid sampling bleed at tile edges. The extruded
	// copies consume atlas space on both sides of the texture.
	TextureExtrusion int

	// Trim strips fully transparent borders from textures before packing.
	// The trim window is recorded on the resulting Frame.
	Trim bool
	// TrimThreshold is the highest alpha value (0-255) still considered
	// empty when trimming.
	TrimThreshold uint8

	// Outlines draws a one-pixel red border around every packed texture in
	// the composed output. Debug aid; leave off for production atlases.
	Outlines bool
}

// DefaultConfig returns a 1024x1024 configuration with rotation and trimming
// enabled and two pixels of padding between textures.
func DefaultConfig() Config {
	return Config{
		MaxWidth:       1024,
		MaxHeight:      1024,
		AllowRotation:  true,
		TexturePadding: 2,
		Trim:           true,
	}
}

// Validate reports whether the configuration describes a usable bin.
func (c Config) Validate() error {
	if c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		return fmt.Errorf("quilt: bin size %dx%d must be positive", c.MaxWidth, c.MaxHeight)
	}
	if c.BorderPadding < 0 || c.TexturePadding < 0 || c.TextureExtrusion < 0 {
		return fmt.Errorf("quilt: padding and extrusion must be non-negative")
	}
	if 2*c.BorderPadding >= c.MaxWidth || 2*c.BorderPadding >= c.MaxHeight {
		return fmt.Errorf("quilt: border padding %d leaves no usable bin area", c.BorderPadding)
	}
	return nil
}

// sizePadding is the total amount added to each dimension of a texture when
// computing the space it occupies in the bin.
func (c Config) sizePadding() int {
	return c.TexturePadding + 2*c.TextureExtrusion
}
