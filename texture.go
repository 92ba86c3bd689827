package quilt

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrReadOnlyTexture is returned by Set on texture views that do not own
// their pixels.
var ErrReadOnlyTexture = errors.New("quilt: cannot write through a read-only texture view")

// ErrOutOfBounds is returned by Set when the coordinates fall outside the
// texture.
var ErrOutOfBounds = errors.New("quilt: pixel coordinates out of bounds")

// Texture is a pixel-addressable surface. Quilt composes against this
// contract when trimming and when reading source pixels into the atlas; it
// never decodes or encodes image files itself.
type Texture interface {
	// Width returns the surface width in pixels.
	Width() int
	// Height returns the surface height in pixels.
	Height() int
	// Get returns the pixel at (x, y), or false when the coordinates fall
	// outside the surface.
	Get(x, y int) (color.Color, bool)
	// Set writes the pixel at (x, y). Read-only views return
	// ErrReadOnlyTexture.
	Set(x, y int, c color.Color) error
}

// ImageTexture is an in-memory NRGBA surface.
type ImageTexture struct {
	img *image.NRGBA
}

// NewImageTexture creates a transparent w x h surface.
func NewImageTexture(w, h int) *ImageTexture {
	return &ImageTexture{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// NewImageTextureFrom copies src into a new surface. Any image.Image is
// accepted; pixels are converted to NRGBA.
func NewImageTextureFrom(src image.Image) *ImageTexture {
	return &ImageTexture{img: imaging.Clone(src)}
}

// Image returns the underlying *image.NRGBA for direct manipulation.
func (t *ImageTexture) Image() *image.NRGBA {
	return t.img
}

// Width returns the surface width in pixels.
func (t *ImageTexture) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (t *ImageTexture) Height() int {
	return t.img.Bounds().Dy()
}

// Get returns the pixel at (x, y).
func (t *ImageTexture) Get(x, y int) (color.Color, bool) {
	if !image.Pt(x, y).In(t.img.Bounds()) {
		return nil, false
	}
	return t.img.NRGBAAt(x, y), true
}

// Set writes the pixel at (x, y).
func (t *ImageTexture) Set(x, y int, c color.Color) error {
	if !image.Pt(x, y).In(t.img.Bounds()) {
		return ErrOutOfBounds
	}
	t.img.Set(x, y, c)
	return nil
}

// SubTexture is a rectangular window into a parent texture. Coordinates are
// relative to the window's top-left corner.
//
// A sub-texture either owns its parent (created with NewSubTexture) and may
// write through to it, or merely borrows it (created with SubTextureRef) and
// rejects writes with ErrReadOnlyTexture.
type SubTexture struct {
	parent  Texture
	source  Rect
	borrows bool
}

// NewSubTexture returns a window over source that owns parent: writes go
// through to the parent's pixels.
func NewSubTexture(parent Texture, source Rect) *SubTexture {
	return &SubTexture{parent: parent, source: source}
}

// SubTextureRef returns a read-only window over source that borrows parent.
func SubTextureRef(parent Texture, source Rect) *SubTexture {
	return &SubTexture{parent: parent, source: source, borrows: true}
}

// Width returns the window width in pixels.
func (t *SubTexture) Width() int {
	return t.source.W
}

// Height returns the window height in pixels.
func (t *SubTexture) Height() int {
	return t.source.H
}

// Get returns the pixel at (x, y) relative to the window.
func (t *SubTexture) Get(x, y int) (color.Color, bool) {
	if x < 0 || y < 0 || x >= t.source.W || y >= t.source.H {
		return nil, false
	}
	return t.parent.Get(t.source.X+x, t.source.Y+y)
}

// Set writes the pixel at (x, y) relative to the window. Borrowed views
// return ErrReadOnlyTexture.
func (t *SubTexture) Set(x, y int, c color.Color) error {
	if t.borrows {
		return ErrReadOnlyTexture
	}
	if x < 0 || y < 0 || x >= t.source.W || y >= t.source.H {
		return ErrOutOfBounds
	}
	return t.parent.Set(t.source.X+x, t.source.Y+y, c)
}
