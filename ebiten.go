package quilt

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BakePage composes the atlas and uploads it to a new *ebiten.Image, ready
// to be sliced into sub-images by the exported frames. Returns nil when
// nothing has been packed.
func (a *Atlas[K]) BakePage() *ebiten.Image {
	if a.Len() == 0 {
		return nil
	}
	return ebiten.NewImageFromImage(a.ExportImage())
}

// EbitenTexture adapts a *ebiten.Image as a Texture source so live game
// images can be packed. Reads go through ebiten.Image.At, which synchronizes
// with the GPU; prefer packing from CPU-side images when building atlases in
// bulk.
type EbitenTexture struct {
	img *ebiten.Image
}

// NewEbitenTexture wraps img. The wrapper borrows the image; it never
// mutates it.
func NewEbitenTexture(img *ebiten.Image) *EbitenTexture {
	return &EbitenTexture{img: img}
}

// Width returns the image width in pixels.
func (t *EbitenTexture) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (t *EbitenTexture) Height() int {
	return t.img.Bounds().Dy()
}

// Get returns the pixel at (x, y).
func (t *EbitenTexture) Get(x, y int) (color.Color, bool) {
	b := t.img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return nil, false
	}
	return t.img.At(b.Min.X+x, b.Min.Y+y), true
}

// Set implements Texture. The wrapper is a borrowed view; writes are
// rejected.
func (t *EbitenTexture) Set(x, y int, c color.Color) error {
	return ErrReadOnlyTexture
}
