package quilt

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrNoRoom is returned when no placement exists for a texture in the
// remaining bin space. The atlas never grows its own bin; start a new Atlas
// (or retry with a larger Config) when you see this.
var ErrNoRoom = errors.New("quilt: no room left in atlas")

// outlineColor is drawn around packed textures when Config.Outlines is set.
var outlineColor = color.NRGBA{R: 255, A: 255}

// Atlas builds one atlas page: it trims and packs textures, remembers their
// frames and pixel sources, and composes the final page on demand.
//
// Atlas itself implements Texture: Get reads the composed page pixel by
// pixel, handling rotation, extrusion, and debug outlines. The composition is
// read-only; Set always fails.
//
// Not safe for concurrent use.
type Atlas[K comparable] struct {
	config Config
	packer Packer[K]

	frames   map[K]Frame[K]
	textures map[K]*SubTexture
	keys     []K // insertion order, for deterministic composition
}

// NewAtlas creates an atlas builder backed by a SkylinePacker. It panics if
// config does not validate; use Config.Validate to check ahead of time.
func NewAtlas[K comparable](config Config) *Atlas[K] {
	return NewAtlasWithPacker(config, NewSkylinePacker[K](config))
}

// NewAtlasWithPacker creates an atlas builder using a caller-supplied packing
// strategy. The packer must have been built for the same config.
func NewAtlasWithPacker[K comparable](config Config, packer Packer[K]) *Atlas[K] {
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return &Atlas[K]{
		config:   config,
		packer:   packer,
		frames:   make(map[K]Frame[K]),
		textures: make(map[K]*SubTexture),
	}
}

// PackOwn packs a texture the atlas takes ownership of. Owned textures stay
// writable through the atlas's sub-view.
func (a *Atlas[K]) PackOwn(key K, t Texture) error {
	return a.pack(key, t, false)
}

// PackRef packs a texture the atlas only borrows. The atlas reads its pixels
// during composition but will never write to it.
func (a *Atlas[K]) PackRef(key K, t Texture) error {
	return a.pack(key, t, true)
}

func (a *Atlas[K]) pack(key K, t Texture, borrow bool) error {
	if _, exists := a.frames[key]; exists {
		return fmt.Errorf("quilt: key %v already packed", key)
	}

	w, h := t.Width(), t.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("quilt: texture %v has empty size %dx%d", key, w, h)
	}

	window := Rect{W: w, H: h}
	if a.config.Trim {
		window = trimWindow(t, a.config.TrimThreshold)
	}

	var sub *SubTexture
	if borrow {
		sub = SubTextureRef(t, window)
	} else {
		sub = NewSubTexture(t, window)
	}

	frame, ok := a.packer.Pack(key, Rect{W: window.W, H: window.H})
	if !ok {
		return ErrNoRoom
	}

	// The packer only sees the trimmed size; restore the relation to the
	// original image, and shift the frame so the extruded border fits inside
	// the cell the packer reserved.
	frame.Trimmed = window != Rect{W: w, H: h}
	frame.Source = Rect{X: window.X, Y: window.Y, W: w, H: h}
	frame.Frame.X += a.config.TextureExtrusion
	frame.Frame.Y += a.config.TextureExtrusion

	a.frames[key] = frame
	a.textures[key] = sub
	a.keys = append(a.keys, key)
	return nil
}

// CanPack reports whether a texture of the given size (pre-trim) would fit.
// Dry run; no state changes.
func (a *Atlas[K]) CanPack(textureRect Rect) bool {
	return a.packer.CanPack(textureRect)
}

// Frame returns the frame packed under key.
func (a *Atlas[K]) Frame(key K) (Frame[K], bool) {
	f, ok := a.frames[key]
	return f, ok
}

// Frames returns all packed frames in packing order.
func (a *Atlas[K]) Frames() []Frame[K] {
	out := make([]Frame[K], 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, a.frames[k])
	}
	return out
}

// Len returns the number of packed textures.
func (a *Atlas[K]) Len() int {
	return len(a.keys)
}

// CenterBeforeTrimming returns the center of frame's original, untrimmed
// image in atlas coordinates. See Packer.
func (a *Atlas[K]) CenterBeforeTrimming(frame Frame[K]) (int, int) {
	return a.packer.CenterBeforeTrimming(frame)
}

// Width returns the used page width: the rightmost drawn pixel (extrusion
// included) plus the border padding.
func (a *Atlas[K]) Width() int {
	right := 0
	for _, f := range a.frames {
		right = max(right, f.Frame.Right()+a.config.TextureExtrusion+1)
	}
	if right == 0 {
		return 0
	}
	return right + a.config.BorderPadding
}

// Height returns the used page height, mirroring Width.
func (a *Atlas[K]) Height() int {
	bottom := 0
	for _, f := range a.frames {
		bottom = max(bottom, f.Frame.Bottom()+a.config.TextureExtrusion+1)
	}
	if bottom == 0 {
		return 0
	}
	return bottom + a.config.BorderPadding
}

// Get composes the atlas pixel at (x, y): it finds the frame whose extruded
// rectangle covers the point, undoes rotation, clamps into the frame for
// extrusion, and reads the source texture. Points covered by no frame return
// false.
func (a *Atlas[K]) Get(x, y int) (color.Color, bool) {
	for _, k := range a.keys {
		f := a.frames[k]
		cell := f.Frame.expand(a.config.TextureExtrusion)
		if !cell.ContainsPoint(x, y) {
			continue
		}

		if a.config.Outlines &&
			(x == cell.Left() || x == cell.Right() || y == cell.Top() || y == cell.Bottom()) {
			return outlineColor, true
		}

		// Clamping into the frame makes the extrusion band repeat the
		// texture's border pixels.
		relX := min(max(x-f.Frame.X, 0), f.Frame.W-1)
		relY := min(max(y-f.Frame.Y, 0), f.Frame.H-1)

		srcX, srcY := relX, relY
		if f.Rotated {
			// Stored rotated 90 degrees clockwise; map back.
			srcX = relY
			srcY = f.Frame.W - 1 - relX
		}
		return a.textures[k].Get(srcX, srcY)
	}
	return nil, false
}

// Set implements Texture. The composed page is read-only.
func (a *Atlas[K]) Set(x, y int, c color.Color) error {
	return ErrReadOnlyTexture
}

// trimWindow returns the smallest rectangle containing every pixel of t with
// alpha above threshold. Fully transparent textures collapse to a 1x1 window
// at the origin so the key still lands in the manifest.
func trimWindow(t Texture, threshold uint8) Rect {
	w, h := t.Width(), t.Height()
	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if alphaAt(t, x, y) > threshold {
				minX = min(minX, x)
				minY = min(minY, y)
				maxX = max(maxX, x)
				maxY = max(maxY, y)
			}
		}
	}
	if maxX < 0 {
		return Rect{W: 1, H: 1}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

func alphaAt(t Texture, x, y int) uint8 {
	c, ok := t.Get(x, y)
	if !ok || c == nil {
		return 0
	}
	_, _, _, alpha := c.RGBA()
	return uint8(alpha >> 8)
}
