package quilt

// Packer places rectangles into a fixed-size bin one at a time. SkylinePacker
// is the provided implementation; alternative heuristics can be substituted
// without touching the Frame model.
//
// A Packer is exclusively owned by its caller for the duration of a packing
// session; it is not safe for concurrent use. Pack independent atlases on
// independent Packer instances.
type Packer[K comparable] interface {
	// Pack places a texture of textureRect's size (its X and Y are ignored)
	// and returns the resulting frame. The second return value is false when
	// no placement exists in the remaining space; the bin is never grown, so
	// the caller decides whether to retry on a larger bin or start a new
	// atlas.
	Pack(key K, textureRect Rect) (Frame[K], bool)

	// CanPack reports whether a texture of textureRect's size would fit
	// without mutating any state.
	CanPack(textureRect Rect) bool

	// CenterBeforeTrimming returns the center of frame's original, untrimmed
	// image in atlas coordinates, clamped to the bin. For untrimmed frames
	// this is simply the placed rectangle's center.
	CenterBeforeTrimming(frame Frame[K]) (int, int)
}
