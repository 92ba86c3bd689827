package quilt

// Frame records where one packed texture landed and how to relate it back to
// its source image. Frames are created by a successful Pack call and never
// modified afterwards.
//
// When Trimmed is set, Source relates the packed content to the original
// image: (Source.X, Source.Y) is the position of the trimmed window inside
// the original, and (Source.W, Source.H) is the full original size.
//
//	       Source.W
//	+--------------------+
//	| (Source.X,Source.Y)|
//	|   v                |
//	|   *********        |
//	|   * packed*        |  Source.H
//	|   *content*        |
//	|   *********        |
//	+--------------------+
type Frame[K comparable] struct {
	// Key identifies the original texture. Caller-supplied, opaque to the
	// packer.
	Key K
	// Frame is the placed rectangle in atlas coordinates, padding and
	// extrusion excluded. For rotated frames, W and H are the dimensions as
	// stored in the atlas (swapped relative to the source).
	Frame Rect
	// Rotated reports that the texture was stored rotated 90 degrees
	// clockwise.
	Rotated bool
	// Trimmed reports that transparent borders were stripped before packing.
	Trimmed bool
	// Source is the pre-trim rectangle described above. For untrimmed frames
	// it carries the original size at offset (0, 0).
	Source Rect
}

// TrimOffset returns the offset in pixels from the trimmed frame's center to
// the center of the original, untrimmed image, with the trimmed center as the
// origin. Adding it to a draw position centered on the trimmed frame yields
// the position the untrimmed image would have had, which keeps animation
// frames with uneven trims aligned on their shared canvas.
//
// Untrimmed frames always yield (0, 0).
func (f Frame[K]) TrimOffset() (int, int) {
	if !f.Trimmed {
		return 0, 0
	}
	trimmedCX := f.Source.X + f.Frame.W/2
	trimmedCY := f.Source.Y + f.Frame.H/2
	return f.Source.W/2 - trimmedCX, f.Source.H/2 - trimmedCY
}
