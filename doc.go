// Package quilt packs many small textures into a single atlas image and
// produces the placement metadata a renderer needs to find them again.
//
// Quilt is the authoring-side counterpart to atlas consumers like [willow]:
// it emits TexturePacker-compatible JSON manifests (hash format) alongside a
// composed page image, so anything that can load a TexturePacker atlas can
// load a quilt atlas.
//
// # Quick start
//
// Create an [Atlas] with a [Config], feed it textures, then export:
//
//	atlas := quilt.NewAtlas[string](quilt.DefaultConfig())
//	for name, img := range sprites { // img is an image.Image
//		if err := atlas.PackOwn(name, quilt.NewImageTextureFrom(img)); err != nil {
//			log.Fatal(err)
//		}
//	}
//	page := atlas.ExportImage()              // *image.NRGBA
//	manifest, _ := atlas.ExportJSON("atlas.png")
//
// For Ebitengine games, [Atlas.BakePage] uploads the composed page directly
// to a *ebiten.Image, and [EbitenTexture] lets live GPU images be packed.
//
// # Packing
//
// Placement is a greedy skyline heuristic ([SkylinePacker]): the occupied
// region's upper boundary is tracked as an ordered run of horizontal
// segments, and each rectangle goes to the candidate position with the
// lowest resulting bottom edge (ties broken by the narrowest supporting
// segment). With [Config].AllowRotation, both orientations are tried and a
// texture may be stored rotated 90 degrees clockwise. The heuristic is not
// an exact solver; when a rectangle no longer fits, packing reports no room
// and the caller decides whether to grow the bin or start a new atlas.
//
// Alternative strategies can be swapped in through the [Packer] interface
// without touching the [Frame] model.
//
// # Trimming
//
// With [Config].Trim, transparent borders are stripped before packing. Each
// [Frame] keeps the trim window and the original size, and
// [Frame.TrimOffset] / [Packer.CenterBeforeTrimming] recover where the
// untrimmed image would sit, so animation frames with uneven trims still
// line up on their original canvas.
//
// [willow]: https://github.com/phanxgames/willow
package quilt
