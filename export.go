package quilt

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// --- JSON structure types (TexturePacker hash format) ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonMeta struct {
	App    string   `json:"app"`
	Image  string   `json:"image"`
	Format string   `json:"format"`
	Size   jsonSize `json:"size"`
	Scale  string   `json:"scale"`
}

type jsonManifest struct {
	Frames map[string]jsonFrame `json:"frames"`
	Meta   jsonMeta             `json:"meta"`
}

// ExportJSON returns the atlas manifest in the TexturePacker hash format,
// the same layout consumers like willow's LoadAtlas parse. imageName is
// recorded in the manifest's meta block as the page image filename. Keys are
// rendered with fmt.Sprint; map encoding keeps the output deterministic
// (keys sorted).
func (a *Atlas[K]) ExportJSON(imageName string) ([]byte, error) {
	frames := make(map[string]jsonFrame, len(a.keys))
	for _, k := range a.keys {
		f := a.frames[k]

		// spriteSourceSize is in the source image's orientation: undo the
		// rotation the placed rect carries.
		tw, th := f.Frame.W, f.Frame.H
		if f.Rotated {
			tw, th = th, tw
		}

		frames[fmt.Sprint(k)] = jsonFrame{
			Frame:            jsonRect{X: f.Frame.X, Y: f.Frame.Y, W: f.Frame.W, H: f.Frame.H},
			Rotated:          f.Rotated,
			Trimmed:          f.Trimmed,
			SpriteSourceSize: jsonRect{X: f.Source.X, Y: f.Source.Y, W: tw, H: th},
			SourceSize:       jsonSize{W: f.Source.W, H: f.Source.H},
		}
	}

	manifest := jsonManifest{
		Frames: frames,
		Meta: jsonMeta{
			App:    "quilt",
			Image:  imageName,
			Format: "RGBA8888",
			Size:   jsonSize{W: a.Width(), H: a.Height()},
			Scale:  "1",
		},
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("quilt: failed to encode atlas manifest: %w", err)
	}
	return data, nil
}

// ExportImage rasterizes the composed atlas into a new NRGBA image sized to
// the used extent. Pixels covered by no frame stay transparent.
func (a *Atlas[K]) ExportImage() *image.NRGBA {
	w, h := a.Width(), a.Height()
	img := imaging.New(w, h, color.NRGBA{})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c, ok := a.Get(x, y); ok {
				img.Set(x, y, c)
			}
		}
	}
	return img
}
