package quilt

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestExportJSON_HashFormat(t *testing.T) {
	atlas := NewAtlas[string](Config{MaxWidth: 64, MaxHeight: 64})
	if err := atlas.PackOwn("hero.png", solidTexture(8, 6, red)); err != nil {
		t.Fatalf("PackOwn: %v", err)
	}

	data, err := atlas.ExportJSON("page.png")
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var m jsonManifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest does not round-trip: %v", err)
	}

	f, ok := m.Frames["hero.png"]
	if !ok {
		t.Fatalf("manifest frames = %v, want hero.png entry", m.Frames)
	}
	if f.Frame != (jsonRect{X: 0, Y: 0, W: 8, H: 6}) {
		t.Errorf("frame = %+v, want {0 0 8 6}", f.Frame)
	}
	if f.Rotated || f.Trimmed {
		t.Errorf("rotated/trimmed = %v/%v, want false/false", f.Rotated, f.Trimmed)
	}
	if f.SourceSize != (jsonSize{W: 8, H: 6}) {
		t.Errorf("sourceSize = %+v, want {8 6}", f.SourceSize)
	}
	if m.Meta.Image != "page.png" {
		t.Errorf("meta.image = %q, want page.png", m.Meta.Image)
	}
	if m.Meta.Size != (jsonSize{W: 8, H: 6}) {
		t.Errorf("meta.size = %+v, want {8 6}", m.Meta.Size)
	}
}

func TestExportJSON_TrimmedFrame(t *testing.T) {
	tex := NewImageTexture(8, 8)
	for y := 3; y < 7; y++ {
		for x := 2; x < 6; x++ {
			tex.Set(x, y, red)
		}
	}

	atlas := NewAtlas[string](Config{MaxWidth: 64, MaxHeight: 64, Trim: true})
	if err := atlas.PackOwn("trimmed.png", tex); err != nil {
		t.Fatalf("PackOwn: %v", err)
	}

	data, err := atlas.ExportJSON("page.png")
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	var m jsonManifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}

	f := m.Frames["trimmed.png"]
	if !f.Trimmed {
		t.Error("trimmed = false, want true")
	}
	if f.SpriteSourceSize != (jsonRect{X: 2, Y: 3, W: 4, H: 4}) {
		t.Errorf("spriteSourceSize = %+v, want {2 3 4 4}", f.SpriteSourceSize)
	}
	if f.SourceSize != (jsonSize{W: 8, H: 8}) {
		t.Errorf("sourceSize = %+v, want {8 8}", f.SourceSize)
	}
}

func TestExportJSON_RotatedFrame_UnrotatedSpriteSourceSize(t *testing.T) {
	atlas := NewAtlas[string](Config{MaxWidth: 20, MaxHeight: 20, AllowRotation: true})
	if err := atlas.PackOwn("base", solidTexture(20, 12, red)); err != nil {
		t.Fatal(err)
	}
	if err := atlas.PackOwn("tall", solidTexture(8, 16, blue)); err != nil {
		t.Fatal(err)
	}

	data, err := atlas.ExportJSON("page.png")
	if err != nil {
		t.Fatal(err)
	}
	var m jsonManifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}

	f := m.Frames["tall"]
	if !f.Rotated {
		t.Fatal("rotated = false, want true")
	}
	// The frame holds the placed (rotated) size, spriteSourceSize the
	// source orientation.
	if f.Frame.W != 16 || f.Frame.H != 8 {
		t.Errorf("frame size = %dx%d, want 16x8", f.Frame.W, f.Frame.H)
	}
	if f.SpriteSourceSize.W != 8 || f.SpriteSourceSize.H != 16 {
		t.Errorf("spriteSourceSize = %dx%d, want 8x16", f.SpriteSourceSize.W, f.SpriteSourceSize.H)
	}
}

func TestExportImage_PixelsAndExtent(t *testing.T) {
	atlas := NewAtlas[string](Config{MaxWidth: 32, MaxHeight: 32, TexturePadding: 2})
	if err := atlas.PackOwn("a", solidTexture(4, 4, red)); err != nil {
		t.Fatal(err)
	}
	if err := atlas.PackOwn("b", solidTexture(4, 4, green)); err != nil {
		t.Fatal(err)
	}

	img := atlas.ExportImage()
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 4 {
		t.Fatalf("bounds = %dx%d, want 10x4", b.Dx(), b.Dy())
	}
	if got := img.NRGBAAt(0, 0); got != red {
		t.Errorf("pixel (0,0) = %v, want %v", got, red)
	}
	if got := img.NRGBAAt(6, 0); got != green {
		t.Errorf("pixel (6,0) = %v, want %v", got, green)
	}
	// The padding gap stays transparent.
	if got := img.NRGBAAt(4, 0); got != (color.NRGBA{}) {
		t.Errorf("pixel (4,0) = %v, want transparent", got)
	}
}

func TestExportImage_Empty(t *testing.T) {
	atlas := NewAtlas[string](Config{MaxWidth: 32, MaxHeight: 32})
	img := atlas.ExportImage()
	if b := img.Bounds(); b.Dx() != 0 || b.Dy() != 0 {
		t.Errorf("bounds = %dx%d, want empty", b.Dx(), b.Dy())
	}
}
