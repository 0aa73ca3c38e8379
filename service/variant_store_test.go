package service

import (
	"bytes"
	"errors"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"variant-studio/models"
)

func TestVariantStore_SaveReadPreview(t *testing.T) {
	root := t.TempDir()
	store, err := NewVariantStore(root)
	if err != nil {
		t.Fatal(err)
	}
	session := store.NewSession()
	data := pngBytes(t, 1080, 1080, color.NRGBA{R: 10, G: 120, B: 200, A: 255})

	urls, err := store.SaveBatch(session, &models.Batch{Variants: []models.RenderedVariant{
		{TemplateID: 1, Name: "variant_1.png", PNG: data},
		{TemplateID: 2, Name: "variant_2.png", PNG: data},
	}})
	if err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	if len(urls) != 2 || urls[0] != "/api/image/"+session+"/variant_1.png" {
		t.Fatalf("urls: got %v", urls)
	}

	got, err := store.Read(session, "variant_2.png")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("Read returned different bytes")
	}

	thumb, err := store.Preview(session, "variant_1.png", SizeThumb)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("preview is not a JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != maxSizeThumb || b.Dy() != maxSizeThumb {
		t.Errorf("thumb size: got %v", b.Size())
	}
	if _, err := os.Stat(filepath.Join(root, session, "variant_1_thumb.jpg")); err != nil {
		t.Errorf("preview not cached: %v", err)
	}

	again, err := store.Preview(session, "variant_1.png", SizeThumb)
	if err != nil || !bytes.Equal(again, thumb) {
		t.Errorf("cached preview differs: %v", err)
	}
}

func TestVariantStore_RejectsBadPaths(t *testing.T) {
	store, err := NewVariantStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	session := store.NewSession()

	cases := []struct{ session, name string }{
		{"..", "variant_1.png"},
		{session, "../variant_1.png"},
		{session, "secret.txt"},
		{session, "variant_1.png"}, // well formed but never stored
	}
	for _, c := range cases {
		if _, err := store.Read(c.session, c.name); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Read(%q, %q): got %v, want ErrNotFound", c.session, c.name, err)
		}
	}
}

func TestOptimizeImage(t *testing.T) {
	src := pngBytes(t, 1600, 800, color.NRGBA{R: 255, A: 128})

	medium, err := OptimizeImage(src, SizeMedium)
	if err != nil {
		t.Fatal(err)
	}
	img, err := jpeg.Decode(bytes.NewReader(medium))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Errorf("medium size: got %v, want 800x400", b.Size())
	}

	small := pngBytes(t, 100, 50, color.White)
	out, err := OptimizeImage(small, "huge")
	if err != nil {
		t.Fatal(err)
	}
	img, err = jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("small image should not be upscaled: got %v", b.Size())
	}

	if _, err := OptimizeImage([]byte("nope"), SizeThumb); !errors.Is(err, models.ErrInvalidImageInput) {
		t.Errorf("garbage: got %v", err)
	}
}
