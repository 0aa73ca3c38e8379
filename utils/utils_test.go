package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
		{"#2196f3", color.NRGBA{0x21, 0x96, 0xf3, 0xff}},
		{"000", color.NRGBA{0, 0, 0, 255}},
		{"#f0a", color.NRGBA{0xff, 0x00, 0xaa, 0xff}},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseHexColor(%q): got %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", bad)
		}
	}
}

func TestVariantFileNames(t *testing.T) {
	if got := VariantFileName(7); got != "variant_7.png" {
		t.Errorf("VariantFileName: got %s", got)
	}
	if got := ArchiveFileName(42); got != "image_42.png" {
		t.Errorf("ArchiveFileName: got %s", got)
	}

	for name, want := range map[string]int{
		"variant_7.png": 7,
		"image_42.png":  42,
		"VARIANT_3.PNG": 3,
	} {
		got, err := ParseVariantFileName(name)
		if err != nil {
			t.Fatalf("ParseVariantFileName(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseVariantFileName(%q): got %d, want %d", name, got, want)
		}
	}

	for _, bad := range []string{"variant_0.png", "variant_x.png", "../etc/passwd", "variant_3.jpg"} {
		if _, err := ParseVariantFileName(bad); err == nil {
			t.Errorf("ParseVariantFileName(%q): expected error", bad)
		}
	}
}
