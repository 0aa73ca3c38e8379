package catalog

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"variant-studio/models"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(MaxTemplates)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(MaxTemplates)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two catalog generations differ")
	}
	if !reflect.DeepEqual(a, Default()) {
		t.Fatal("Default() differs from Generate(MaxTemplates)")
	}
}

func TestGenerate_IDsAreOneIndexed(t *testing.T) {
	tmpls, err := Generate(50)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(tmpls) != 50 {
		t.Fatalf("len: got %d, want 50", len(tmpls))
	}
	for i, tmpl := range tmpls {
		if tmpl.ID != i+1 {
			t.Fatalf("tmpls[%d].ID: got %d, want %d", i, tmpl.ID, i+1)
		}
	}
}

func TestGenerate_RejectsOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, MaxTemplates + 1} {
		if _, err := Generate(n); !errors.Is(err, models.ErrInvalidCount) {
			t.Errorf("Generate(%d): got %v, want ErrInvalidCount", n, err)
		}
	}
}

func TestTemplate_BorderPriority(t *testing.T) {
	cases := []struct {
		index int
		want  int
	}{
		{0, 30},  // divisible by 5 and 3: thick wins
		{15, 30}, // 5 before 3
		{3, 15},
		{21, 15}, // 3 before 7
		{7, 8},
		{35, 30}, // 5 before 7
		{1, 0},
		{2, 0},
	}
	for _, c := range cases {
		if got := Template(c.index).BorderWidth; got != c.want {
			t.Errorf("Template(%d).BorderWidth: got %d, want %d", c.index, got, c.want)
		}
	}
}

func TestTemplate_StickerTiers(t *testing.T) {
	// index 0: all three tiers
	tmpl := Template(0)
	if len(tmpl.Stickers) != 3 {
		t.Fatalf("Template(0) stickers: got %d, want 3", len(tmpl.Stickers))
	}
	want := []models.StickerSpec{
		{Kind: models.BadgeFreeDelivery, Position: models.AnchorTopLeft, Scale: 0.90},
		{Kind: models.BadgeNewArrival, Position: models.AnchorBottomLeft, Scale: 0.70},
		{Kind: models.BadgeMeeshoMall, Position: models.AnchorCenterTop, Scale: 0.6},
	}
	for i, w := range want {
		got := tmpl.Stickers[i]
		if got.Kind != w.Kind || got.Position != w.Position || math.Abs(got.Scale-w.Scale) > 1e-9 {
			t.Errorf("sticker %d: got %+v, want %+v", i, got, w)
		}
	}

	// index 1: primary only
	if n := len(Template(1).Stickers); n != 1 {
		t.Errorf("Template(1) stickers: got %d, want 1", n)
	}
	// index 3: primary + secondary
	if n := len(Template(3).Stickers); n != 2 {
		t.Errorf("Template(3) stickers: got %d, want 2", n)
	}
	// index 10: primary + tertiary (10 mod 3 != 0)
	if n := len(Template(10).Stickers); n != 2 {
		t.Errorf("Template(10) stickers: got %d, want 2", n)
	}
}

func TestTemplate_ScaleRanges(t *testing.T) {
	for _, tmpl := range Default() {
		p := tmpl.Stickers[0].Scale
		if p < 0.9-1e-9 || p > 1.05+1e-9 {
			t.Errorf("template %d primary scale %v out of range", tmpl.ID, p)
		}
		for _, s := range tmpl.Stickers {
			if s.Scale <= 0 {
				t.Errorf("template %d non-positive scale %v", tmpl.ID, s.Scale)
			}
		}
	}
}

func TestTemplate_PalettesCycle(t *testing.T) {
	tmpl := Template(16)
	if tmpl.CanvasSize != CanvasSizes[1] {
		t.Errorf("canvas: got %+v, want %+v", tmpl.CanvasSize, CanvasSizes[1])
	}
	if tmpl.Background != Backgrounds[0] {
		t.Errorf("background: got %s, want %s", tmpl.Background, Backgrounds[0])
	}
	if tmpl.BorderColor != BorderColors[16] {
		t.Errorf("border colour: got %s, want %s", tmpl.BorderColor, BorderColors[16])
	}
}

func TestByID(t *testing.T) {
	tmpl, ok := ByID(5)
	if !ok {
		t.Fatal("ByID(5) not found")
	}
	if tmpl.ID != 5 || tmpl.BorderWidth != 0 {
		// id 5 is index 4: 4 mod 5, 3, 7 all non-zero
		t.Errorf("ByID(5): got id=%d border=%d", tmpl.ID, tmpl.BorderWidth)
	}
	if _, ok := ByID(0); ok {
		t.Error("ByID(0) should not exist")
	}
	if _, ok := ByID(MaxTemplates + 1); ok {
		t.Error("ByID(101) should not exist")
	}
}
