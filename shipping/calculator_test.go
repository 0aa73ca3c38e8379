package shipping

import (
	"errors"
	"math"
	"testing"

	"variant-studio/models"
)

func TestCalculate_SlabBoundaries(t *testing.T) {
	cases := []struct {
		weight float64
		zone   models.Zone
		slab   string
		charge int64
	}{
		{0.5, models.ZoneLocal, "0-500g", 45},
		{0.51, models.ZoneLocal, "500g-1kg", 65},
		{0.5, models.ZoneRegional, "0-500g", 55},
		{0.5, models.ZoneNational, "0-500g", 72},
		{1.0, models.ZoneNational, "500g-1kg", 105},
		{1.5, models.ZoneRegional, "1kg-1.5kg", 105},
		{1.51, models.ZoneLocal, "1.5kg-2kg", 105},
		{2.0, models.ZoneNational, "1.5kg-2kg", 175},
		{5.0, models.ZoneNational, "1.5kg-2kg", 175},
		{0.01, models.ZoneNational, "0-500g", 72},
	}
	for _, c := range cases {
		q, err := Calculate(c.weight, c.zone)
		if err != nil {
			t.Fatalf("Calculate(%v, %s): %v", c.weight, c.zone, err)
		}
		if q.Slab != c.slab || q.Charge != c.charge {
			t.Errorf("Calculate(%v, %s): got %s/%d, want %s/%d", c.weight, c.zone, q.Slab, q.Charge, c.slab, c.charge)
		}
		if q.WeightKg != c.weight || q.Zone != c.zone {
			t.Errorf("Calculate(%v, %s): echoed %v/%s", c.weight, c.zone, q.WeightKg, q.Zone)
		}
	}
}

func TestCalculate_RejectsInvalidWeight(t *testing.T) {
	for _, w := range []float64{0, -0.2, math.NaN(), math.Inf(1)} {
		if _, err := Calculate(w, models.ZoneLocal); !errors.Is(err, models.ErrInvalidWeight) {
			t.Errorf("Calculate(%v): got %v, want ErrInvalidWeight", w, err)
		}
	}
}

func TestCalculate_RejectsUnknownZone(t *testing.T) {
	if _, err := Calculate(0.4, models.Zone("MARS")); !errors.Is(err, models.ErrInvalidZone) {
		t.Fatalf("got %v, want ErrInvalidZone", err)
	}
}

func TestSlabsContiguous(t *testing.T) {
	for i := 1; i < len(Slabs); i++ {
		if !(Slabs[i].MaxWeightKg > Slabs[i-1].MaxWeightKg) {
			t.Errorf("slab %s does not ascend after %s", Slabs[i].Label, Slabs[i-1].Label)
		}
	}
	if !math.IsInf(Slabs[len(Slabs)-1].MaxWeightKg, 1) {
		t.Error("last slab must be a catch-all")
	}
}

func TestParseZone(t *testing.T) {
	for in, want := range map[string]models.Zone{
		"LOCAL":     models.ZoneLocal,
		"regional":  models.ZoneRegional,
		" National": models.ZoneNational,
	} {
		got, err := ParseZone(in)
		if err != nil || got != want {
			t.Errorf("ParseZone(%q): got %s, %v", in, got, err)
		}
	}
	if _, err := ParseZone("express"); !errors.Is(err, models.ErrInvalidZone) {
		t.Errorf("ParseZone(express): got %v", err)
	}
}

func TestZoneForTemplate(t *testing.T) {
	want := map[int]models.Zone{3: models.ZoneLocal, 4: models.ZoneRegional, 5: models.ZoneNational}
	for id, zone := range want {
		if got := ZoneForTemplate(id); got != zone {
			t.Errorf("ZoneForTemplate(%d): got %s, want %s", id, got, zone)
		}
	}
}
