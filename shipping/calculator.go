// Package shipping prices parcels by weight slab and zone, and derives the
// per-template charge shown on shipping badges.
package shipping

import (
	"fmt"
	"math"
	"strings"

	"variant-studio/models"
)

// Slab is one weight bracket. A weight belongs to the first slab whose
// MaxWeightKg it does not exceed; the last slab has no upper limit.
type Slab struct {
	Label       string
	MaxWeightKg float64
	Rate        models.ShippingRate
}

// Slabs is the marketplace weight slab table, ascending and contiguous.
// "1.5kg-2kg" is a catch-all: parcels above 2kg are still charged at its rates.
var Slabs = []Slab{
	{Label: "0-500g", MaxWeightKg: 0.5, Rate: models.ShippingRate{Local: 45, Regional: 55, National: 72}},
	{Label: "500g-1kg", MaxWeightKg: 1.0, Rate: models.ShippingRate{Local: 65, Regional: 80, National: 105}},
	{Label: "1kg-1.5kg", MaxWeightKg: 1.5, Rate: models.ShippingRate{Local: 85, Regional: 105, National: 140}},
	{Label: "1.5kg-2kg", MaxWeightKg: math.Inf(1), Rate: models.ShippingRate{Local: 105, Regional: 130, National: 175}},
}

// ParseZone accepts LOCAL, REGIONAL or NATIONAL in any case.
func ParseZone(s string) (models.Zone, error) {
	switch z := models.Zone(strings.ToUpper(strings.TrimSpace(s))); z {
	case models.ZoneLocal, models.ZoneRegional, models.ZoneNational:
		return z, nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrInvalidZone, s)
}

// ZoneForTemplate maps a template id onto a zone: 0 LOCAL, 1 REGIONAL, 2 NATIONAL (mod 3).
func ZoneForTemplate(templateID int) models.Zone {
	switch templateID % 3 {
	case 0:
		return models.ZoneLocal
	case 1:
		return models.ZoneRegional
	default:
		return models.ZoneNational
	}
}

// SlabFor returns the slab a weight falls into.
func SlabFor(weightKg float64) (Slab, error) {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return Slab{}, fmt.Errorf("%w: %v kg (must be a positive number)", models.ErrInvalidWeight, weightKg)
	}
	for _, s := range Slabs {
		if weightKg <= s.MaxWeightKg {
			return s, nil
		}
	}
	return Slabs[len(Slabs)-1], nil
}

// RateFor picks the zone's charge out of a slab rate.
func RateFor(rate models.ShippingRate, zone models.Zone) (int64, error) {
	switch zone {
	case models.ZoneLocal:
		return rate.Local, nil
	case models.ZoneRegional:
		return rate.Regional, nil
	case models.ZoneNational:
		return rate.National, nil
	}
	return 0, fmt.Errorf("%w: %q", models.ErrInvalidZone, zone)
}

// Calculate prices a parcel of weightKg shipped to zone.
func Calculate(weightKg float64, zone models.Zone) (models.ShippingQuote, error) {
	slab, err := SlabFor(weightKg)
	if err != nil {
		return models.ShippingQuote{}, err
	}
	charge, err := RateFor(slab.Rate, zone)
	if err != nil {
		return models.ShippingQuote{}, err
	}
	return models.ShippingQuote{
		Charge:   charge,
		Slab:     slab.Label,
		WeightKg: weightKg,
		Zone:     zone,
	}, nil
}
