package models

// Zone is a shipping distance tier
type Zone string

const (
	ZoneLocal    Zone = "LOCAL"
	ZoneRegional Zone = "REGIONAL"
	ZoneNational Zone = "NATIONAL"
)

// ShippingRate holds the charge per zone for one weight slab (whole rupees)
type ShippingRate struct {
	Local    int64 `json:"local"`
	Regional int64 `json:"regional"`
	National int64 `json:"national"`
}

// ShippingQuote is the result of a zone/slab calculation
type ShippingQuote struct {
	Charge   int64   `json:"charge"`
	Slab     string  `json:"slab"`
	WeightKg float64 `json:"weight"`
	Zone     Zone    `json:"zone"`
}

// Category is a marketplace product category with its shipping assumptions
type Category struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	WeightKg    float64 `json:"weightKg" yaml:"weight_kg"`
	MinShipping int64   `json:"minShipping" yaml:"min_shipping"`
	MaxShipping int64   `json:"maxShipping" yaml:"max_shipping"`
}
