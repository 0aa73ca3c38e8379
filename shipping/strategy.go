package shipping

import (
	"fmt"

	"variant-studio/models"
)

// Strategy names accepted by ParseStrategy.
const (
	StrategyZoneSlab      = "zone"
	StrategyCategoryRange = "category-range"
)

// TemplatePricer decides the shipping charge printed on a template's badges.
type TemplatePricer interface {
	Name() string
	ChargeFor(templateID int, categoryID string) (int64, error)
}

// ZoneSlabStrategy prices a template with the slab calculator, using the
// category's typical weight and a zone picked by the template id.
type ZoneSlabStrategy struct {
	Categories *CategoryTable
}

// CategoryRangeStrategy spreads charges across the category's
// [MinShipping, MaxShipping] range: min + id mod (max-min+1).
type CategoryRangeStrategy struct {
	Categories *CategoryTable
}

var (
	_ TemplatePricer = ZoneSlabStrategy{}
	_ TemplatePricer = CategoryRangeStrategy{}
)

func (ZoneSlabStrategy) Name() string { return StrategyZoneSlab }

// ChargeFor implements TemplatePricer.
func (s ZoneSlabStrategy) ChargeFor(templateID int, categoryID string) (int64, error) {
	q, err := s.Quote(templateID, categoryID)
	if err != nil {
		return 0, err
	}
	return q.Charge, nil
}

// Quote returns the full slab quote behind ChargeFor.
func (s ZoneSlabStrategy) Quote(templateID int, categoryID string) (models.ShippingQuote, error) {
	return Calculate(s.Categories.WeightFor(categoryID), ZoneForTemplate(templateID))
}

func (CategoryRangeStrategy) Name() string { return StrategyCategoryRange }

// ChargeFor implements TemplatePricer.
func (s CategoryRangeStrategy) ChargeFor(templateID int, categoryID string) (int64, error) {
	c, err := s.Categories.Lookup(categoryID)
	if err != nil {
		return 0, err
	}
	span := c.MaxShipping - c.MinShipping + 1
	return c.MinShipping + int64(templateID)%span, nil
}

// ParseStrategy builds the named pricer over a category table.
// An empty name selects the zone/slab strategy.
func ParseStrategy(name string, categories *CategoryTable) (TemplatePricer, error) {
	switch name {
	case "", StrategyZoneSlab:
		return ZoneSlabStrategy{Categories: categories}, nil
	case StrategyCategoryRange:
		return CategoryRangeStrategy{Categories: categories}, nil
	}
	return nil, fmt.Errorf("unknown shipping strategy %q (expected %s or %s)", name, StrategyZoneSlab, StrategyCategoryRange)
}
