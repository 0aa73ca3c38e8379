package shipping

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"variant-studio/models"
)

// DefaultWeightKg is assumed for categories the table does not know.
const DefaultWeightKg = 0.4

// DefaultCategories are the marketplace categories the studio ships with.
var DefaultCategories = []models.Category{
	{ID: "10000", Name: "Men T-shirts", WeightKg: 0.4, MinShipping: 40, MaxShipping: 80},
	{ID: "10001", Name: "Men Shirts", WeightKg: 0.6, MinShipping: 50, MaxShipping: 100},
	{ID: "10002", Name: "Women Kurti with Bottomwear", WeightKg: 0.8, MinShipping: 60, MaxShipping: 120},
	{ID: "10003", Name: "Women Sarees", WeightKg: 1.2, MinShipping: 80, MaxShipping: 150},
}

// CategoryTable is an immutable lookup of categories by id.
type CategoryTable struct {
	ordered []models.Category
	byID    map[string]models.Category
}

type categoryFile struct {
	Categories []models.Category `yaml:"categories"`
}

// NewCategoryTable validates categories and indexes them by id.
func NewCategoryTable(categories []models.Category) (*CategoryTable, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("at least one category is required")
	}
	t := &CategoryTable{
		ordered: make([]models.Category, 0, len(categories)),
		byID:    make(map[string]models.Category, len(categories)),
	}
	for _, c := range categories {
		if err := validateCategory(c); err != nil {
			return nil, err
		}
		if _, dup := t.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", c.ID)
		}
		t.ordered = append(t.ordered, c)
		t.byID[c.ID] = c
	}
	return t, nil
}

// DefaultCategoryTable returns a table over DefaultCategories.
func DefaultCategoryTable() *CategoryTable {
	t, err := NewCategoryTable(DefaultCategories)
	if err != nil {
		panic("shipping: invalid default categories: " + err.Error())
	}
	return t
}

// LoadCategoryTable reads a YAML category file. An empty path yields the defaults.
//
//	categories:
//	  - id: "10000"
//	    name: Men T-shirts
//	    weight_kg: 0.4
//	    min_shipping: 40
//	    max_shipping: 80
func LoadCategoryTable(path string) (*CategoryTable, error) {
	if path == "" {
		return DefaultCategoryTable(), nil
	}

	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse categories file: %w", err)
	}

	t, err := NewCategoryTable(file.Categories)
	if err != nil {
		return nil, fmt.Errorf("invalid categories file: %w", err)
	}

	log.Printf("✅ Shipping: loaded %d categories from %s", len(t.ordered), path)
	return t, nil
}

func validateCategory(c models.Category) error {
	if c.ID == "" {
		return fmt.Errorf("category id is required")
	}
	if !(c.WeightKg > 0) {
		return fmt.Errorf("category %s: weight must be positive", c.ID)
	}
	if c.MinShipping <= 0 || c.MaxShipping < c.MinShipping {
		return fmt.Errorf("category %s: shipping range [%d, %d] is invalid", c.ID, c.MinShipping, c.MaxShipping)
	}
	return nil
}

// All returns the categories in table order.
func (t *CategoryTable) All() []models.Category {
	out := make([]models.Category, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Lookup returns the category with the given id.
func (t *CategoryTable) Lookup(id string) (models.Category, error) {
	c, ok := t.byID[id]
	if !ok {
		return models.Category{}, fmt.Errorf("%w: %q", models.ErrInvalidCategory, id)
	}
	return c, nil
}

// WeightFor returns the typical parcel weight of a category,
// falling back to DefaultWeightKg for unknown ids.
func (t *CategoryTable) WeightFor(id string) float64 {
	if c, ok := t.byID[id]; ok {
		return c.WeightKg
	}
	return DefaultWeightKg
}

// Estimate is the worst-case (NATIONAL) quote for a category, stored with uploaded products.
func (t *CategoryTable) Estimate(categoryID string) (models.ShippingQuote, error) {
	return Calculate(t.WeightFor(categoryID), models.ZoneNational)
}
