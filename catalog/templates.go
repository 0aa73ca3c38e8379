// Package catalog derives the marketplace template table from a handful of
// constant palettes using modular arithmetic on the template index.
//
// Template(i) is a pure function of i: the same index always yields the same
// canvas, colours, border and sticker list, which is what keeps every variant
// reproducible across runs and processes.
package catalog

import (
	"fmt"
	"sync"

	"variant-studio/models"
)

// MaxTemplates is the size of the catalog.
const MaxTemplates = 100

// Modular offsets applied to the index for each sticker tier.
const (
	secondaryKindOffset     = 3
	secondaryPositionOffset = 2
	tertiaryKindOffset      = 5
	tertiaryPositionOffset  = 4
)

// Every secondaryEvery-th template gets a second sticker, every tertiaryEvery-th a third.
const (
	secondaryEvery = 3
	tertiaryEvery  = 10
)

// Sticker scale ranges. Primary cycles 0.90..1.05, secondary 0.70..0.80.
const (
	primaryScaleBase   = 0.90
	primaryScaleSteps  = 4
	secondaryScaleBase = 0.70
	secondaryScaleStep = 3
	scaleStep          = 0.05
	tertiaryScale      = 0.6
)

// Border widths in priority order: the first matching modulus wins.
var borderRules = []struct {
	every int
	width int
}{
	{5, 30}, // thick
	{3, 15}, // medium
	{7, 8},  // thin
}

var (
	defaultOnce    sync.Once
	defaultCatalog []models.Template
)

// Template returns the template for zero-based index i.
// The returned value shares no memory with other calls.
func Template(i int) models.Template {
	stickers := []models.StickerSpec{{
		Kind:     kindAt(i),
		Position: anchorAt(i),
		Scale:    primaryScaleBase + float64(i%primaryScaleSteps)*scaleStep,
	}}

	if i%secondaryEvery == 0 {
		stickers = append(stickers, models.StickerSpec{
			Kind:     kindAt(i + secondaryKindOffset),
			Position: anchorAt(i + secondaryPositionOffset),
			Scale:    secondaryScaleBase + float64(i%secondaryScaleStep)*scaleStep,
		})
	}

	if i%tertiaryEvery == 0 {
		stickers = append(stickers, models.StickerSpec{
			Kind:     kindAt(i + tertiaryKindOffset),
			Position: anchorAt(i + tertiaryPositionOffset),
			Scale:    tertiaryScale,
		})
	}

	return models.Template{
		ID:          i + 1,
		CanvasSize:  CanvasSizes[i%len(CanvasSizes)],
		Background:  Backgrounds[i%len(Backgrounds)],
		BorderWidth: borderWidthAt(i),
		BorderColor: BorderColors[i%len(BorderColors)],
		Stickers:    stickers,
	}
}

// Generate returns the first n templates with ids 1..n.
func Generate(n int) ([]models.Template, error) {
	if n < 1 || n > MaxTemplates {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", models.ErrInvalidCount, n, MaxTemplates)
	}
	out := make([]models.Template, n)
	for i := range out {
		out[i] = Template(i)
	}
	return out, nil
}

// Default returns the full catalog, built once per process.
// Callers must treat the returned slice as read-only.
func Default() []models.Template {
	defaultOnce.Do(func() {
		defaultCatalog, _ = Generate(MaxTemplates)
	})
	return defaultCatalog
}

// ByID looks a template up in the default catalog.
func ByID(id int) (models.Template, bool) {
	if id < 1 || id > MaxTemplates {
		return models.Template{}, false
	}
	return Default()[id-1], true
}

func kindAt(i int) models.BadgeKind {
	return Kinds[i%len(Kinds)]
}

func anchorAt(i int) models.Anchor {
	return Anchors[i%len(Anchors)]
}

func borderWidthAt(i int) int {
	for _, rule := range borderRules {
		if i%rule.every == 0 {
			return rule.width
		}
	}
	return 0
}
