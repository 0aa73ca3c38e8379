// Package compositor paints a product photo onto a template canvas:
// background, optional border, the centred product and the template's badges.
package compositor

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"variant-studio/badge"
	"variant-studio/imageio"
	"variant-studio/models"
	"variant-studio/shipping"
	"variant-studio/utils"
)

// ProductFill is the share of each canvas dimension the product may occupy.
const ProductFill = 0.8

// Sticker margins from the canvas edges.
const (
	cornerMargin = 40
	centerMargin = 20
)

// Sticker is the resolved placement of one badge.
type Sticker struct {
	Kind     models.BadgeKind `json:"type"`
	Lines    []string         `json:"lines"`
	Rotation float64          `json:"rotation"`
	Rect     image.Rectangle  `json:"rect"`
}

// Layout is the full geometry of a variant, computed before any pixel is drawn.
type Layout struct {
	TemplateID  int             `json:"templateId"`
	Canvas      models.Size     `json:"canvas"`
	Background  color.NRGBA     `json:"-"`
	BorderWidth int             `json:"borderWidth"`
	BorderColor color.NRGBA     `json:"-"`
	Product     image.Rectangle `json:"product"`
	Charge      int64           `json:"charge"`
	Stickers    []Sticker       `json:"stickers"`
}

// Compositor renders templates. The pricer decides the charge printed on
// LOW_SHIPPING badges.
type Compositor struct {
	pricer shipping.TemplatePricer
}

// New returns a compositor using pricer for badge charges.
func New(pricer shipping.TemplatePricer) *Compositor {
	return &Compositor{pricer: pricer}
}

// NewDefault returns a compositor using the zone/slab strategy over the default categories.
func NewDefault() *Compositor {
	return New(shipping.ZoneSlabStrategy{Categories: shipping.DefaultCategoryTable()})
}

// Pricer returns the strategy in use.
func (c *Compositor) Pricer() shipping.TemplatePricer {
	return c.pricer
}

// Plan computes the layout of tmpl for a product of the given size.
func (c *Compositor) Plan(tmpl models.Template, product image.Point, categoryID string) (Layout, error) {
	w, h := tmpl.CanvasSize.Width, tmpl.CanvasSize.Height
	if w <= 0 || h <= 0 {
		return Layout{}, fmt.Errorf("%w: template %d has canvas %dx%d", models.ErrComposition, tmpl.ID, w, h)
	}
	if product.X <= 0 || product.Y <= 0 {
		return Layout{}, fmt.Errorf("%w: product image is %dx%d", models.ErrInvalidImageInput, product.X, product.Y)
	}
	if tmpl.BorderWidth < 0 || 2*tmpl.BorderWidth > min(w, h) {
		return Layout{}, fmt.Errorf("%w: template %d border width %d", models.ErrComposition, tmpl.ID, tmpl.BorderWidth)
	}

	bg, err := utils.ParseHexColor(tmpl.Background)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: template %d background: %w", models.ErrComposition, tmpl.ID, err)
	}
	border := bg
	if tmpl.BorderWidth > 0 {
		if border, err = utils.ParseHexColor(tmpl.BorderColor); err != nil {
			return Layout{}, fmt.Errorf("%w: template %d border: %w", models.ErrComposition, tmpl.ID, err)
		}
	}
	bg.A = 255

	charge, err := c.pricer.ChargeFor(tmpl.ID, categoryID)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: template %d pricing: %w", models.ErrComposition, tmpl.ID, err)
	}

	layout := Layout{
		TemplateID:  tmpl.ID,
		Canvas:      tmpl.CanvasSize,
		Background:  bg,
		BorderWidth: tmpl.BorderWidth,
		BorderColor: border,
		Product:     productRect(w, h, product),
		Charge:      charge,
		Stickers:    make([]Sticker, 0, len(tmpl.Stickers)),
	}

	rotation := badge.Rotation(tmpl.ID)
	for i, spec := range tmpl.Stickers {
		if !(spec.Scale > 0) {
			return Layout{}, fmt.Errorf("%w: template %d sticker %d has scale %v", models.ErrComposition, tmpl.ID, i, spec.Scale)
		}
		size := stickerSize(spec.Scale)
		at := anchorPoint(spec, w, h, size)
		layout.Stickers = append(layout.Stickers, Sticker{
			Kind:     spec.Kind,
			Lines:    badge.Label(spec.Kind, &charge),
			Rotation: rotation,
			Rect:     image.Rectangle{Min: at, Max: at.Add(size)},
		})
	}

	return layout, nil
}

// Compose renders tmpl around product. The product is read, never modified.
func (c *Compositor) Compose(tmpl models.Template, product image.Image, categoryID string) (*image.NRGBA, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: no product image", models.ErrInvalidImageInput)
	}
	layout, err := c.Plan(tmpl, product.Bounds().Size(), categoryID)
	if err != nil {
		return nil, err
	}
	return Render(layout, product)
}

// ComposeBytes decodes imageBytes, composes it and returns the PNG encoding.
func (c *Compositor) ComposeBytes(tmpl models.Template, imageBytes []byte, categoryID string) ([]byte, error) {
	img, _, err := imageio.Decode(imageBytes)
	if err != nil {
		return nil, err
	}
	canvas, err := c.Compose(tmpl, img, categoryID)
	if err != nil {
		return nil, err
	}
	out, err := imageio.EncodePNG(canvas)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrComposition, err)
	}
	return out, nil
}

// Render rasterizes a planned layout.
func Render(layout Layout, product image.Image) (*image.NRGBA, error) {
	w, h := layout.Canvas.Width, layout.Canvas.Height

	dc := gg.NewContext(w, h)
	dc.SetColor(layout.Background)
	dc.Clear()

	if bw := float64(layout.BorderWidth); bw > 0 {
		dc.SetColor(layout.BorderColor)
		dc.SetLineWidth(bw)
		dc.DrawRectangle(bw/2, bw/2, float64(w)-bw, float64(h)-bw)
		dc.Stroke()
	}

	canvas := imaging.Clone(dc.Image())

	resized := imaging.Resize(product, layout.Product.Dx(), layout.Product.Dy(), imaging.Lanczos)
	canvas = imaging.Overlay(canvas, resized, layout.Product.Min, 1.0)

	amount := layout.Charge
	for i, s := range layout.Stickers {
		b, err := badge.Render(s.Kind, &amount, s.Rotation)
		if err != nil {
			return nil, fmt.Errorf("%w: template %d sticker %d: %w", models.ErrComposition, layout.TemplateID, i, err)
		}
		scaled := imaging.Resize(b, s.Rect.Dx(), s.Rect.Dy(), imaging.Lanczos)
		canvas = imaging.Overlay(canvas, scaled, s.Rect.Min, 1.0)
	}

	return canvas, nil
}

// Text joins every badge line of the layout, handy for logs and checks.
func (l Layout) Text() string {
	var parts []string
	for _, s := range l.Stickers {
		parts = append(parts, s.Lines...)
	}
	return strings.Join(parts, " | ")
}

// productRect scales the product into ProductFill of the canvas, keeping
// its aspect ratio, and centres it.
func productRect(w, h int, product image.Point) image.Rectangle {
	scale := math.Min(
		float64(w)*ProductFill/float64(product.X),
		float64(h)*ProductFill/float64(product.Y),
	)
	sw := max(1, int(math.Round(float64(product.X)*scale)))
	sh := max(1, int(math.Round(float64(product.Y)*scale)))

	top := int(math.Round(float64(h-sh) / 2))
	left := int(math.Round(float64(w-sw) / 2))
	return image.Rect(left, top, left+sw, top+sh)
}

// stickerSize scales the natural badge width by scale, height in proportion.
func stickerSize(scale float64) image.Point {
	sw := max(1, int(math.Round(badge.Width*scale)))
	sh := max(1, int(math.Round(float64(badge.Height)*float64(sw)/badge.Width)))
	return image.Pt(sw, sh)
}

// anchorPoint returns the top-left corner of a sticker of the given size.
// An explicit offset wins over the named position; unknown positions fall
// back to TOP_LEFT.
func anchorPoint(spec models.StickerSpec, w, h int, size image.Point) image.Point {
	if spec.Offset != nil {
		return *spec.Offset
	}

	switch spec.Position {
	case models.AnchorTopRight:
		return image.Pt(w-size.X-cornerMargin, cornerMargin)
	case models.AnchorBottomLeft:
		return image.Pt(cornerMargin, h-size.Y-cornerMargin)
	case models.AnchorBottomRight:
		return image.Pt(w-size.X-cornerMargin, h-size.Y-cornerMargin)
	case models.AnchorCenterTop:
		return image.Pt(centered(w, size.X), centerMargin)
	case models.AnchorCenterBottom:
		return image.Pt(centered(w, size.X), h-size.Y-centerMargin)
	default:
		return image.Pt(cornerMargin, cornerMargin)
	}
}

func centered(total, size int) int {
	return int(math.Round(float64(total-size) / 2))
}
