// Package badge draws the pill-shaped marketing stickers placed on variants.
package badge

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"variant-studio/models"
	"variant-studio/utils"
)

// Natural badge size in pixels, before the compositor scales it.
const (
	Width  = 320
	Height = 100
)

// Pill geometry inside the Width x Height box.
const (
	rectX       = 10
	rectY       = 10
	rectW       = 300
	rectH       = 80
	rectRadius  = 40
	strokeWidth = 3
	pivotX      = 160
	pivotY      = 50
)

const (
	primarySize   = 22
	secondarySize = 20
	primaryY      = 42
	singleLineY   = 50
	secondaryY    = 68
)

const (
	shadowDX    = 3
	shadowDY    = 3
	shadowSigma = 4
	shadowAlpha = 102 // 0.4 opacity

	gradientEndAlpha = 204 // 0.8 opacity
)

type style struct {
	background string
	text       string
	primary    string
	secondary  string
}

const white = "#ffffff"

var styles = map[models.BadgeKind]style{
	models.BadgeFreeDelivery:   {"#4caf50", white, "FREE DELIVERY", ""},
	models.BadgeLowShipping:    {"#2196f3", white, "LOW SHIPPING", ""},
	models.BadgeBestseller:     {"#ffd700", "#000000", "★ BESTSELLER ★", ""},
	models.BadgeNewArrival:     {"#ff4081", white, "NEW ARRIVAL", ""},
	models.BadgeCashOnDelivery: {"#37474f", white, "COD AVAILABLE", ""},
	models.BadgeMeeshoMall:     {"#ff6b35", white, "MEESHO MALL", ""},
	models.BadgeAssuredQuality: {"#4caf50", white, "ASSURED", "QUALITY"},
	models.BadgeExclusiveOffer: {"#e91e63", white, "EXCLUSIVE", "OFFER"},
	models.BadgeLimitedStock:   {"#ff5722", white, "LIMITED", "STOCK"},
	models.BadgeTrendingNow:    {"#9c27b0", white, "TRENDING", "NOW"},
}

// Replacements for runes the embedded font has no glyph for.
var substitutes = map[rune]string{
	'₹': "Rs.",
	'★': "*",
}

var (
	fontOnce sync.Once
	boldFont *opentype.Font
	fontErr  error
)

// styleFor returns the kind's style. Unknown kinds look like FREE_DELIVERY.
func styleFor(kind models.BadgeKind) style {
	if s, ok := styles[kind]; ok {
		return s
	}
	return styles[models.BadgeFreeDelivery]
}

// Label returns the text lines printed on a badge. LOW_SHIPPING gets the
// amount as a second line when one is given.
func Label(kind models.BadgeKind, amount *int64) []string {
	s := styleFor(kind)
	lines := []string{s.primary}

	switch {
	case kind == models.BadgeLowShipping:
		if amount != nil && *amount > 0 {
			lines = append(lines, utils.FormatINR(*amount))
		}
	case s.secondary != "":
		lines = append(lines, s.secondary)
	}
	return lines
}

// Rotation is the tilt, in degrees, applied to every badge of a template.
// It cycles through -7..7 as the id grows.
func Rotation(templateID int) float64 {
	return float64((templateID*7)%15 - 7)
}

// Render draws a badge at its natural size, rotated rotationDeg degrees
// about the pill centre.
func Render(kind models.BadgeKind, amount *int64, rotationDeg float64) (*image.NRGBA, error) {
	s := styleFor(kind)
	fill, err := utils.ParseHexColor(s.background)
	if err != nil {
		return nil, fmt.Errorf("badge %s: %w", kind, err)
	}
	ink, err := utils.ParseHexColor(s.text)
	if err != nil {
		return nil, fmt.Errorf("badge %s: %w", kind, err)
	}

	lines := Label(kind, amount)

	primaryFace, err := newFace(primarySize)
	if err != nil {
		return nil, err
	}
	defer primaryFace.Close()

	dc := gg.NewContext(Width, Height)
	dc.DrawImage(shadowLayer(rotationDeg), 0, 0)

	dc.RotateAbout(gg.Radians(rotationDeg), pivotX, pivotY)

	faded := fill
	faded.A = gradientEndAlpha
	grad := gg.NewLinearGradient(rectX, rectY, rectX+rectW, rectY+rectH)
	grad.AddColorStop(0, fill)
	grad.AddColorStop(1, faded)

	dc.DrawRoundedRectangle(rectX, rectY, rectW, rectH, rectRadius)
	dc.SetFillStyle(grad)
	dc.FillPreserve()
	dc.SetColor(color.White)
	dc.SetLineWidth(strokeWidth)
	dc.Stroke()

	dc.SetColor(ink)
	dc.SetFontFace(primaryFace)
	y := float64(singleLineY)
	if len(lines) > 1 {
		y = primaryY
	}
	dc.DrawStringAnchored(printable(lines[0]), pivotX, y, 0.5, 0.5)

	if len(lines) > 1 {
		secondaryFace, err := newFace(secondarySize)
		if err != nil {
			return nil, err
		}
		defer secondaryFace.Close()

		dc.SetFontFace(secondaryFace)
		dc.DrawStringAnchored(printable(lines[1]), pivotX, secondaryY, 0.5, 0.5)
	}

	return imaging.Clone(dc.Image()), nil
}

// shadowLayer is the blurred, offset silhouette painted under the pill.
func shadowLayer(rotationDeg float64) image.Image {
	dc := gg.NewContext(Width, Height)
	dc.RotateAbout(gg.Radians(rotationDeg), pivotX, pivotY)
	dc.DrawRoundedRectangle(rectX+shadowDX, rectY+shadowDY, rectW, rectH, rectRadius)
	dc.SetColor(color.NRGBA{A: shadowAlpha})
	dc.Fill()
	return imaging.Blur(dc.Image(), shadowSigma)
}

// newFace returns a fresh bold face. Faces keep per-call buffers, so each
// render gets its own; the parsed font itself is shared.
func newFace(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse badge font: %w", fontErr)
	}

	face, err := opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create badge font face: %w", err)
	}
	return face, nil
}

// printable swaps runes the font cannot draw for their ASCII substitutes.
func printable(s string) string {
	var (
		b   strings.Builder
		buf sfnt.Buffer
	)
	b.Grow(len(s))
	for _, r := range s {
		if !hasGlyph(&buf, r) {
			if sub, found := substitutes[r]; found {
				b.WriteString(sub)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// hasGlyph reports whether the badge font maps r to a real glyph.
// Index 0 is the font's missing-glyph box.
func hasGlyph(buf *sfnt.Buffer, r rune) bool {
	if boldFont == nil {
		return false
	}
	idx, err := boldFont.GlyphIndex(buf, r)
	return err == nil && idx != 0
}
