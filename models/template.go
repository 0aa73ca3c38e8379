package models

import "image"

// BadgeKind identifies one of the fixed sticker designs
type BadgeKind string

const (
	BadgeFreeDelivery   BadgeKind = "FREE_DELIVERY"
	BadgeLowShipping    BadgeKind = "LOW_SHIPPING"
	BadgeBestseller     BadgeKind = "BESTSELLER"
	BadgeNewArrival     BadgeKind = "NEW_ARRIVAL"
	BadgeCashOnDelivery BadgeKind = "CASH_ON_DELIVERY"
	BadgeMeeshoMall     BadgeKind = "MEESHO_MALL"
	BadgeAssuredQuality BadgeKind = "ASSURED_QUALITY"
	BadgeExclusiveOffer BadgeKind = "EXCLUSIVE_OFFER"
	BadgeLimitedStock   BadgeKind = "LIMITED_STOCK"
	BadgeTrendingNow    BadgeKind = "TRENDING_NOW"
)

// Anchor is a named sticker placement relative to the canvas edges
type Anchor string

const (
	AnchorTopLeft      Anchor = "TOP_LEFT"
	AnchorTopRight     Anchor = "TOP_RIGHT"
	AnchorBottomLeft   Anchor = "BOTTOM_LEFT"
	AnchorBottomRight  Anchor = "BOTTOM_RIGHT"
	AnchorCenterTop    Anchor = "CENTER_TOP"
	AnchorCenterBottom Anchor = "CENTER_BOTTOM"
)

// Size is a canvas size in pixels
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StickerSpec describes one badge placed on a template.
// When Offset is set it wins over Position.
type StickerSpec struct {
	Kind     BadgeKind    `json:"type"`
	Position Anchor       `json:"position"`
	Offset   *image.Point `json:"offset,omitempty"`
	Scale    float64      `json:"scale"`
}

// Template is a fixed recipe for rendering one output variant.
// Stickers are painted in slice order, later entries on top.
type Template struct {
	ID          int           `json:"id"`
	CanvasSize  Size          `json:"canvasSize"`
	Background  string        `json:"background"`
	BorderWidth int           `json:"borderWidth"`
	BorderColor string        `json:"borderColor"`
	Stickers    []StickerSpec `json:"stickers"`
}
