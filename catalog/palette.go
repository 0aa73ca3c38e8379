package catalog

import "variant-studio/models"

// CanvasSizes are the square output sizes accepted by the marketplace.
var CanvasSizes = []models.Size{
	{Width: 1080, Height: 1080},
	{Width: 1230, Height: 1230},
	{Width: 1590, Height: 1590},
}

// Backgrounds is the light pastel palette cycled by template index.
// "#f8fafc" appears twice on purpose; removing it would shift every later template.
var Backgrounds = []string{
	"#fef3f2",
	"#fff7ed",
	"#fefce8",
	"#f7fee7",
	"#ecfdf5",
	"#f0fdf4",
	"#f0f9ff",
	"#eff6ff",
	"#faf5ff",
	"#fdf4ff",
	"#fff1f2",
	"#fef2f2",
	"#f8fafc",
	"#f1f5f9",
	"#e2e8f0",
	"#f8fafc",
}

// BorderColors is cycled by template index. Only used when the border width is non-zero.
var BorderColors = []string{
	"#ef4444",
	"#f97316",
	"#f59e0b",
	"#eab308",
	"#84cc16",
	"#22c55e",
	"#10b981",
	"#14b8a6",
	"#06b6d4",
	"#0ea5e9",
	"#3b82f6",
	"#6366f1",
	"#8b5cf6",
	"#a855f7",
	"#d946ef",
	"#ec4899",
	"#f43f5e",
	"#ffffff",
	"#000000",
	"#6b7280",
}

// Kinds lists the badge kinds in catalog order.
var Kinds = []models.BadgeKind{
	models.BadgeFreeDelivery,
	models.BadgeLowShipping,
	models.BadgeBestseller,
	models.BadgeNewArrival,
	models.BadgeCashOnDelivery,
	models.BadgeMeeshoMall,
	models.BadgeAssuredQuality,
	models.BadgeExclusiveOffer,
	models.BadgeLimitedStock,
	models.BadgeTrendingNow,
}

// Anchors lists sticker positions in catalog order.
var Anchors = []models.Anchor{
	models.AnchorTopLeft,
	models.AnchorTopRight,
	models.AnchorBottomLeft,
	models.AnchorBottomRight,
	models.AnchorCenterTop,
	models.AnchorCenterBottom,
}
