package models

// Product is the stored record for a hashed product image
type Product struct {
	Hash           string `json:"hash"`
	ImagePath      string `json:"imagePath"`
	ShippingCharge int64  `json:"shippingCharge"`
}

// ShippingCalculateRequest represents the request body for POST /api/shipping/calculate
type ShippingCalculateRequest struct {
	Weight *float64 `json:"weight"`
	Zone   string   `json:"zone"`
}

// SyncChargeRequest represents the request body for POST /api/meesho-sync
type SyncChargeRequest struct {
	Hash   string `json:"hash"`
	Charge *int64 `json:"charge"`
}

// HashDistanceRequest represents the request body for POST /api/hash/distance
type HashDistanceRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// UploadResult is returned by the upload flow
type UploadResult struct {
	Hash           string           `json:"hash"`
	ShippingCharge int64            `json:"shippingCharge"`
	Existing       bool             `json:"existing"`
	SessionID      string           `json:"sessionId"`
	Variants       []string         `json:"variants"`
	Failures       []VariantFailure `json:"failures,omitempty"`
}

// ShippingLookup is the answer to "what does shipping cost for this image"
// ShippingCharge is nil when the hash has never been stored
type ShippingLookup struct {
	Message        string `json:"message,omitempty"`
	Hash           string `json:"hash"`
	ShippingCharge *int64 `json:"shippingCharge"`
}
