package models

// PublishedFile is a file uploaded to the shared Drive folder
type PublishedFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Link string `json:"link,omitempty"`
}

// Archive is the ZIP produced by the generate flow
type Archive struct {
	Name      string           `json:"name"`
	Data      []byte           `json:"-"`
	Variants  int              `json:"variants"`
	HasSheet  bool             `json:"hasSheet"`
	Failures  []VariantFailure `json:"failures,omitempty"`
	Published *PublishedFile   `json:"published,omitempty"`
}
