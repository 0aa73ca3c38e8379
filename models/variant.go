package models

import "fmt"

// FailurePolicy decides what a batch does when a single variant fails
type FailurePolicy string

const (
	// FailureAbort stops the whole batch on the first failed variant
	FailureAbort FailurePolicy = "abort"
	// FailureSkip records the failure and keeps the other variants
	FailureSkip FailurePolicy = "skip"
)

// ParseFailurePolicy validates a policy name. Empty means FailureAbort.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case "", FailureAbort:
		return FailureAbort, nil
	case FailureSkip:
		return FailureSkip, nil
	}
	return "", fmt.Errorf("unknown failure policy %q (expected abort or skip)", s)
}

// RenderedVariant is one composed output image
type RenderedVariant struct {
	TemplateID int    `json:"templateId"`
	Name       string `json:"name"`
	PNG        []byte `json:"-"`
}

// VariantFailure records a template that could not be rendered
type VariantFailure struct {
	TemplateID int    `json:"templateId"`
	Error      string `json:"error"`
}

// Batch is the ordered output of one batch run
type Batch struct {
	CategoryID string            `json:"categoryId"`
	Variants   []RenderedVariant `json:"variants"`
	Failures   []VariantFailure  `json:"failures,omitempty"`
}
