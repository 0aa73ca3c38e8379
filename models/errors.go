package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the pipeline. Callers match with errors.Is.
var (
	ErrInvalidImageInput = errors.New("invalid image input")
	ErrComposition       = errors.New("composition failed")
	ErrHashing           = errors.New("image hashing failed")
	ErrLengthMismatch    = errors.New("hashes must be of equal length")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidZone       = errors.New("invalid zone")
	ErrInvalidWeight     = errors.New("invalid weight")
	ErrInvalidCount      = errors.New("invalid template count")
	ErrInvalidCharge     = errors.New("invalid shipping charge")
	ErrNotFound          = errors.New("not found")
)

// ErrMalformedHash marks a hash string with non-hex digits. It is also an ErrHashing.
var ErrMalformedHash = fmt.Errorf("%w: malformed hash", ErrHashing)

// IsBadInput reports whether err was caused by the caller's input
// rather than an internal failure.
func IsBadInput(err error) bool {
	for _, target := range []error{
		ErrInvalidImageInput,
		ErrLengthMismatch,
		ErrMalformedHash,
		ErrInvalidCategory,
		ErrInvalidZone,
		ErrInvalidWeight,
		ErrInvalidCount,
		ErrInvalidCharge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
