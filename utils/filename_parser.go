package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Variant files are named variant_<templateID>.png inside a session directory,
// archive entries image_<templateID>.png.
const (
	VariantPrefix = "variant"
	ArchivePrefix = "image"
)

var variantNameRegex = regexp.MustCompile(`^(variant|image)_(\d+)\.png$`)

// VariantFileName returns the stored file name for a template's variant.
func VariantFileName(templateID int) string {
	return fmt.Sprintf("%s_%d.png", VariantPrefix, templateID)
}

// ArchiveFileName returns the ZIP entry name for a template's variant.
func ArchiveFileName(templateID int) string {
	return fmt.Sprintf("%s_%d.png", ArchivePrefix, templateID)
}

// ParseVariantFileName extracts the template id from a variant or archive file name.
// Example: variant_12.png -> 12
func ParseVariantFileName(filename string) (int, error) {
	matches := variantNameRegex.FindStringSubmatch(strings.ToLower(filename))
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid variant filename %q: expected variant_<id>.png", filename)
	}

	id, err := strconv.Atoi(matches[2])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid template id in filename %q", filename)
	}
	return id, nil
}
