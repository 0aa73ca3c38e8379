// Package phash computes average hashes (aHash) of product photos so that
// re-uploads of the same picture map onto the same stored product.
//
// The image is squeezed to 8x8 (aspect ratio ignored), converted to grayscale,
// and each of the 64 samples becomes one bit: 1 when it is at least the mean.
// Bits are packed four to a hex digit, most significant bit first, in scan
// order, giving a 16 character fingerprint.
package phash

import (
	"fmt"
	"image"
	"math/bits"

	"github.com/disintegration/imaging"

	"variant-studio/imageio"
	"variant-studio/models"
)

const (
	// Side is the edge length of the downscaled sample grid.
	Side = 8
	// Length is the number of hex digits in a hash.
	Length = Side * Side / 4
	// MaxDistance is the largest possible Hamming distance between two hashes.
	MaxDistance = Side * Side
)

// Hash decodes imageBytes and returns its 16 digit average hash.
func Hash(imageBytes []byte) (string, error) {
	img, _, err := imageio.Decode(imageBytes)
	if err != nil {
		return "", err
	}
	return HashImage(img)
}

// HashImage hashes an already decoded image.
func HashImage(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("%w: no image", models.ErrHashing)
	}
	small := imaging.Resize(img, Side, Side, imaging.Lanczos)
	gray := imaging.Grayscale(small)
	return hashGray(gray)
}

// hashGray reads the 64 luminance samples out of an 8x8 grayscale NRGBA.
func hashGray(gray *image.NRGBA) (string, error) {
	if gray == nil || gray.Rect.Dx() != Side || gray.Rect.Dy() != Side || len(gray.Pix) < Side*Side*4 {
		return "", fmt.Errorf("%w: pixel buffer is absent or malformed", models.ErrHashing)
	}
	samples := make([]uint8, 0, Side*Side)
	for y := 0; y < Side; y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < Side; x++ {
			samples = append(samples, row[x*4])
		}
	}
	return hashSamples(samples)
}

func hashSamples(samples []uint8) (string, error) {
	if len(samples) != Side*Side {
		return "", fmt.Errorf("%w: expected %d samples, got %d", models.ErrHashing, Side*Side, len(samples))
	}

	total := 0
	for _, s := range samples {
		total += int(s)
	}
	mean := float64(total) / float64(len(samples))

	const hexDigits = "0123456789abcdef"
	out := make([]byte, 0, Length)
	for i := 0; i < len(samples); i += 4 {
		var nibble byte
		for _, s := range samples[i : i+4] {
			nibble <<= 1
			if float64(s) >= mean {
				nibble |= 1
			}
		}
		out = append(out, hexDigits[nibble])
	}
	return string(out), nil
}

// Distance counts the differing bits of two equal length hex hashes.
func Distance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d digits", models.ErrLengthMismatch, len(a), len(b))
	}
	d := 0
	for i := 0; i < len(a); i++ {
		x, ok := nibble(a[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q is not a hex digit", models.ErrMalformedHash, a[i])
		}
		y, ok := nibble(b[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q is not a hex digit", models.ErrMalformedHash, b[i])
		}
		d += bits.OnesCount8(x ^ y)
	}
	return d, nil
}

// Validate checks that h looks like a hash produced by Hash.
func Validate(h string) error {
	if len(h) != Length {
		return fmt.Errorf("%w: expected %d hex digits, got %d", models.ErrMalformedHash, Length, len(h))
	}
	for i := 0; i < len(h); i++ {
		if _, ok := nibble(h[i]); !ok {
			return fmt.Errorf("%w: %q is not a hex digit", models.ErrMalformedHash, h[i])
		}
	}
	return nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
