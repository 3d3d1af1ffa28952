package service

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// thumbnail settings
	qualityThumb = 70
	maxSizeThumb = 360
)

// Thumbnail shrinks a label PNG to fit a maxDim x maxDim box and re-encodes it as JPEG
// maxDim <= 0 uses the default thumbnail size. Images already small enough are only re-encoded
func Thumbnail(imageData []byte, maxDim int) ([]byte, error) {
	if maxDim <= 0 {
		maxDim = maxSizeThumb
	}

	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(qualityThumb)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
