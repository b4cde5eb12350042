package thumbnail

import (
	"image"

	"github.com/disintegration/imaging"
)

// Stretch scales img to exactly width×height using Lanczos resampling.
// Each axis is scaled independently, so the original aspect ratio is
// discarded; any input shape is accepted.
func Stretch(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
