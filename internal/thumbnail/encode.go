package thumbnail

import (
	"bytes"
	"fmt"
	"image"

	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/disintegration/imaging"
)

// EncodeBounded JPEG-encodes img at descending quality levels (MaxQuality down
// to MinQuality in QualityStep decrements) and returns the bytes of the first
// attempt that fits SizeBudget, together with the quality used.
//
// When the ladder is exhausted the MinQuality bytes are returned even if they
// exceed the budget; callers detect that case by comparing len(data) against
// the budget.
func (c *Converter) EncodeBounded(img image.Image) ([]byte, int, error) {
	var buf bytes.Buffer
	quality := c.MaxQuality

	for {
		buf.Reset()
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", shared.ErrEncodeFailed, err)
		}
		if int64(buf.Len()) <= c.SizeBudget {
			return buf.Bytes(), quality, nil
		}
		if quality-c.QualityStep < c.MinQuality {
			// Ladder exhausted: accept the lowest-quality attempt as-is.
			return buf.Bytes(), quality, nil
		}
		quality -= c.QualityStep
	}
}
