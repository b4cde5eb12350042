package thumbnail

import (
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/disintegration/imaging"
)

// YouTube thumbnail constraints.
const (
	TargetWidth  = 1280
	TargetHeight = 720
	SizeBudget   = 2 * 1024 * 1024
	MinWidth     = 640
	MaxQuality   = 95
	MinQuality   = 60
	QualityStep  = 5
)

// Converter holds the conversion parameters. Fields are exported so tests can
// tighten the budget or shrink the ladder without re-encoding huge fixtures.
type Converter struct {
	TargetWidth  int
	TargetHeight int
	SizeBudget   int64
	MinWidth     int
	MaxQuality   int
	MinQuality   int
	QualityStep  int
}

// Report describes a completed conversion.
type Report struct {
	InputPath      string `json:"input_path"`
	OutputPath     string `json:"output_path"`
	OriginalWidth  int    `json:"original_width"`
	OriginalHeight int    `json:"original_height"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Quality        int    `json:"quality"`
	Size           int64  `json:"size"`
	OverBudget     bool   `json:"over_budget"`
	BelowMinWidth  bool   `json:"below_min_width"`
}

// NewConverter creates a Converter with the YouTube thumbnail defaults.
func NewConverter() *Converter {
	return &Converter{
		TargetWidth:  TargetWidth,
		TargetHeight: TargetHeight,
		SizeBudget:   SizeBudget,
		MinWidth:     MinWidth,
		MaxQuality:   MaxQuality,
		MinQuality:   MinQuality,
		QualityStep:  QualityStep,
	}
}

// Convert runs the full pipeline for inputPath: decode, stretch resize,
// size-bounded encode, atomic write. An empty outputPath derives the default
// `<stem>_youtube_thumbnail.jpg` name next to the input.
//
// Failures are returned as typed errors ([shared.ErrFileNotFound],
// [shared.ErrDecodeFailed], [shared.ErrEncodeFailed], [shared.ErrWriteFailed])
// and never leave a partial output file behind.
func (c *Converter) Convert(inputPath, outputPath string) (*Report, error) {
	inputPath = strings.TrimSpace(inputPath)
	if inputPath == "" {
		return nil, shared.ErrEmptyPath
	}

	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", shared.ErrFileNotFound, inputPath)
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrFileNotFound, err)
	}

	src, err := imaging.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrDecodeFailed, err)
	}

	if strings.TrimSpace(outputPath) == "" {
		outputPath = shared.DefaultOutputPath(inputPath)
	}

	bounds := src.Bounds()
	report := &Report{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		OriginalWidth:  bounds.Dx(),
		OriginalHeight: bounds.Dy(),
		Width:          c.TargetWidth,
		Height:         c.TargetHeight,
		BelowMinWidth:  bounds.Dx() < c.MinWidth,
	}

	resized := Stretch(src, c.TargetWidth, c.TargetHeight)

	data, quality, err := c.EncodeBounded(resized)
	if err != nil {
		return nil, err
	}
	report.Quality = quality
	report.Size = int64(len(data))
	report.OverBudget = report.Size > c.SizeBudget

	if err := writeAtomic(outputPath, data); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}

	return report, nil
}

// writeAtomic writes data to path through a uniquely named temp file in the
// same directory, renaming into place so readers never observe partial writes.
func writeAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, shared.GenerateID())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
