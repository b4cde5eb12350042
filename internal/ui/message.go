package ui

import (
	"github.com/desertthunder/ytthumb/internal/thumbnail"
)

// conversionDoneMsg delivers the pipeline result back into the Update loop.
type conversionDoneMsg struct {
	report *thumbnail.Report
	err    error
}
