// package formatter renders conversion reports to presentation formats (plain text, Markdown)
package formatter

import (
	"bytes"
	"fmt"

	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/desertthunder/ytthumb/internal/thumbnail"
)

// ToText converts a Report to the plain status lines shown after a conversion.
func ToText(report *thumbnail.Report) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Original image size: %dx%d\n", report.OriginalWidth, report.OriginalHeight))
	buf.WriteString(fmt.Sprintf("Processed image size: %dx%d\n", report.Width, report.Height))
	buf.WriteString(fmt.Sprintf("Output saved to: %s\n", report.OutputPath))
	buf.WriteString(fmt.Sprintf("Final file size: %s (Quality: %d%%)\n", shared.FormatSize(report.Size), report.Quality))

	return buf.Bytes()
}

// ToMarkdown converts a Report to a Markdown snippet suitable for release
// notes or asset inventories.
func ToMarkdown(report *thumbnail.Report) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Thumbnail Conversion\n\n")
	buf.WriteString(fmt.Sprintf("**Input**: %s\n\n", report.InputPath))
	buf.WriteString(fmt.Sprintf("**Output**: %s\n\n", report.OutputPath))
	buf.WriteString("## Details\n\n")
	buf.WriteString(fmt.Sprintf("- Original size: %dx%d\n", report.OriginalWidth, report.OriginalHeight))
	buf.WriteString(fmt.Sprintf("- Processed size: %dx%d\n", report.Width, report.Height))
	buf.WriteString(fmt.Sprintf("- Quality: %d%%\n", report.Quality))
	buf.WriteString(fmt.Sprintf("- File size: %s\n", shared.FormatSize(report.Size)))

	if report.OverBudget || report.BelowMinWidth {
		buf.WriteString("\n## Warnings\n\n")
		for _, w := range Warnings(report) {
			buf.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return buf.Bytes()
}

// Warnings returns the advisory lines a report carries, in display order.
func Warnings(report *thumbnail.Report) []string {
	var warnings []string
	if report.BelowMinWidth {
		warnings = append(warnings, fmt.Sprintf("Image width (%dpx) is below YouTube's minimum requirement (%dpx)", report.OriginalWidth, thumbnail.MinWidth))
	}
	if report.OverBudget {
		warnings = append(warnings, "File size exceeds 2MB limit. Consider using a smaller input image.")
	}
	return warnings
}
