package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytthumb/internal/formatter"
	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/desertthunder/ytthumb/internal/thumbnail"
	"github.com/desertthunder/ytthumb/internal/ui"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	converter *thumbnail.Converter
	logger    *log.Logger
	input     io.Reader
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Converter *thumbnail.Converter
	Logger    *log.Logger
	Input     io.Reader
	Output    io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Converter == nil {
		opts.Converter = thumbnail.NewConverter()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		converter: opts.Converter,
		logger:    opts.Logger,
		input:     opts.Input,
		output:    opts.Output,
	}
}

// SetLogger swaps the Runner's logger, e.g. for file-backed logging in TUI mode.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeReport prints the styled conversion summary the way the interactive
// session shows it: cyan status lines, yellow warnings, green confirmation.
func (r *Runner) writeReport(report *thumbnail.Report) {
	r.writePlain("%s\n", ui.Colors.Prompt(fmt.Sprintf("Original image size: %dx%d", report.OriginalWidth, report.OriginalHeight)))
	r.writePlain("%s\n", ui.Colors.Prompt(fmt.Sprintf("Processed image size: %dx%d", report.Width, report.Height)))
	r.writePlain("\n")
	r.writePlain("%s\n", ui.Colors.OK(fmt.Sprintf("Output saved to: %s", report.OutputPath)))
	r.writePlain("%s\n", ui.Colors.OK(fmt.Sprintf("Final file size: %s (Quality: %d%%)", shared.FormatSize(report.Size), report.Quality)))
	r.writePlain("\n")

	for _, warning := range formatter.Warnings(report) {
		r.writePlain("%s\n\n", ui.Colors.Warn("Warning: "+warning))
	}
}

// convert runs the pipeline and renders the outcome, returning the typed
// conversion error on failure so main can map it to a non-zero exit.
func (r *Runner) convert(inputPath, outputPath string) (*thumbnail.Report, error) {
	r.logger.Info("converting image", "input", inputPath, "output", outputPath)

	report, err := r.converter.Convert(inputPath, outputPath)
	if err != nil {
		r.writePlain("%s\n\n", ui.Colors.Err(fmt.Sprintf("Error processing image: %v", err)))
		r.writePlain("%s\n\n", ui.Colors.Err("❌ Conversion failed!"))
		return nil, err
	}

	r.writeReport(report)
	r.writePlain("%s\n\n", ui.Colors.OK("✅ Conversion successful!"))

	return report, nil
}
