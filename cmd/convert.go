package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/ytthumb/internal/formatter"
	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/desertthunder/ytthumb/internal/thumbnail"
	"github.com/urfave/cli/v3"
)

// Convert runs a one-shot, non-interactive conversion from command arguments.
func (r *Runner) Convert(ctx context.Context, cmd *cli.Command) error {
	inputPath := cmd.StringArg("path")
	outputPath := cmd.String("output")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	markdownPath := cmd.String("markdown")

	if inputPath == "" {
		return fmt.Errorf("%w: input image path", shared.ErrMissingArgument)
	}

	if useJSON {
		report, err := r.converter.Convert(inputPath, outputPath)
		if err != nil {
			return err
		}
		if markdownPath != "" {
			if err := writeMarkdownReport(markdownPath, report); err != nil {
				return err
			}
		}
		return r.writeJSON(report, pretty)
	}

	report, err := r.convert(inputPath, outputPath)
	if err != nil {
		return err
	}
	if markdownPath != "" {
		if err := writeMarkdownReport(markdownPath, report); err != nil {
			return err
		}
		r.logger.Info("wrote markdown report", "path", markdownPath)
	}
	return nil
}

func writeMarkdownReport(path string, report *thumbnail.Report) error {
	if err := os.WriteFile(path, formatter.ToMarkdown(report), 0644); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return nil
}
