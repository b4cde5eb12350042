package main

import (
	"bufio"
	"context"
	"strings"

	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/desertthunder/ytthumb/internal/ui"
	"github.com/urfave/cli/v3"
)

// Prompt runs the interactive session: prompt for an input path (re-prompting
// while empty), prompt once for an optional output path, convert, report.
//
// Typing "q" or "quit" (any case) at either prompt — or closing stdin — ends
// the session with [shared.ErrUserQuit], which main maps to a clean exit.
func (r *Runner) Prompt(ctx context.Context, cmd *cli.Command) error {
	scanner := bufio.NewScanner(r.input)

	r.writePlain("\n%s\n", ui.Colors.Title("YouTube Thumbnail Converter (1280x720)"))
	r.writePlain("%s\n\n", ui.Colors.Warn("Tip: Type 'q' or 'quit' at any prompt to exit the program."))

	inputPath, err := r.promptLine(scanner, "Enter the input image file name with extension (png, jpg, etc.): ")
	if err != nil {
		return err
	}
	for inputPath == "" {
		r.writePlain("%s\n\n", ui.Colors.Err("Input file name cannot be empty."))
		if inputPath, err = r.promptLine(scanner, "Enter the input image file name with extension (png, jpg, etc.): "); err != nil {
			return err
		}
	}

	r.writePlain("\n")

	outputPath, err := r.promptLine(scanner, "Enter the output file name (press Enter to use default): ")
	if err != nil {
		return err
	}
	r.writePlain("\n")

	_, err = r.convert(inputPath, outputPath)
	return err
}

// promptLine prints a styled prompt and reads one line. The quit token and
// end of input both surface as [shared.ErrUserQuit] after a farewell line.
func (r *Runner) promptLine(scanner *bufio.Scanner, prompt string) (string, error) {
	r.writePlain("%s", ui.Colors.Prompt(prompt))

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		r.farewell()
		return "", shared.ErrUserQuit
	}

	line := strings.TrimSpace(scanner.Text())
	if shared.IsQuitToken(line) {
		r.farewell()
		return "", shared.ErrUserQuit
	}
	return line, nil
}

func (r *Runner) farewell() {
	r.writePlain("\n%s\n\n", ui.Colors.Title("Program exited by user."))
}
