package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/ytthumb/internal/shared"
	tu "github.com/desertthunder/ytthumb/internal/testing"
)

func newPromptRunner(in string) (*Runner, *bytes.Buffer) {
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Input:  strings.NewReader(in),
		Output: output,
		Logger: shared.NewLogger(&bytes.Buffer{}),
	})
	return runner, output
}

func TestPrompt(t *testing.T) {
	t.Run("quit token at input prompt exits cleanly", func(t *testing.T) {
		for _, token := range []string{"q", "Q", "quit", "QUIT", "QuIt"} {
			t.Run(token, func(t *testing.T) {
				runner, output := newPromptRunner(token + "\n")

				err := runner.Prompt(context.Background(), nil)
				if !errors.Is(err, shared.ErrUserQuit) {
					t.Errorf("expected ErrUserQuit, got %v", err)
				}
				if !strings.Contains(output.String(), "Program exited by user.") {
					t.Error("expected farewell message")
				}
			})
		}
	})

	t.Run("quit token at output prompt exits cleanly", func(t *testing.T) {
		runner, output := newPromptRunner("photo.png\nq\n")

		err := runner.Prompt(context.Background(), nil)
		if !errors.Is(err, shared.ErrUserQuit) {
			t.Errorf("expected ErrUserQuit, got %v", err)
		}
		if !strings.Contains(output.String(), "Program exited by user.") {
			t.Error("expected farewell message")
		}
	})

	t.Run("empty input re-prompts", func(t *testing.T) {
		runner, output := newPromptRunner("\n\nq\n")

		err := runner.Prompt(context.Background(), nil)
		if !errors.Is(err, shared.ErrUserQuit) {
			t.Errorf("expected ErrUserQuit after re-prompts, got %v", err)
		}

		text := output.String()
		if strings.Count(text, "Input file name cannot be empty.") != 2 {
			t.Errorf("expected two empty-input error lines, got:\n%s", text)
		}
		if strings.Count(text, "Enter the input image file name") != 3 {
			t.Errorf("expected three input prompts, got:\n%s", text)
		}
	})

	t.Run("end of input treated as quit", func(t *testing.T) {
		runner, _ := newPromptRunner("")

		err := runner.Prompt(context.Background(), nil)
		if !errors.Is(err, shared.ErrUserQuit) {
			t.Errorf("expected ErrUserQuit on EOF, got %v", err)
		}
	})

	t.Run("full session converts with default output name", func(t *testing.T) {
		tmpDir := t.TempDir()
		input := tu.WritePNG(t, tmpDir, "photo.png", tu.GradientImage(800, 450))

		runner, output := newPromptRunner(input + "\n\n")

		if err := runner.Prompt(context.Background(), nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		text := output.String()
		if !strings.Contains(text, "Conversion successful!") {
			t.Errorf("expected success line, got:\n%s", text)
		}
		tu.AssertFileExists(t, filepath.Join(tmpDir, "photo_youtube_thumbnail.jpg"))
	})

	t.Run("full session with explicit output name", func(t *testing.T) {
		tmpDir := t.TempDir()
		input := tu.WritePNG(t, tmpDir, "photo.png", tu.GradientImage(800, 450))
		dest := filepath.Join(tmpDir, "thumb.jpg")

		runner, _ := newPromptRunner(input + "\n" + dest + "\n")

		if err := runner.Prompt(context.Background(), nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		tu.AssertFileExists(t, dest)
	})

	t.Run("missing input file fails and writes nothing", func(t *testing.T) {
		tmpDir := t.TempDir()
		missing := filepath.Join(tmpDir, "nope.png")

		runner, output := newPromptRunner(missing + "\n\n")

		err := runner.Prompt(context.Background(), nil)
		if !errors.Is(err, shared.ErrFileNotFound) {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
		if !strings.Contains(output.String(), "Conversion failed!") {
			t.Error("expected failure line")
		}
		tu.AssertNoFile(t, shared.DefaultOutputPath(missing))
	})
}
