package shared

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "png input",
			input: "photo.png",
			want:  "photo_youtube_thumbnail.jpg",
		},
		{
			name:  "jpeg input",
			input: "vacation.jpeg",
			want:  "vacation_youtube_thumbnail.jpg",
		},
		{
			name:  "path with directories",
			input: "/tmp/images/cover.png",
			want:  "/tmp/images/cover_youtube_thumbnail.jpg",
		},
		{
			name:  "no extension",
			input: "snapshot",
			want:  "snapshot_youtube_thumbnail.jpg",
		},
		{
			name:  "dotted stem keeps earlier dots",
			input: "my.photo.v2.png",
			want:  "my.photo.v2_youtube_thumbnail.jpg",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultOutputPath(tt.input)
			if got != tt.want {
				t.Errorf("DefaultOutputPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsQuitToken(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase q", input: "q", want: true},
		{name: "uppercase Q", input: "Q", want: true},
		{name: "lowercase quit", input: "quit", want: true},
		{name: "mixed case quit", input: "QuIt", want: true},
		{name: "padded quit", input: "  quit  ", want: true},
		{name: "empty string", input: "", want: false},
		{name: "filename", input: "photo.png", want: false},
		{name: "quit as substring", input: "quitter", want: false},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := IsQuitToken(tt.input)
			if got != tt.want {
				t.Errorf("IsQuitToken(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tc := []struct {
		name string
		size int64
		want string
	}{
		{name: "zero", size: 0, want: "0.00MB"},
		{name: "one mebibyte", size: 1024 * 1024, want: "1.00MB"},
		{name: "two mebibytes", size: 2 * 1024 * 1024, want: "2.00MB"},
		{name: "fractional", size: 1572864, want: "1.50MB"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSize(tt.size)
			if got != tt.want {
				t.Errorf("FormatSize(%d) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestLoggers(t *testing.T) {
	t.Run("NewLogger writes to provided writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf)
		logger.Info("hello")

		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("expected log output to contain message, got %q", buf.String())
		}
	})

	t.Run("NewLogger defaults writer", func(t *testing.T) {
		if NewLogger(nil) == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("NewFileLogger creates file and directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "ytthumb.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		logger.Info("started")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("log file should exist: %v", err)
		}
		if !strings.Contains(string(data), "started") {
			t.Errorf("expected log file to contain message, got %q", string(data))
		}
	})
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == "" || b == "" {
		t.Error("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected unique IDs")
	}
}

func TestErrorWrapping(t *testing.T) {
	err := fmt.Errorf("%w: photo.png", ErrFileNotFound)
	if !errors.Is(err, ErrFileNotFound) {
		t.Error("wrapped error should match sentinel via errors.Is")
	}
	if errors.Is(err, ErrDecodeFailed) {
		t.Error("wrapped error should not match unrelated sentinel")
	}
}
