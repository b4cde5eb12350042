package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "ytthumb",
		Usage:    "Convert any image into a size-bounded 1280x720 YouTube thumbnail",
		Version:  "0.1.0",
		Commands: runner.register(),
		Action:   runner.Prompt,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrUserQuit) {
			os.Exit(0)
		} else if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
