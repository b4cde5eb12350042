package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/desertthunder/ytthumb/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the bubbletea rendition of the prompt session.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/ytthumb-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(r.converter)
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if m, ok := final.(*ui.Model); ok {
		if m.Quit() {
			return shared.ErrUserQuit
		}
		if convErr := m.Err(); convErr != nil {
			return convErr
		}
	}
	return nil
}
