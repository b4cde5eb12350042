// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// convertCommand handles one-shot conversions
func convertCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "convert",
		Aliases: []string{"c"},
		Usage:   "Convert an image to a 1280x720 YouTube thumbnail",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "path",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: <input stem>_youtube_thumbnail.jpg)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the conversion report as raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "markdown",
				Usage: "Write a Markdown conversion report to the given path",
			},
		},
		Action: r.Convert,
	}
}

// promptCommand runs the interactive prompt session (also the default action)
func promptCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "prompt",
		Aliases: []string{"p"},
		Usage:   "Run the interactive prompt session",
		Action:  r.Prompt,
	}
}

// tuiCommand returns the top-level TUI command for the full-screen prompt session.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the full-screen interactive converter",
		Action:  r.TUI,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		convertCommand, promptCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}
