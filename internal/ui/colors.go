package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors is the palette shared by the prompt loop and the TUI. Hues follow
// the conventional terminal mapping: magenta banner, cyan prompts, green
// success, red errors, yellow warnings.
var Colors = NewPalette("#FF00FF", "#00FFFF", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title  lipgloss.Style
	prompt lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	help   lipgloss.Style
}

func NewPalette(t, p, s, e, w, h string) *Palette {
	return &Palette{
		title:  NewBold(t),
		prompt: NewStyle(p),
		ok:     NewBold(s),
		err:    NewBold(e),
		warn:   NewStyle(w),
		help:   NewEm(h),
	}
}

func (p *Palette) Title(s string) string  { return p.title.Render(s) }
func (p *Palette) Prompt(s string) string { return p.prompt.Render(s) }
func (p *Palette) OK(s string) string     { return p.ok.Render(s) }
func (p *Palette) Err(s string) string    { return p.err.Render(s) }
func (p *Palette) Warn(s string) string   { return p.warn.Render(s) }
func (p *Palette) Help(s string) string   { return p.help.Render(s) }

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
