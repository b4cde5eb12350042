package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/ytthumb/internal/formatter"
	"github.com/desertthunder/ytthumb/internal/shared"
	"github.com/desertthunder/ytthumb/internal/thumbnail"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	InputView ViewState = iota
	OutputView
	ConvertingView
	ResultView
)

// Model represents the TUI application state: the same
// AwaitInput → AwaitOutput → Done prompt machine as the plain prompt loop,
// rendered through bubbletea.
type Model struct {
	converter *thumbnail.Converter
	view      ViewState
	input     textinput.Model
	output    textinput.Model
	inputPath string
	report    *thumbnail.Report
	err       error
	quitting  bool
	errLine   string
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model around the provided converter.
func NewModel(converter *thumbnail.Converter) *Model {
	input := textinput.New()
	input.Placeholder = "photo.png"
	input.Focus()

	output := textinput.New()
	output.Placeholder = "press Enter to use default"

	return &Model{
		converter: converter,
		view:      InputView,
		input:     input,
		output:    output,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Err returns the conversion error, if any, once the program has finished.
func (m *Model) Err() error {
	return m.err
}

// Quit reports whether the user ended the session with the quit token or a
// quit key rather than completing a conversion.
func (m *Model) Quit() bool {
	return m.quitting
}

// Init starts the cursor blink for the focused text input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.view {
		case InputView:
			return m.handleInputKeys(msg)
		case OutputView:
			return m.handleOutputKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		case ConvertingView:
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case conversionDoneMsg:
		m.report = msg.report
		m.err = msg.err
		m.view = ResultView
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.quitting {
		return Colors.Title("Program exited by user.") + "\n"
	}

	switch m.view {
	case InputView:
		return m.renderInput()
	case OutputView:
		return m.renderOutput()
	case ConvertingView:
		return Colors.Prompt("Converting...") + "\n"
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if shared.IsQuitToken(value) {
			m.quitting = true
			return m, tea.Quit
		}
		if value == "" {
			m.errLine = "Input file name cannot be empty."
			return m, nil
		}
		m.inputPath = value
		m.errLine = ""
		m.view = OutputView
		m.input.Blur()
		return m, m.output.Focus()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleOutputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.view = InputView
		m.output.Blur()
		return m, m.input.Focus()
	case "enter":
		value := strings.TrimSpace(m.output.Value())
		if shared.IsQuitToken(value) {
			m.quitting = true
			return m, tea.Quit
		}
		m.view = ConvertingView
		return m, m.convert(m.inputPath, value)
	}

	var cmd tea.Cmd
	m.output, cmd = m.output.Update(msg)
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "enter", "esc":
		return m, tea.Quit
	case "r":
		m.view = InputView
		m.inputPath = ""
		m.report = nil
		m.err = nil
		m.input.SetValue("")
		m.output.SetValue("")
		m.output.Blur()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *Model) convert(inputPath, outputPath string) tea.Cmd {
	return func() tea.Msg {
		report, err := m.converter.Convert(inputPath, outputPath)
		return conversionDoneMsg{report: report, err: err}
	}
}

func (m *Model) renderInput() string {
	var b strings.Builder
	b.WriteString(Colors.Title("YouTube Thumbnail Converter (1280x720)") + "\n")
	b.WriteString(Colors.Warn("Tip: Type 'q' or 'quit' at any prompt to exit the program.") + "\n\n")
	b.WriteString(Colors.Prompt("Enter the input image file name with extension (png, jpg, etc.):") + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.errLine != "" {
		b.WriteString(Colors.Err(m.errLine) + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderOutput() string {
	var b strings.Builder
	b.WriteString(Colors.Prompt("Enter the output file name (press Enter to use default):") + "\n")
	b.WriteString(m.output.View() + "\n")
	b.WriteString(Colors.Help(fmt.Sprintf("default: %s", shared.DefaultOutputPath(m.inputPath))) + "\n")
	b.WriteString("\n" + m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return Colors.Err(fmt.Sprintf("Error processing image: %v", m.err)) + "\n\n" +
			Colors.Err("❌ Conversion failed!") + "\n\n" +
			m.help.ShortHelpView(m.keys.FullHelp()[1])
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(string(formatter.ToText(m.report)), "\n"), "\n") {
		b.WriteString(Colors.Prompt(line) + "\n")
	}
	for _, warning := range formatter.Warnings(m.report) {
		b.WriteString(Colors.Warn("Warning: "+warning) + "\n")
	}
	b.WriteString(Colors.OK("✅ Conversion successful!") + "\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.FullHelp()[1]))
	return b.String()
}
