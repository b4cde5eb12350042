// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI walks the same prompt state machine as the plain prompt loop:
//  1. [InputView] : collect the input image path (re-prompts on empty input)
//  2. [OutputView] : collect an optional output path, showing the derived default
//  3. [ConvertingView] : run the conversion pipeline as a background tea.Cmd
//  4. [ResultView] : show the conversion report or error, offer restart
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern; the conversion result arrives as a conversionDoneMsg.
//
// Typing the quit token ("q"/"quit", any case) at either prompt ends the
// session cleanly, matching the line-based prompt loop's behavior.
package ui
