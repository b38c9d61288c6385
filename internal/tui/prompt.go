package tui

import (
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strickvl/beemind/internal/config"
)

// promptStatus is the outcome of feeding one key event to a prompt.
type promptStatus int

const (
	promptEditing promptStatus = iota
	promptSubmitted
	promptCancelled
)

// promptModel is a single-field modal text editor. While it is open it
// owns terminal input exclusively; every invocation starts from a fresh
// buffer. In numeric mode keystrokes other than digits and '.' are
// rejected outright and Enter revalidates the whole buffer.
type promptModel struct {
	title   string
	numeric bool
	input   textinput.Model
	errMsg  string
}

func newPrompt(title string, numeric bool) promptModel {
	ti := textinput.New()
	ti.Prompt = "→ "
	ti.CharLimit = config.MaxCommentLength
	ti.Width = config.PromptWidth - 4
	ti.Focus()
	return promptModel{title: title, numeric: numeric, input: ti}
}

// handleKey applies one key event. The returned status tells the caller
// whether the prompt resolved; the buffer is only meaningful on
// promptSubmitted.
func (p promptModel) handleKey(msg tea.KeyMsg) (promptModel, promptStatus) {
	// An inline validation error holds the prompt until any key is
	// pressed; that key only dismisses the error.
	if p.errMsg != "" {
		p.errMsg = ""
		return p, promptEditing
	}

	switch msg.Type {
	case tea.KeyEsc:
		return p, promptCancelled
	case tea.KeyEnter:
		if p.numeric && !parsesAsFinite(p.input.Value()) {
			p.errMsg = "Invalid number! Press any key..."
			return p, promptEditing
		}
		return p, promptSubmitted
	case tea.KeyRunes, tea.KeySpace:
		if p.numeric && !numericRunes(msg.Runes) {
			return p, promptEditing
		}
	}

	p.input, _ = p.input.Update(msg)
	return p, promptEditing
}

// Value returns the current buffer contents.
func (p promptModel) Value() string {
	return p.input.Value()
}

// View renders the bordered overlay centered on the screen.
func (p promptModel) View(width, height int) string {
	hint := "Enter to submit, Esc to cancel"
	if p.errMsg != "" {
		hint = CurrentTheme.ErrorText.Render(p.errMsg)
	} else {
		hint = CurrentTheme.Dim.Render(hint)
	}
	content := p.title + "\n" + p.input.View() + "\n\n" + hint
	box := CurrentTheme.PromptFrame.Width(config.PromptWidth).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func parsesAsFinite(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func numericRunes(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return len(runes) > 0
}

// entryStage identifies the step of the datapoint entry sequence.
type entryStage int

const (
	stageValue entryStage = iota
	stageComment
)

// entryFlow is the two-step datapoint entry modal: a numeric value prompt
// followed by an optional free-text comment prompt. Cancellation at either
// stage abandons the whole flow without touching the API.
type entryFlow struct {
	slug       string
	fromDetail bool
	stage      entryStage
	value      float64
	prompt     promptModel
}

func newEntryFlow(slug string, fromDetail bool) *entryFlow {
	return &entryFlow{
		slug:       slug,
		fromDetail: fromDetail,
		prompt:     newPrompt("Enter value (number):", true),
	}
}

// entryOutcome is the resolution of one key event fed to the flow.
type entryOutcome int

const (
	entryPending entryOutcome = iota
	entryCancelled
	entryComplete
)

// handleKey advances the flow by one key event. On entryComplete the
// flow's slug, value and the returned comment describe the datapoint
// request to submit.
func (f *entryFlow) handleKey(msg tea.KeyMsg) (entryOutcome, string) {
	var status promptStatus
	f.prompt, status = f.prompt.handleKey(msg)
	switch status {
	case promptCancelled:
		return entryCancelled, ""
	case promptSubmitted:
		if f.stage == stageValue {
			// The numeric prompt guarantees the buffer parses.
			f.value, _ = strconv.ParseFloat(f.prompt.Value(), 64)
			f.stage = stageComment
			f.prompt = newPrompt("Enter comment (optional):", false)
			return entryPending, ""
		}
		return entryComplete, f.prompt.Value()
	}
	return entryPending, ""
}

// View renders the active prompt of the flow.
func (f *entryFlow) View(width, height int) string {
	return f.prompt.View(width, height)
}
