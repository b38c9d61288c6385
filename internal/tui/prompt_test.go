package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runesKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(p promptModel, s string) promptModel {
	for _, r := range s {
		p, _ = p.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestNumericPromptFiltersRunes(t *testing.T) {
	p := newPrompt("Enter value (number):", true)
	p = typeInto(p, "1a2b.c5 x")
	if got := p.Value(); got != "12.5" {
		t.Errorf("buffer = %q, want %q", got, "12.5")
	}
}

func TestNumericPromptRejectsSpace(t *testing.T) {
	p := newPrompt("Enter value (number):", true)
	p, _ = p.handleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := p.Value(); got != "" {
		t.Errorf("buffer = %q, want empty", got)
	}
}

func TestCommentPromptAcceptsFreeText(t *testing.T) {
	p := newPrompt("Enter comment (optional):", false)
	p = typeInto(p, "did it at the gym")
	if got := p.Value(); got != "did it at the gym" {
		t.Errorf("buffer = %q", got)
	}
}

func TestPromptEscCancels(t *testing.T) {
	p := typeInto(newPrompt("Enter value (number):", true), "42")
	_, status := p.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if status != promptCancelled {
		t.Errorf("status = %v, want cancelled", status)
	}
}

func TestPromptEnterValidNumberSubmits(t *testing.T) {
	p := typeInto(newPrompt("Enter value (number):", true), "3.5")
	p, status := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if status != promptSubmitted {
		t.Fatalf("status = %v, want submitted", status)
	}
	if p.Value() != "3.5" {
		t.Errorf("value = %q", p.Value())
	}
}

func TestPromptEnterInvalidBufferHoldsError(t *testing.T) {
	for _, buffer := range []string{"", ".", "1.2.3", "..."} {
		p := typeInto(newPrompt("Enter value (number):", true), buffer)
		p, status := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
		if status != promptEditing {
			t.Errorf("buffer %q: status = %v, want editing", buffer, status)
		}
		if p.errMsg == "" {
			t.Errorf("buffer %q: expected inline error", buffer)
		}

		// The next key only dismisses the error; it is not inserted.
		p, status = p.handleKey(runesKey("7"))
		if status != promptEditing {
			t.Errorf("buffer %q: dismissal key resolved the prompt", buffer)
		}
		if p.errMsg != "" {
			t.Errorf("buffer %q: error not cleared", buffer)
		}
		if p.Value() != buffer {
			t.Errorf("buffer %q: dismissal key mutated buffer to %q", buffer, p.Value())
		}
	}
}

func TestPromptNeverSubmitsNonFinite(t *testing.T) {
	// "Inf" and "NaN" cannot be typed in numeric mode, but Enter must
	// still reject them if they somehow reach the buffer.
	for _, s := range []string{"Inf", "+Inf", "-Inf", "NaN", "inf"} {
		if parsesAsFinite(s) {
			t.Errorf("parsesAsFinite(%q) = true", s)
		}
	}
	for _, s := range []string{"0", "3.5", ".5", "007"} {
		if !parsesAsFinite(s) {
			t.Errorf("parsesAsFinite(%q) = false", s)
		}
	}
}

func TestPromptViewShowsError(t *testing.T) {
	p := typeInto(newPrompt("Enter value (number):", true), ".")
	p, _ = p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(p.View(100, 40), "Invalid number!") {
		t.Error("error message missing from view")
	}
}

func TestEntryFlowAdvancesToComment(t *testing.T) {
	f := newEntryFlow("pushups", false)
	for _, r := range "12.5" {
		outcome, _ := f.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if outcome != entryPending {
			t.Fatalf("typing resolved flow early: %v", outcome)
		}
	}
	outcome, _ := f.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if outcome != entryPending {
		t.Fatalf("value submit resolved flow: %v", outcome)
	}
	if f.stage != stageComment {
		t.Fatalf("stage = %v, want comment", f.stage)
	}
	if f.value != 12.5 {
		t.Errorf("value = %v, want 12.5", f.value)
	}

	for _, r := range "morning set" {
		f.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	outcome, comment := f.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if outcome != entryComplete {
		t.Fatalf("outcome = %v, want complete", outcome)
	}
	if comment != "morning set" {
		t.Errorf("comment = %q", comment)
	}
}

func TestEntryFlowCancelAtEitherStage(t *testing.T) {
	f := newEntryFlow("pushups", false)
	if outcome, _ := f.handleKey(tea.KeyMsg{Type: tea.KeyEsc}); outcome != entryCancelled {
		t.Errorf("value-stage esc outcome = %v, want cancelled", outcome)
	}

	f = newEntryFlow("pushups", false)
	f.handleKey(runesKey("5"))
	f.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if outcome, _ := f.handleKey(tea.KeyMsg{Type: tea.KeyEsc}); outcome != entryCancelled {
		t.Errorf("comment-stage esc outcome = %v, want cancelled", outcome)
	}
}
