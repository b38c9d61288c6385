package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler processes one key for the model. The bool result reports
// whether the key was consumed.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

// KeyBinding ties a key to a handler within one or more view modes. An
// empty ViewModes list applies everywhere.
type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	ViewModes   []viewMode
	Priority    int
}

func (b KeyBinding) AppliesToView(mode viewMode) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

// HandlerRegistry dispatches key events to bindings by priority.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToView(m.mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// HelpForView builds the footer line for a view mode.
func (r *HandlerRegistry) HelpForView(mode viewMode) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if !b.AppliesToView(mode) || b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, b.Key+": "+b.Description)
	}
	return strings.Join(parts, " | ")
}
