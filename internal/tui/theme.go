package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used across the UI.
type Theme struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Label       lipgloss.Style
	Dim         lipgloss.Style
	ErrorText   lipgloss.Style
	Footer      lipgloss.Style
	PromptFrame lipgloss.Style
	Spinner     lipgloss.Style
}

// CurrentTheme is the active theme.
var CurrentTheme = Theme{
	Title:       lipgloss.NewStyle().Bold(true),
	Header:      lipgloss.NewStyle().Bold(true),
	Row:         lipgloss.NewStyle(),
	SelectedRow: lipgloss.NewStyle().Reverse(true),
	Label:       lipgloss.NewStyle().Bold(true),
	Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	ErrorText:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	PromptFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
}
