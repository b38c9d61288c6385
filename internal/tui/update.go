package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/strickvl/beemind/internal/config"
	"github.com/strickvl/beemind/internal/logging"
	"github.com/strickvl/beemind/internal/util"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.selected, m.offset = clampSelection(len(m.goals), m.listViewportHeight(), m.selected, m.offset)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case goalsLoadedMsg:
		// A collection fetched before the archived toggle flipped again
		// no longer matches the view; drop it and let the newer fetch land.
		if msg.archived != m.showArchived {
			return m, nil
		}
		m.loading = false
		m.goals = msg.goals
		m.selected, m.offset = clampSelection(len(m.goals), m.listViewportHeight(), m.selected, m.offset)
		return m, nil

	case goalDetailMsg:
		// A detail refresh that was in flight when the user left the
		// detail view must not pull them back in.
		if !msg.resetScroll && m.detail == nil {
			m.loading = false
			return m, nil
		}
		m.loading = false
		goal := msg.goal
		m.detail = &goal
		if msg.resetScroll {
			m.detailOffset = 0
		}
		m.mode = viewDetail
		return m, nil

	case datapointCreatedMsg:
		logging.Info("datapoint created",
			zap.String("slug", msg.slug),
			zap.Float64("value", msg.point.Value))
		m.loading = true
		if msg.fromDetail {
			return m, tea.Batch(m.fetchDetailCmd(msg.slug, false), m.spinner.Tick)
		}
		return m, tea.Batch(m.fetchGoalsCmd(), m.spinner.Tick)

	case reportWrittenMsg:
		m.overlay = fmt.Sprintf("PDF report written to %s", msg.path)
		return m, nil

	case apiErrMsg:
		logging.Error("api call failed", zap.Error(msg.err))
		m.loading = false
		m.overlay = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// A transient overlay absorbs exactly one keypress.
	if m.overlay != "" {
		m.overlay = ""
		return m, nil
	}

	// The modal entry flow owns input exclusively until it resolves.
	if m.entry != nil {
		outcome, comment := m.entry.handleKey(msg)
		switch outcome {
		case entryCancelled:
			m.entry = nil
			return m, nil
		case entryComplete:
			flow := m.entry
			m.entry = nil
			m.loading = true
			return m, tea.Batch(
				m.createDatapointCmd(flow.slug, flow.value, comment, flow.fromDetail),
				m.spinner.Tick,
			)
		}
		return m, nil
	}

	next, cmd, handled := m.registry.Handle(m, msg.String())
	if handled {
		return next, cmd
	}
	return m, nil
}

// newKeyRegistry wires the per-view key bindings.
func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	// List view.
	r.Register(KeyBinding{Key: "up", Handler: handleListNavigate, ViewModes: []viewMode{viewList}})
	r.Register(KeyBinding{Key: "down", Handler: handleListNavigate, ViewModes: []viewMode{viewList}})
	r.Register(KeyBinding{Key: "k", Handler: handleListNavigate, ViewModes: []viewMode{viewList}})
	r.Register(KeyBinding{Key: "j", Handler: handleListNavigate, ViewModes: []viewMode{viewList}})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "Quit", ViewModes: []viewMode{viewList}})
	r.Register(KeyBinding{Key: "r", Handler: handleRefresh, Description: "Refresh", ViewModes: []viewMode{viewList}})
	r.Register(KeyBinding{Key: "i", Handler: handleShowDetail, Description: "Show Details", ViewModes: []viewMode{viewList}})
	r.Register(KeyBinding{Key: "c", Handler: handleCreateDatapoint, Description: "Create Datapoint", ViewModes: []viewMode{viewList, viewDetail}})
	r.Register(KeyBinding{Key: "w", Handler: handleOpenBrowser, Description: "Open in Browser", ViewModes: []viewMode{viewList, viewDetail}})
	r.Register(KeyBinding{Key: "a", Handler: handleToggleArchived, Description: "Archived", ViewModes: []viewMode{viewList}})
	r.Register(KeyBinding{Key: "e", Handler: handleExportReport, Description: "Export PDF", ViewModes: []viewMode{viewList}})

	// Detail view.
	r.Register(KeyBinding{Key: "up", Handler: handleDetailScroll, ViewModes: []viewMode{viewDetail}})
	r.Register(KeyBinding{Key: "down", Handler: handleDetailScroll, ViewModes: []viewMode{viewDetail}})
	r.Register(KeyBinding{Key: "k", Handler: handleDetailScroll, ViewModes: []viewMode{viewDetail}})
	r.Register(KeyBinding{Key: "j", Handler: handleDetailScroll, ViewModes: []viewMode{viewDetail}})
	r.Register(KeyBinding{Key: "b", Handler: handleBackToList, Description: "Back to List", ViewModes: []viewMode{viewDetail}})

	return r
}

func handleListNavigate(m Model, key string) (Model, tea.Cmd, bool) {
	m.selected, m.offset = navigateList(key, len(m.goals), m.listViewportHeight(), m.selected, m.offset)
	return m, nil, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleRefresh(m Model, _ string) (Model, tea.Cmd, bool) {
	m.loading = true
	return m, tea.Batch(m.fetchGoalsCmd(), m.spinner.Tick), true
}

func handleShowDetail(m Model, _ string) (Model, tea.Cmd, bool) {
	if len(m.goals) == 0 {
		return m, nil, true
	}
	m.loading = true
	return m, tea.Batch(m.fetchDetailCmd(m.goals[m.selected].Slug, true), m.spinner.Tick), true
}

func handleCreateDatapoint(m Model, _ string) (Model, tea.Cmd, bool) {
	switch m.mode {
	case viewList:
		if len(m.goals) == 0 {
			return m, nil, true
		}
		m.entry = newEntryFlow(m.goals[m.selected].Slug, false)
	case viewDetail:
		if m.detail == nil {
			return m, nil, true
		}
		m.entry = newEntryFlow(m.detail.Slug, true)
	}
	return m, nil, true
}

func handleOpenBrowser(m Model, _ string) (Model, tea.Cmd, bool) {
	url := fmt.Sprintf("%s/%s", config.BaseWebURL, m.username)
	if m.mode == viewDetail && m.detail != nil {
		url = fmt.Sprintf("%s/%s/%s", config.BaseWebURL, m.username, m.detail.Slug)
	}
	openBrowser(url)
	return m, nil, true
}

func handleToggleArchived(m Model, _ string) (Model, tea.Cmd, bool) {
	m.showArchived = !m.showArchived
	m.selected, m.offset = 0, 0
	m.loading = true
	return m, tea.Batch(m.fetchGoalsCmd(), m.spinner.Tick), true
}

func handleBackToList(m Model, _ string) (Model, tea.Cmd, bool) {
	m.mode = viewList
	m.detail = nil
	m.detailOffset = 0
	return m, nil, true
}

func handleDetailScroll(m Model, key string) (Model, tea.Cmd, bool) {
	if m.detail == nil {
		return m, nil, true
	}
	count := len(detailFields(*m.detail, time.Now()))
	m.detailOffset = scrollDetail(key, count, m.detailOffset)
	return m, nil, true
}

func handleExportReport(m Model, _ string) (Model, tea.Cmd, bool) {
	if len(m.goals) == 0 {
		m.overlay = "No goals to export"
		return m, nil, true
	}
	path, err := writeGoalsReport(m.goals, time.Now(), util.ReportsDir())
	if err != nil {
		m.overlay = fmt.Sprintf("Report export failed: %v", err)
		return m, nil, true
	}
	return m, func() tea.Msg { return reportWrittenMsg{path: path} }, true
}
