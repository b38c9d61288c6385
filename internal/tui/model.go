package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strickvl/beemind/internal/api"
	"github.com/strickvl/beemind/internal/config"
	"github.com/strickvl/beemind/internal/models"
)

// viewMode is the high-level view the model is showing.
type viewMode int

const (
	viewList viewMode = iota
	viewDetail
)

// Messages produced by the data-access commands.
type (
	goalsLoadedMsg struct {
		goals    []models.Goal
		archived bool
	}
	goalDetailMsg struct {
		goal        models.Goal
		resetScroll bool
	}
	datapointCreatedMsg struct {
		point      models.Datapoint
		slug       string
		fromDetail bool
	}
	reportWrittenMsg struct {
		path string
	}
	apiErrMsg struct {
		err error
	}
)

// Model is the root bubbletea model: it owns the active view, the loaded
// goal collection, the selection and scroll state, and the modal datapoint
// entry flow. Exactly one of list or detail view is active at a time.
type Model struct {
	svc      api.Service
	username string

	mode     viewMode
	goals    []models.Goal
	selected int
	offset   int

	detail       *models.Goal
	detailOffset int

	showArchived bool

	entry   *entryFlow
	overlay string

	loading  bool
	spinner  spinner.Model
	registry *HandlerRegistry

	width  int
	height int
}

// NewModel builds the root model. The initial goal fetch is fired from
// Init.
func NewModel(svc api.Service, username string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = CurrentTheme.Spinner

	m := Model{
		svc:      svc,
		username: username,
		mode:     viewList,
		spinner:  sp,
		loading:  true,
	}
	m.registry = newKeyRegistry()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchGoalsCmd(), m.spinner.Tick)
}

// listViewportHeight is the number of goal rows that fit on screen.
func (m Model) listViewportHeight() int {
	h := m.height - config.TableHeaderRows - config.FooterReserve
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) fetchGoalsCmd() tea.Cmd {
	svc, archived := m.svc, m.showArchived
	return func() tea.Msg {
		var (
			goals []models.Goal
			err   error
		)
		if archived {
			goals, err = svc.GetArchivedGoals(context.Background())
		} else {
			goals, err = svc.GetAllGoals(context.Background())
		}
		if err != nil {
			return apiErrMsg{err: err}
		}
		return goalsLoadedMsg{goals: goals, archived: archived}
	}
}

func (m Model) fetchDetailCmd(slug string, resetScroll bool) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		goal, err := svc.GetGoal(context.Background(), slug)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return goalDetailMsg{goal: goal, resetScroll: resetScroll}
	}
}

func (m Model) createDatapointCmd(slug string, value float64, comment string, fromDetail bool) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		point, err := svc.CreateDatapoint(context.Background(), slug, value, comment)
		if err != nil {
			return apiErrMsg{err: err}
		}
		return datapointCreatedMsg{point: point, slug: slug, fromDetail: fromDetail}
	}
}
