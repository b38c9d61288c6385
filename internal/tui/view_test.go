package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/golang/mock/gomock"

	"github.com/strickvl/beemind/internal/api/apimock"
	"github.com/strickvl/beemind/internal/testutil"
)

func TestViewBeforeFirstResize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := NewModel(apimock.NewMockService(ctrl), "alice")
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q before first resize", got)
	}
}

func TestViewListFooter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTestModel(t, apimock.NewMockService(ctrl))
	m = loadGoals(t, m, testutil.Goals(3))

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "↑↓: Navigate") {
		t.Error("missing navigation hint")
	}
	for _, hint := range []string{"q: Quit", "r: Refresh", "i: Show Details", "c: Create Datapoint", "w: Open in Browser"} {
		if !strings.Contains(out, hint) {
			t.Errorf("missing footer hint %q", hint)
		}
	}
	if strings.Contains(out, "b: Back to List") {
		t.Error("detail-view hint shown in list view")
	}
}

func TestViewDetailFooter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTestModel(t, apimock.NewMockService(ctrl))
	m = loadGoals(t, m, testutil.Goals(1))
	next, _ := m.Update(goalDetailMsg{goal: testutil.NewGoal("goal-0").Build(), resetScroll: true})
	m = next.(Model)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "↑↓: Scroll") {
		t.Error("missing scroll hint")
	}
	if !strings.Contains(out, "b: Back to List") {
		t.Error("missing back hint")
	}
	if strings.Contains(out, "r: Refresh") {
		t.Error("list-view hint shown in detail view")
	}
}

func TestViewOverlayTakesOverScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTestModel(t, apimock.NewMockService(ctrl))
	m = loadGoals(t, m, testutil.Goals(3))
	next, _ := m.Update(apiErrMsg{err: errFake})
	m = next.(Model)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "request failed") {
		t.Error("overlay message missing")
	}
	if !strings.Contains(out, "Press any key to continue...") {
		t.Error("overlay hint missing")
	}
	if strings.Contains(out, "goal-0") {
		t.Error("table rendered under overlay")
	}
}

func TestViewEntryFlowTakesOverScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTestModel(t, apimock.NewMockService(ctrl))
	m = loadGoals(t, m, testutil.Goals(1))
	next, _ := m.Update(runesKey("c"))
	m = next.(Model)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Enter value (number):") {
		t.Error("value prompt missing")
	}
}

func TestViewArchivedTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newTestModel(t, apimock.NewMockService(ctrl))
	m.showArchived = true
	next, _ := m.Update(goalsLoadedMsg{goals: testutil.Goals(1), archived: true})
	m = next.(Model)

	if !strings.Contains(ansi.Strip(m.View()), "Beeminder Archived Goals") {
		t.Error("archived title missing")
	}
}

func TestKeyBindingAppliesToView(t *testing.T) {
	everywhere := KeyBinding{Key: "x"}
	if !everywhere.AppliesToView(viewList) || !everywhere.AppliesToView(viewDetail) {
		t.Error("empty ViewModes should apply everywhere")
	}
	listOnly := KeyBinding{Key: "x", ViewModes: []viewMode{viewList}}
	if !listOnly.AppliesToView(viewList) || listOnly.AppliesToView(viewDetail) {
		t.Error("ViewModes not respected")
	}
}

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewHandlerRegistry()
	var order []string
	r.Register(KeyBinding{Key: "x", Priority: 1, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		order = append(order, "low")
		return m, nil, false
	}})
	r.Register(KeyBinding{Key: "x", Priority: 5, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		order = append(order, "high")
		return m, nil, false
	}})

	_, _, handled := r.Handle(Model{}, "x")
	if handled {
		t.Error("unconsumed key reported as handled")
	}
	if len(order) != 2 || order[0] != "high" || order[1] != "low" {
		t.Errorf("dispatch order = %v", order)
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	r := newKeyRegistry()
	m := Model{}
	_, _, handled := r.Handle(m, "z")
	if handled {
		t.Error("unknown key reported as handled")
	}
}
