package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"attnview/internal/playback"
	"attnview/internal/review"
	"attnview/internal/task"
	"attnview/internal/testsupport"
)

func newTestModel(t *testing.T, root string) *Model {
	t.Helper()
	lib := review.NewLibrary(root, nil, nil)
	return New(lib, playback.NewState(task.Describe), nil)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func TestArrowKeysMoveBetweenIDs(t *testing.T) {
	m := newTestModel(t, testsupport.WriteDemoData(t))

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	press(t, m, runes("l"))
	if got := m.Frame().CurrentID; got != "010" {
		t.Fatalf("current = %q, want 010", got)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Frame().CurrentID; got != "010" {
		t.Fatalf("moving past the end changed id to %q", got)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Frame().CurrentID; got != "002" {
		t.Fatalf("current = %q, want 002", got)
	}
}

func TestPlaybackTicksAreGenerationGuarded(t *testing.T) {
	m := newTestModel(t, testsupport.WriteDemoData(t))
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if cmd := press(t, m, runes("s")); cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if f := m.Frame(); !f.Playing || f.Index != 0 {
		t.Fatalf("start should restart from the first id, got %+v", f)
	}
	stale := tickMsg{gen: m.gen - 1}
	press(t, m, stale)
	if m.Frame().Index != 0 {
		t.Fatal("stale tick advanced playback")
	}

	press(t, m, tickMsg{gen: m.gen})
	if m.Frame().Index != 1 {
		t.Fatalf("index = %d, want 1", m.Frame().Index)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Frame().Index != 1 {
		t.Fatal("navigation should be ignored while playing")
	}

	current := m.gen
	press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Frame().Playing {
		t.Fatal("space should stop playback")
	}
	if cmd := press(t, m, tickMsg{gen: current}); cmd != nil {
		t.Fatal("tick after stop should not reschedule")
	}
	if m.Frame().Index != 1 {
		t.Fatal("tick after stop advanced playback")
	}
}

func TestPlaybackStopsAtLastID(t *testing.T) {
	m := newTestModel(t, testsupport.WriteDemoData(t))
	press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	for i := 0; i < 2; i++ {
		if cmd := press(t, m, tickMsg{gen: m.gen}); cmd == nil {
			t.Fatalf("tick %d should reschedule", i)
		}
	}
	if cmd := press(t, m, tickMsg{gen: m.gen}); cmd != nil {
		t.Fatal("final tick should not reschedule")
	}
	f := m.Frame()
	if f.Playing || f.CurrentID != "010" {
		t.Fatalf("expected idle on last id, got playing=%v id=%q", f.Playing, f.CurrentID)
	}
}

func TestIntervalKeys(t *testing.T) {
	m := newTestModel(t, testsupport.WriteDemoData(t))

	press(t, m, runes("+"))
	press(t, m, runes("+"))
	if got := m.Frame().Interval; got != 1.2 {
		t.Fatalf("interval = %v, want 1.2", got)
	}
	for i := 0; i < 20; i++ {
		press(t, m, runes("-"))
	}
	if got := m.Frame().Interval; got != 0 {
		t.Fatalf("interval = %v, want 0", got)
	}
}

func TestTaskKeysSwitchTask(t *testing.T) {
	root := testsupport.WriteDemoData(t)
	m := newTestModel(t, root)
	press(t, m, runes("s"))

	press(t, m, runes("3"))
	f := m.Frame()
	if f.Task != task.Recall || f.Playing || f.Index != 0 {
		t.Fatalf("unexpected frame after switch: %+v", f)
	}
	if !strings.Contains(m.View(), "3 Recall") {
		t.Fatalf("view missing recall tab:\n%s", m.View())
	}
}

func TestMissingTaskFolderShowsErrorAndStatus(t *testing.T) {
	root := testsupport.WriteDemoData(t)
	if err := os.RemoveAll(task.Compare.Dir(root)); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, root)

	press(t, m, runes("2"))
	view := m.View()
	if !strings.Contains(view, "Task folder not found") {
		t.Fatalf("view missing error:\n%s", view)
	}
	if !strings.Contains(view, "task folder unavailable") {
		t.Fatalf("view missing mirrored warning:\n%s", view)
	}

	press(t, m, runes("1"))
	view = m.View()
	if strings.Contains(view, "task folder unavailable") {
		t.Fatalf("status should clear on task switch:\n%s", view)
	}
	if !strings.Contains(view, "a red kite") {
		t.Fatalf("view missing response text:\n%s", view)
	}
}

func TestViewShowsAssetsAndPlaceholder(t *testing.T) {
	m := newTestModel(t, testsupport.WriteDemoData(t))
	press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	press(t, m, runes("l"))
	press(t, m, runes("l"))

	view := m.View()
	for _, want := range []string{"ID 010 (3/3)", "(No response text)", "heatmap.mp4", "Missing: "} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	press(t, m, runes("3"))
	if !strings.Contains(m.View(), review.NoVideoNotice) {
		t.Fatalf("recall view should show no-video notice:\n%s", m.View())
	}
}

func TestQuitStopsPlayback(t *testing.T) {
	m := newTestModel(t, testsupport.WriteDemoData(t))
	press(t, m, runes("s"))
	cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if m.Frame().Playing {
		t.Fatal("quit should stop playback")
	}
}
