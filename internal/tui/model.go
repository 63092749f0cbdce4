package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"attnview/internal/logging"
	"attnview/internal/playback"
	"attnview/internal/review"
	"attnview/internal/task"
)

// intervalStep is the change applied by the +/- keys.
const intervalStep = playback.IntervalStep

type tickMsg struct {
	gen uint64
}

// Model is the bubbletea model for one review session.
type Model struct {
	ctrl   *review.Controller
	logger *slog.Logger
	status *statusSink

	// gen invalidates ticks scheduled before the last start, stop or task change.
	gen uint64

	width  int
	height int
}

// New builds a model over a fresh controller. Warnings logged while the
// model runs are mirrored into its status line.
func New(library *review.Library, initial playback.State, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.NewNop()
	}
	sink := newStatusSink()
	logger = logging.TeeLogger(logger, sink)
	return &Model{
		ctrl:   review.NewController(library, initial, logger),
		logger: logging.NewComponentLogger(logger, "tui"),
		status: sink,
	}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(library *review.Library, initial playback.State, logger *slog.Logger) error {
	_, err := tea.NewProgram(New(library, initial, logger), tea.WithAltScreen()).Run()
	return err
}

// Frame exposes the current render output.
func (m *Model) Frame() review.Frame {
	return m.ctrl.Frame()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if msg.gen != m.gen || !m.ctrl.State().Playing {
			return m, nil
		}
		m.ctrl.Apply(playback.Tick{})
		return m, m.schedule()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.gen++
		m.ctrl.Apply(playback.Stop{})
		return m, tea.Quit
	case "1", "2", "3":
		all := task.All()
		idx := int(msg.String()[0] - '1')
		if idx >= len(all) {
			return m, nil
		}
		m.gen++
		m.status.clear()
		m.ctrl.Apply(playback.SelectTask{Task: all[idx]})
		return m, nil
	case "left", "h":
		m.step(-1)
		return m, nil
	case "right", "l":
		m.step(1)
		return m, nil
	case " ":
		if m.ctrl.State().Playing {
			return m.stop()
		}
		return m.start()
	case "s":
		return m.start()
	case "x":
		return m.stop()
	case "+", "=":
		m.ctrl.Apply(playback.AdjustInterval{Delta: intervalStep})
		return m, nil
	case "-", "_":
		m.ctrl.Apply(playback.AdjustInterval{Delta: -intervalStep})
		return m, nil
	case "r":
		m.status.clear()
		m.ctrl.Reload()
		if !m.ctrl.State().Playing {
			m.gen++
		}
		return m, nil
	}
	return m, nil
}

// step moves to a neighbouring id. The reducer ignores it while playing.
func (m *Model) step(delta int) {
	ids := m.ctrl.IDs()
	next := m.ctrl.State().Index + delta
	if next < 0 || next >= len(ids) {
		return
	}
	m.ctrl.Apply(playback.SelectID{ID: ids[next]})
}

func (m *Model) start() (tea.Model, tea.Cmd) {
	m.gen++
	m.ctrl.Apply(playback.Start{})
	if !m.ctrl.State().Playing {
		return m, nil
	}
	m.logger.Debug("playback started",
		logging.Task(m.ctrl.State().Task.String()),
		logging.Float64("interval", m.ctrl.State().Interval),
	)
	return m, m.schedule()
}

func (m *Model) stop() (tea.Model, tea.Cmd) {
	m.gen++
	m.ctrl.Apply(playback.Stop{})
	return m, nil
}

// schedule arms the next tick, reading the interval at scheduling time so
// changes made during playback apply from the next step.
func (m *Model) schedule() tea.Cmd {
	if !m.ctrl.State().Playing {
		return nil
	}
	gen := m.gen
	return tea.Tick(m.ctrl.State().Delay(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
