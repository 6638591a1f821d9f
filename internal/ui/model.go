package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgreer/quad/internal/calendar"
	"github.com/mgreer/quad/internal/config"
	"github.com/mgreer/quad/internal/feed"
)

type Model struct {
	cfg     config.Runtime
	source  feed.Source
	watcher *feed.Watcher

	mode     calendar.ViewMode
	selected time.Time
	filter   calendar.FilterConfig
	snapshot feed.Snapshot

	width        int
	height       int
	helpVisible  bool
	message      string
	messageTimer *time.Timer

	styles Styles
}

func NewModel(cfg config.Runtime, source feed.Source) *Model {
	return &Model{
		cfg:      cfg,
		source:   source,
		mode:     calendar.ModeFromName(cfg.StartupView),
		selected: time.Now(),
		filter:   calendar.DefaultFilterConfig(),
		styles:   DefaultStyles(),
	}
}

// WatchFiles starts watching the source's files, calling notify on each
// change. The caller routes notify into the running program, typically
// by sending a FileChangedMsg.
func (m *Model) WatchFiles(notify func()) error {
	watcher, err := feed.NewWatcher(func(string) { notify() })
	if err != nil {
		return err
	}
	m.watcher = watcher
	return watcher.Watch(m.source.Paths()...)
}

// inputs assembles the engine inputs for the current snapshot and
// filter state.
func (m *Model) inputs() calendar.Inputs {
	return calendar.Inputs{
		Events:   m.snapshot.Events,
		Tasks:    m.snapshot.Tasks,
		Sections: m.snapshot.Sections,
		Filter:   m.filter,
		Term:     m.cfg.Term,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.loadCmd(),
	}
	if m.cfg.AutoRefresh {
		cmds = append(cmds, m.tickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case snapshotMsg:
		if msg.err != nil {
			m.showMessage(fmt.Sprintf("Load error: %v", msg.err))
			return m, nil
		}
		m.snapshot = msg.snapshot
		return m, nil

	case tickMsg:
		if m.cfg.AutoRefresh {
			return m, tea.Batch(m.loadCmd(), m.tickCmd())
		}
		return m, nil

	case FileChangedMsg:
		return m, m.loadCmd()

	case messageTimeoutMsg:
		m.message = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.helpVisible {
		return m.viewHelp()
	}

	switch m.mode {
	case calendar.ModeWeek:
		return m.viewWeek()
	case calendar.ModeDay:
		return m.viewDay()
	case calendar.ModeSchedule:
		return m.viewSchedule()
	default:
		return m.viewMonth()
	}
}

func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpVisible {
		m.helpVisible = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.helpVisible = true

	case "1":
		m.mode = calendar.ModeMonth
	case "2":
		m.mode = calendar.ModeWeek
	case "3":
		m.mode = calendar.ModeDay
	case "4":
		m.mode = calendar.ModeSchedule

	case "l", "right":
		m.selected = m.selected.AddDate(0, 0, 1)
	case "h", "left":
		m.selected = m.selected.AddDate(0, 0, -1)
	case "j", "down":
		m.selected = m.selected.AddDate(0, 0, 7)
	case "k", "up":
		m.selected = m.selected.AddDate(0, 0, -7)
	case ">":
		m.selected = m.selected.AddDate(0, 1, 0)
	case "<":
		m.selected = m.selected.AddDate(0, -1, 0)
	case "t":
		m.selected = time.Now()

	case "f":
		m.filter.Type = m.filter.Type.Next()
		m.showMessage("Filter: " + string(m.filter.Type))

	case "E":
		m.filter.Events = !m.filter.Events
		m.showToggle("Events", m.filter.Events)
	case "T":
		m.filter.Tasks = !m.filter.Tasks
		m.showToggle("Tasks", m.filter.Tasks)
	case "P":
		m.filter.Personal = !m.filter.Personal
		m.showToggle("Personal", m.filter.Personal)
	case "O":
		m.filter.Org = !m.filter.Org
		m.showToggle("Org", m.filter.Org)
	case "C":
		m.filter.Campus = !m.filter.Campus
		m.showToggle("Campus", m.filter.Campus)
	case "S":
		m.filter.Social = !m.filter.Social
		m.showToggle("Social", m.filter.Social)

	case "r":
		return m, m.loadCmd()
	}

	return m, nil
}

func (m *Model) loadCmd() tea.Cmd {
	src := m.source
	return func() tea.Msg {
		snap, err := src.Load()
		return snapshotMsg{snapshot: snap, err: err}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.RefreshRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *Model) showMessage(msg string) {
	m.message = msg
	if m.messageTimer != nil {
		m.messageTimer.Stop()
	}
	m.messageTimer = time.AfterFunc(3*time.Second, func() {
		m.message = ""
	})
}

func (m *Model) showToggle(name string, on bool) {
	if on {
		m.showMessage(name + " shown")
	} else {
		m.showMessage(name + " hidden")
	}
}

// Message types
type tickMsg struct{}
type messageTimeoutMsg struct{}
type snapshotMsg struct {
	snapshot feed.Snapshot
	err      error
}

// FileChangedMsg reloads the snapshot; it is sent from outside the
// program when a watched source file changes.
type FileChangedMsg struct{}
