package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timepie/internal/tracker"
)

type SessionState int

const (
	StateTrack SessionState = iota
	StateTimeline
	StateAddActivity
	StateRenameActivity
	StateConfirmDelete
	StateConfirmNewDay
)

// tabCount is how many states are reachable by tab cycling.
const tabCount = 2

type ActivityFormModel struct {
	Name string
}

// tickMsg fires once a second while the TUI is open so the running session
// accrues in real time.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	tracker       *tracker.Tracker
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	form          *huh.Form
	activityForm  *ActivityFormModel
	renameTarget  string
	deleteTarget  string
	cursor        int // catalog index the selection bar is on
	errMsg        string
	infoMsg       string
	quitting      bool
	width         int
	height        int
}

func NewModel(tr *tracker.Tracker) Model {
	return Model{
		tracker: tr,
		state:   StateTrack,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Enter, m.keys.Stop, m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateTrack {
		keys = append(keys, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay, m.keys.Enter}
	actions := []key.Binding{m.keys.Stop, m.keys.Export, m.keys.NewDay, m.keys.Add, m.keys.Rename, m.keys.Delete}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}
