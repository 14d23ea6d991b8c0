package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timepie/internal/export"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// Accrue the running session, then schedule the next tick. The tick
		// keeps running in every state so time is never lost inside a form.
		if err := m.tracker.Tick(time.Time(msg)); err != nil {
			m.errMsg = err.Error()
		}
		return m, tickCmd()
	}

	switch m.state {
	case StateAddActivity, StateRenameActivity:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateConfirmNewDay:
		return m.updateConfirmNewDay(msg)
	}

	return m.updateTabs(msg)
}

func (m Model) updateTabs(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.errMsg = ""
	m.infoMsg = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount

	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.tracker.Catalog())-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.PrevDay):
		m.selectDayOffset(-1)

	case key.Matches(keyMsg, m.keys.NextDay):
		m.selectDayOffset(1)

	case key.Matches(keyMsg, m.keys.Enter):
		catalog := m.tracker.Catalog()
		if m.cursor < len(catalog) {
			if err := m.tracker.Start(catalog[m.cursor], time.Now()); err != nil {
				m.errMsg = err.Error()
			}
		}

	case key.Matches(keyMsg, m.keys.Stop):
		if err := m.tracker.Stop(time.Now()); err != nil {
			m.errMsg = err.Error()
		}

	case key.Matches(keyMsg, m.keys.Export):
		path, err := export.SaveDay(".", m.tracker.Selected())
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.infoMsg = "Exported to " + path
		}

	case key.Matches(keyMsg, m.keys.NewDay):
		result, err := m.tracker.StartNewDay(time.Now(), false)
		if err != nil {
			m.errMsg = err.Error()
		} else if result.ConfirmationRequired {
			m.previousState = m.state
			m.state = StateConfirmNewDay
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.activityForm = &ActivityFormModel{}
		m.form = newActivityForm(m.activityForm, "New activity")
		m.previousState = m.state
		m.state = StateAddActivity
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Rename):
		catalog := m.tracker.Catalog()
		if m.cursor < len(catalog) {
			m.renameTarget = catalog[m.cursor]
			m.activityForm = &ActivityFormModel{Name: m.renameTarget}
			m.form = newActivityForm(m.activityForm, "Rename "+m.renameTarget)
			m.previousState = m.state
			m.state = StateRenameActivity
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		catalog := m.tracker.Catalog()
		if m.cursor < len(catalog) {
			name := catalog[m.cursor]
			result, err := m.tracker.DeleteActivity(name, false)
			if err != nil {
				m.errMsg = err.Error()
			} else if result.ConfirmationRequired {
				m.deleteTarget = name
				m.previousState = m.state
				m.state = StateConfirmDelete
			} else {
				m.clampCursor()
			}
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		var err error
		if m.state == StateAddActivity {
			err = m.tracker.AddActivity(m.activityForm.Name)
		} else {
			err = m.tracker.RenameActivity(m.renameTarget, m.activityForm.Name)
		}
		if err != nil {
			m.errMsg = err.Error()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			if _, err := m.tracker.DeleteActivity(m.deleteTarget, true); err != nil {
				m.errMsg = err.Error()
			}
			m.deleteTarget = ""
			m.clampCursor()
			m.state = m.previousState
		case "n", "N", "esc", "q":
			m.deleteTarget = ""
			m.state = m.previousState
		}
	}
	return m, nil
}

func (m Model) updateConfirmNewDay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			if _, err := m.tracker.StartNewDay(time.Now(), true); err != nil {
				m.errMsg = err.Error()
			}
			m.state = m.previousState
		case "n", "N", "esc", "q":
			m.state = m.previousState
		}
	}
	return m, nil
}

// selectDayOffset moves the viewed day forward or back in ledger order.
func (m *Model) selectDayOffset(offset int) {
	days := m.tracker.Days()
	selected := m.tracker.SelectedDate()
	for i := range days {
		if days[i].Date == selected {
			target := i + offset
			if target >= 0 && target < len(days) {
				if err := m.tracker.SelectDay(days[target].Date); err != nil {
					m.errMsg = err.Error()
				}
			}
			return
		}
	}
}

func (m *Model) clampCursor() {
	if n := len(m.tracker.Catalog()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}
