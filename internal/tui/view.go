package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/timepie/internal/clock"
	"github.com/julianstephens/timepie/internal/report"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateTrack:
		content = m.viewTrack()
	case StateTimeline:
		content = m.viewTimeline()
	case StateAddActivity, StateRenameActivity:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateConfirmNewDay:
		content = m.viewConfirmNewDay()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Track", "Timeline"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHeader() string {
	date := headerStyle.Render(m.tracker.SelectedDate())

	var session string
	if m.tracker.Running() {
		elapsed := clock.ElapsedMinutes(m.tracker.SessionStart(), time.Now())
		session = runningStyle.Render(fmt.Sprintf("● %s  %s",
			m.tracker.CurrentActivity(), clock.FormatDuration(elapsed)))
	} else {
		session = idleStyle.Render("○ not tracking")
	}

	return date + "   " + session
}

func (m Model) viewTrack() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	catalog := m.tracker.Catalog()
	if len(catalog) == 0 {
		b.WriteString(dimStyle.Render("No activities yet. Press 'a' to add one."))
	}

	day := m.tracker.Selected()
	totals := make(map[string]float64)
	for _, act := range day.Activities {
		totals[act.Name] += act.Duration
	}

	for i, name := range catalog {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(report.ColorFor(catalog, name))).
			Render("●")

		label := name
		if name == m.tracker.CurrentActivity() {
			label = runningStyle.Render(name)
		}

		line := fmt.Sprintf("%s%s %-30s", cursor, swatch, label)
		if total, ok := totals[name]; ok && total > 0 {
			line += dimStyle.Render("  " + clock.FormatDuration(total))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if slices := report.Slices(day.Activities); len(slices) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("Total %s",
			clock.FormatDuration(report.TotalMinutes(day.Activities)))))
		b.WriteString("\n")
		for _, slice := range slices {
			swatch := lipgloss.NewStyle().
				Foreground(lipgloss.Color(report.ColorFor(catalog, slice.Name))).
				Render("■")
			b.WriteString(fmt.Sprintf("%s %-30s %5.1f%%\n", swatch, slice.Name, slice.Percentage))
		}
	}

	b.WriteString(m.viewMessages())

	return docStyle.Render(b.String())
}

func (m Model) viewTimeline() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	day := m.tracker.Selected()
	buckets := report.Timeline(day.Activities)
	if len(buckets) == 0 {
		b.WriteString(dimStyle.Render("Nothing recorded yet."))
		return docStyle.Render(b.String())
	}

	catalog := m.tracker.Catalog()
	for _, bucket := range buckets {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%6s", report.FormatHour(bucket.Hour))))
		b.WriteString("\n")
		for _, act := range bucket.Entries {
			swatch := lipgloss.NewStyle().
				Foreground(lipgloss.Color(report.ColorFor(catalog, act.Name))).
				Render("│")
			b.WriteString(fmt.Sprintf("       %s %s  %s, started %s\n",
				swatch, act.Name,
				clock.FormatDuration(act.Duration),
				clock.FormatClock(act.StartTime)))
		}
	}

	b.WriteString(m.viewMessages())

	return docStyle.Render(b.String())
}

func (m Model) viewMessages() string {
	switch {
	case m.errMsg != "":
		return "\n" + errorStyle.Render(m.errMsg)
	case m.infoMsg != "":
		return "\n" + dimStyle.Render(m.infoMsg)
	}
	return ""
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %s and all of its recorded time?", m.deleteTarget)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmNewDay() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			"Today already has recorded activities.",
			"Start a new day anyway? Recorded time is kept.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
