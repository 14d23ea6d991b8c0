package tracker

import (
	"fmt"
	"time"

	"github.com/julianstephens/timepie/internal/clock"
	"github.com/julianstephens/timepie/internal/models"
)

// Start begins tracking an activity, closing out any session already running.
// Clicking the running activity again toggles the tracker to idle instead of
// restarting it. Starting always pulls the selection back to today: a session
// accrues against the calendar day matching the wall clock, never a day the
// user happens to be browsing.
func (t *Tracker) Start(name string, now time.Time) error {
	if name != "" && !t.hasCatalogEntry(name) {
		return fmt.Errorf("%w: %s", ErrUnknownActivity, name)
	}

	toggleOff := false
	if t.current != "" {
		toggleOff = name == t.current
		if err := t.closeOut(now); err != nil {
			return err
		}
	}

	today := clock.DateOf(now)
	if t.selected != today {
		t.ensureDay(today)
		t.selected = today
		if err := t.saveDays(); err != nil {
			return err
		}
	}

	if name == "" || toggleOff {
		t.current = ""
		return t.saveSession()
	}

	t.current = name
	t.sessionStart = now
	return t.saveSession()
}

// Stop ends the running session, crediting whatever duration had accrued.
// Stopping while idle is a no-op.
func (t *Tracker) Stop(now time.Time) error {
	return t.Start("", now)
}

// Tick reconciles the running session's accrued duration into its day record
// without ending the session. Idle ticks do nothing.
func (t *Tracker) Tick(now time.Time) error {
	if t.current == "" {
		return nil
	}
	return t.closeOut(now)
}

// closeOut writes the running session's elapsed duration through to the day
// the session started on. The write merges by (name, startTime) identity, so
// however many times the tick and an explicit stop fire for one session,
// exactly one record exists and its duration equals the latest elapsed time.
//
// A session that crosses local midnight is split: the slice up to midnight is
// credited to the day it started on, then the session re-anchors at midnight
// on the next day and keeps accruing there. Nothing is dropped.
func (t *Tracker) closeOut(now time.Time) error {
	if t.current == "" {
		return nil
	}

	for !clock.SameDay(t.sessionStart, now) {
		dayEnd := clock.StartOfDay(t.sessionStart).AddDate(0, 0, 1)
		t.upsert(clock.DateOf(t.sessionStart), models.Activity{
			Name:               t.current,
			Duration:           clock.ElapsedMinutes(t.sessionStart, dayEnd),
			StartTime:          t.sessionStart,
			FormattedStartTime: clock.FormatClock(t.sessionStart),
		})
		t.sessionStart = dayEnd
		if err := t.saveSession(); err != nil {
			return err
		}
	}

	t.upsert(clock.DateOf(t.sessionStart), models.Activity{
		Name:               t.current,
		Duration:           clock.ElapsedMinutes(t.sessionStart, now),
		StartTime:          t.sessionStart,
		FormattedStartTime: clock.FormatClock(t.sessionStart),
	})
	return t.saveDays()
}

func (t *Tracker) hasCatalogEntry(name string) bool {
	for _, entry := range t.catalog {
		if entry == name {
			return true
		}
	}
	return false
}
