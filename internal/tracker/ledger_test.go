package tracker

import (
	"errors"
	"testing"
	"time"
)

func TestSelectDayRejectsUnknownDate(t *testing.T) {
	now := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, now)

	if err := tr.SelectDay("1999-01-01"); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay, got %v", err)
	}
}

func TestSelectDayDoesNotDisturbSession(t *testing.T) {
	store := newMemStore()
	store.entries[keyDays] = `[
		{"date":"2025-05-31","activities":[]},
		{"date":"2025-06-01","activities":[]}
	]`
	store.entries[keyCatalog] = `["Coding"]`

	tr := New(store)
	t1 := localTime(2025, 6, 1, 9, 0, 0)
	if err := tr.Load(t1); err != nil {
		t.Fatalf("failed to load tracker: %v", err)
	}

	if err := tr.Start("Coding", t1); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := tr.SelectDay("2025-05-31"); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	if !tr.Running() {
		t.Fatal("browsing another day must not stop the session")
	}

	// Ticks keep crediting the day the session started on, not the browsed one.
	if err := tr.Tick(t1.Add(3 * time.Minute)); err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	browsed := tr.Selected()
	if len(browsed.Activities) != 0 {
		t.Errorf("browsed day gained records: %+v", browsed.Activities)
	}
	sessionDay, _ := tr.Day("2025-06-01")
	if len(sessionDay.Activities) != 1 || sessionDay.Activities[0].Duration != 3 {
		t.Errorf("session day not credited: %+v", sessionDay.Activities)
	}
}

func TestStartNewDayOnEmptyTodayIsImmediate(t *testing.T) {
	now := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, now)

	res, err := tr.StartNewDay(now, false)
	if err != nil {
		t.Fatalf("start new day failed: %v", err)
	}
	if res.ConfirmationRequired {
		t.Error("empty today must not require confirmation")
	}
	if tr.SelectedDate() != "2025-06-01" {
		t.Errorf("expected today selected, got %q", tr.SelectedDate())
	}
}

func TestStartNewDayOverNonEmptyTodayIsTwoPhase(t *testing.T) {
	t1 := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, t1, "Coding")

	if err := tr.Start("Coding", t1); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := tr.Stop(t1.Add(5 * time.Minute)); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	now := t1.Add(10 * time.Minute)
	res, err := tr.StartNewDay(now, false)
	if err != nil {
		t.Fatalf("start new day failed: %v", err)
	}
	if !res.ConfirmationRequired {
		t.Fatal("expected confirmation request over a non-empty today")
	}
	// The unconfirmed call is a pure no-op.
	if len(tr.Selected().Activities) != 1 {
		t.Error("unconfirmed call must not mutate the ledger")
	}

	res, err = tr.StartNewDay(now, true)
	if err != nil {
		t.Fatalf("confirmed start new day failed: %v", err)
	}
	if res.ConfirmationRequired {
		t.Error("confirmed call should proceed")
	}
	// The existing record is kept: this is a selection reset, not data loss.
	if len(tr.Selected().Activities) != 1 {
		t.Errorf("confirmed new day dropped records: %+v", tr.Selected().Activities)
	}
}

func TestStartNewDayStopsRunningSession(t *testing.T) {
	t1 := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, t1, "Coding")

	if err := tr.Start("Coding", t1); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	now := t1.Add(2 * time.Minute)
	if _, err := tr.StartNewDay(now, true); err != nil {
		t.Fatalf("start new day failed: %v", err)
	}

	if tr.Running() {
		t.Error("start new day must stop the running session")
	}
	day := tr.Selected()
	if len(day.Activities) != 1 || day.Activities[0].Duration != 2 {
		t.Errorf("session close-out missing: %+v", day.Activities)
	}
}

func TestStartNewDayNeverDuplicatesDate(t *testing.T) {
	now := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, now)

	if _, err := tr.StartNewDay(now, true); err != nil {
		t.Fatalf("start new day failed: %v", err)
	}
	if _, err := tr.StartNewDay(now.Add(time.Hour), true); err != nil {
		t.Fatalf("second start new day failed: %v", err)
	}

	seen := make(map[string]int)
	for _, day := range tr.Days() {
		seen[day.Date]++
	}
	if seen["2025-06-01"] != 1 {
		t.Errorf("expected exactly one record for today, got %d", seen["2025-06-01"])
	}
}
