package tracker

import (
	"errors"
	"testing"
	"time"
)

func TestStartThenSwitchRecordsFirstSession(t *testing.T) {
	t1 := localTime(2025, 6, 1, 9, 0, 0)
	t2 := t1.Add(25 * time.Minute)
	tr, _ := newTestTracker(t, t1, "Coding", "Meeting")

	if err := tr.Start("Coding", t1); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := tr.Start("Meeting", t2); err != nil {
		t.Fatalf("switch failed: %v", err)
	}

	if tr.CurrentActivity() != "Meeting" {
		t.Errorf("expected Meeting running, got %q", tr.CurrentActivity())
	}
	if !tr.SessionStart().Equal(t2) {
		t.Errorf("expected session start %v, got %v", t2, tr.SessionStart())
	}

	day := tr.Selected()
	if len(day.Activities) != 1 {
		t.Fatalf("expected one closed-out record, got %d", len(day.Activities))
	}
	rec := day.Activities[0]
	if rec.Name != "Coding" || rec.Duration != 25 || !rec.StartTime.Equal(t1) {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestReclickTogglesToIdle(t *testing.T) {
	t1 := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, t1, "Coding")

	if err := tr.Start("Coding", t1); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	// A few ticks land before the user clicks the badge again.
	for i := 1; i <= 3; i++ {
		if err := tr.Tick(t1.Add(time.Duration(i) * time.Second)); err != nil {
			t.Fatalf("tick failed: %v", err)
		}
	}
	t2 := t1.Add(10 * time.Minute)
	if err := tr.Start("Coding", t2); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if tr.Running() {
		t.Error("expected tracker to be idle after re-click")
	}
	day := tr.Selected()
	if len(day.Activities) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(day.Activities))
	}
	if day.Activities[0].Duration != 10 {
		t.Errorf("expected 10 accrued minutes, got %v", day.Activities[0].Duration)
	}
}

func TestTickMergesByIdentity(t *testing.T) {
	t1 := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, t1, "Coding")

	if err := tr.Start("Coding", t1); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	var latest float64
	for i := 1; i <= 120; i++ {
		now := t1.Add(time.Duration(i) * time.Second)
		if err := tr.Tick(now); err != nil {
			t.Fatalf("tick failed: %v", err)
		}
		latest = float64(i) / 60
	}

	day := tr.Selected()
	if len(day.Activities) != 1 {
		t.Fatalf("ticks created %d records, want 1", len(day.Activities))
	}
	// Ticks overwrite: the duration is the latest elapsed, not a sum of ticks.
	if day.Activities[0].Duration != latest {
		t.Errorf("expected duration %v, got %v", latest, day.Activities[0].Duration)
	}
}

func TestTickWhileIdleIsNoop(t *testing.T) {
	now := localTime(2025, 6, 1, 9, 0, 0)
	tr, store := newTestTracker(t, now, "Coding")

	before := store.sets
	if err := tr.Tick(now.Add(time.Second)); err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if store.sets != before {
		t.Error("idle tick should not write to the store")
	}
}

func TestStopCreditsAccruedTime(t *testing.T) {
	t1 := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, t1, "Coding")

	if err := tr.Start("Coding", t1); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := tr.Stop(t1.Add(90 * time.Second)); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	if tr.Running() {
		t.Error("expected idle after stop")
	}
	day := tr.Selected()
	if len(day.Activities) != 1 || day.Activities[0].Duration != 1.5 {
		t.Errorf("unexpected ledger after stop: %+v", day.Activities)
	}
}

func TestStopWhileIdleIsNoop(t *testing.T) {
	now := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, now, "Coding")

	if err := tr.Stop(now); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if len(tr.Selected().Activities) != 0 {
		t.Error("idle stop should not create records")
	}
}

func TestStartUnknownActivityRejected(t *testing.T) {
	now := localTime(2025, 6, 1, 9, 0, 0)
	tr, _ := newTestTracker(t, now, "Coding")

	err := tr.Start("Yoga", now)
	if !errors.Is(err, ErrUnknownActivity) {
		t.Errorf("expected ErrUnknownActivity, got %v", err)
	}
}

func TestStartPullsSelectionBackToToday(t *testing.T) {
	store := newMemStore()
	store.entries[keyDays] = `[
		{"date":"2025-05-31","activities":[]},
		{"date":"2025-06-01","activities":[]}
	]`
	store.entries[keyCatalog] = `["Coding"]`

	tr := New(store)
	now := localTime(2025, 6, 2, 9, 0, 0)
	if err := tr.Load(now); err != nil {
		t.Fatalf("failed to load tracker: %v", err)
	}
	if tr.SelectedDate() != "2025-06-01" {
		t.Fatalf("precondition: expected yesterday selected, got %q", tr.SelectedDate())
	}

	if err := tr.Start("Coding", now); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if tr.SelectedDate() != "2025-06-02" {
		t.Errorf("expected selection forced to today, got %q", tr.SelectedDate())
	}
	if _, err := tr.Day("2025-06-02"); err != nil {
		t.Error("expected today's record to be created")
	}
}

func TestSessionSplitsAtMidnight(t *testing.T) {
	t1 := localTime(2025, 6, 1, 23, 59, 0)
	tr, _ := newTestTracker(t, t1, "Coding")

	if err := tr.Start("Coding", t1); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	now := localTime(2025, 6, 2, 0, 1, 0)
	if err := tr.Tick(now); err != nil {
		t.Fatalf("tick failed: %v", err)
	}

	// One minute lands on the start day, one on the new day; nothing dropped.
	firstDay, err := tr.Day("2025-06-01")
	if err != nil {
		t.Fatalf("missing start day: %v", err)
	}
	if len(firstDay.Activities) != 1 || firstDay.Activities[0].Duration != 1 {
		t.Errorf("unexpected start-day ledger: %+v", firstDay.Activities)
	}

	secondDay, err := tr.Day("2025-06-02")
	if err != nil {
		t.Fatalf("missing new day: %v", err)
	}
	if len(secondDay.Activities) != 1 || secondDay.Activities[0].Duration != 1 {
		t.Errorf("unexpected new-day ledger: %+v", secondDay.Activities)
	}

	midnight := localTime(2025, 6, 2, 0, 0, 0)
	if !tr.SessionStart().Equal(midnight) {
		t.Errorf("expected session re-anchored at midnight, got %v", tr.SessionStart())
	}
	if !secondDay.Activities[0].StartTime.Equal(midnight) {
		t.Errorf("expected new-day record to start at midnight, got %v", secondDay.Activities[0].StartTime)
	}
	if !tr.Running() {
		t.Error("expected session to keep running across midnight")
	}

	// Later ticks keep accruing on the new day only.
	if err := tr.Tick(localTime(2025, 6, 2, 0, 5, 0)); err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	firstDay, _ = tr.Day("2025-06-01")
	secondDay, _ = tr.Day("2025-06-02")
	if firstDay.Activities[0].Duration != 1 {
		t.Errorf("start day changed after re-anchor: %v", firstDay.Activities[0].Duration)
	}
	if secondDay.Activities[0].Duration != 5 {
		t.Errorf("expected 5 minutes on the new day, got %v", secondDay.Activities[0].Duration)
	}
}
