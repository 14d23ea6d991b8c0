package tracker

import (
	"fmt"
	"time"

	"github.com/julianstephens/timepie/internal/clock"
	"github.com/julianstephens/timepie/internal/models"
)

// NewDayResult is the outcome of a StartNewDay call.
type NewDayResult struct {
	// ConfirmationRequired is set when today already has recorded activities
	// and the call was not confirmed. Nothing was mutated; the caller should
	// ask the user and retry with confirmed=true.
	ConfirmationRequired bool
}

// SelectDay moves the view to another day. It never touches the running
// session, which keeps accruing against the day it was started on.
func (t *Tracker) SelectDay(date string) error {
	if t.dayIndex(date) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownDay, date)
	}
	t.selected = date
	return nil
}

// StartNewDay stops any running session and points the selection at a fresh
// record for today. When today already has activities this is a two-phase
// operation: the first unconfirmed call only raises the confirmation request.
// The day record itself is created idempotently, so calling this twice on the
// same date never yields two records.
func (t *Tracker) StartNewDay(now time.Time, confirmed bool) (NewDayResult, error) {
	today := clock.DateOf(now)

	if i := t.dayIndex(today); i >= 0 && len(t.days[i].Activities) > 0 && !confirmed {
		return NewDayResult{ConfirmationRequired: true}, nil
	}

	if t.current != "" {
		if err := t.Stop(now); err != nil {
			return NewDayResult{}, err
		}
	}

	t.ensureDay(today)
	t.selected = today
	return NewDayResult{}, t.saveDays()
}

// upsert is the merge-by-identity write path shared by the session machinery:
// a record matching (name, startTime) has its duration replaced with the
// latest accrued value, anything else appends.
func (t *Tracker) upsert(date string, act models.Activity) {
	i := t.ensureDay(date)
	for j := range t.days[i].Activities {
		if t.days[i].Activities[j].Same(act) {
			t.days[i].Activities[j].Duration = act.Duration
			return
		}
	}
	t.days[i].Activities = append(t.days[i].Activities, act)
}
