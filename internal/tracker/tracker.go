package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/timepie/internal/clock"
	"github.com/julianstephens/timepie/internal/models"
	"github.com/julianstephens/timepie/internal/storage"
)

// Store keys. Each piece of state has its own entry so a mutation only
// rewrites what it touched.
const (
	keyDays    = "days"
	keyCatalog = "possibleActivities"
	keyCurrent = "currentActivity"
	keyStart   = "startTime"
)

// Tracker owns the whole working set: the day ledger, the activity catalog,
// and the running session. All mutations go through its methods, each takes
// the current instant explicitly, and every mutation is written through to
// the injected store before the method returns.
//
// Tracker is single-threaded by design: user intents and the once-per-second
// tick are expected to arrive on one goroutine (the bubbletea update loop or
// a CLI command), never interleaved.
type Tracker struct {
	store storage.Provider

	days     []models.Day
	selected string // date key of the day being viewed
	catalog  []string

	current      string // running activity name, "" when idle
	sessionStart time.Time
}

func New(store storage.Provider) *Tracker {
	return &Tracker{
		store: store,
	}
}

// Load reads all state entries from the store. A missing day ledger is not an
// error: a single empty day for today is synthesized and selected. Otherwise
// the last stored day becomes the selection. A stored running session resumes
// with its original start instant so elapsed time since then is honored on
// the next tick.
func (t *Tracker) Load(now time.Time) error {
	raw, ok, err := t.store.Get(keyDays)
	if err != nil {
		return err
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &t.days); err != nil {
			return fmt.Errorf("failed to parse day ledger: %w", err)
		}
	}
	if len(t.days) == 0 {
		t.days = []models.Day{{Date: clock.DateOf(now), Activities: []models.Activity{}}}
		if err := t.saveDays(); err != nil {
			return err
		}
	}
	for i := range t.days {
		for j := range t.days[i].Activities {
			act := &t.days[i].Activities[j]
			act.FormattedStartTime = clock.FormatClock(act.StartTime)
		}
	}
	t.selected = t.days[len(t.days)-1].Date

	raw, ok, err = t.store.Get(keyCatalog)
	if err != nil {
		return err
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &t.catalog); err != nil {
			return fmt.Errorf("failed to parse activity catalog: %w", err)
		}
	}

	current, _, err := t.store.Get(keyCurrent)
	if err != nil {
		return err
	}
	start, startOK, err := t.store.Get(keyStart)
	if err != nil {
		return err
	}
	if current != "" && startOK {
		parsed, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return fmt.Errorf("failed to parse session start: %w", err)
		}
		t.current = current
		t.sessionStart = parsed
	}

	return nil
}

// Days returns the full ledger in stored order.
func (t *Tracker) Days() []models.Day {
	return t.days
}

// Day returns the day record for a date key.
func (t *Tracker) Day(date string) (models.Day, error) {
	if i := t.dayIndex(date); i >= 0 {
		return t.days[i], nil
	}
	return models.Day{}, fmt.Errorf("%w: %s", ErrUnknownDay, date)
}

// SelectedDate returns the date key of the day being viewed.
func (t *Tracker) SelectedDate() string {
	return t.selected
}

// Selected returns the day record being viewed.
func (t *Tracker) Selected() models.Day {
	if i := t.dayIndex(t.selected); i >= 0 {
		return t.days[i]
	}
	return models.Day{Date: t.selected}
}

// Catalog returns the known activity names in insertion order. The order is
// load-bearing: it drives color assignment.
func (t *Tracker) Catalog() []string {
	return t.catalog
}

// CurrentActivity returns the running activity name, or "" when idle.
func (t *Tracker) CurrentActivity() string {
	return t.current
}

// SessionStart returns the running session's start instant.
func (t *Tracker) SessionStart() time.Time {
	return t.sessionStart
}

// Running reports whether a session is in progress.
func (t *Tracker) Running() bool {
	return t.current != ""
}

func (t *Tracker) dayIndex(date string) int {
	for i := range t.days {
		if t.days[i].Date == date {
			return i
		}
	}
	return -1
}

// ensureDay returns the index of the day record for a date, creating an empty
// one if none exists. At most one record ever exists per date.
func (t *Tracker) ensureDay(date string) int {
	if i := t.dayIndex(date); i >= 0 {
		return i
	}
	t.days = append(t.days, models.Day{Date: date, Activities: []models.Activity{}})
	return len(t.days) - 1
}

func (t *Tracker) saveDays() error {
	data, err := json.Marshal(t.days)
	if err != nil {
		return fmt.Errorf("failed to serialize day ledger: %w", err)
	}
	return t.store.Set(keyDays, string(data))
}

func (t *Tracker) saveCatalog() error {
	catalog := t.catalog
	if catalog == nil {
		catalog = []string{}
	}
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to serialize activity catalog: %w", err)
	}
	return t.store.Set(keyCatalog, string(data))
}

// saveSession writes the running session's name and start instant to their
// own entries. The start entry is only rewritten while a session is running;
// a stale value is harmless because the name entry gates resumption.
func (t *Tracker) saveSession() error {
	if err := t.store.Set(keyCurrent, t.current); err != nil {
		return err
	}
	if t.current != "" {
		return t.store.Set(keyStart, t.sessionStart.Format(time.RFC3339))
	}
	return nil
}
