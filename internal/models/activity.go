package models

import "time"

// Activity is a single contiguous session of one tracked activity. A session
// is identified by its (Name, StartTime) pair; Duration is accrued minutes.
type Activity struct {
	Name               string    `json:"name"`
	Duration           float64   `json:"duration"` // minutes
	StartTime          time.Time `json:"startTime"`
	FormattedStartTime string    `json:"formattedStartTime,omitempty"` // presentation only
}

// Same reports whether other refers to the same session as a.
func (a Activity) Same(other Activity) bool {
	return a.Name == other.Name && a.StartTime.Equal(other.StartTime)
}

// Day collects the activity sessions recorded on one calendar day. Activities
// keep insertion order; callers sort by StartTime when they need a timeline.
type Day struct {
	Date       string     `json:"date"` // YYYY-MM-DD
	Activities []Activity `json:"activities"`
}
