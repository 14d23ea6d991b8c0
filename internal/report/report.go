// Package report derives the deterministic presentation data the rendering
// layer consumes: per-activity colors, aggregated pie slices, and an
// hour-bucketed timeline. It holds no state of its own.
package report

import (
	"fmt"
	"sort"

	"github.com/julianstephens/timepie/internal/models"
)

// Palette is the fixed color cycle. An activity's color is its catalog index
// modulo the palette size, so catalog order must stay stable.
var Palette = []string{
	"#0088FE",
	"#00C49F",
	"#FFBB28",
	"#FF8042",
	"#8884D8",
	"#82ca9d",
}

// ColorFor returns the hex color assigned to an activity name. Names missing
// from the catalog wrap around to the last palette entry.
func ColorFor(catalog []string, name string) string {
	index := -1
	for i, entry := range catalog {
		if entry == name {
			index = i
			break
		}
	}
	n := len(Palette)
	return Palette[((index%n)+n)%n]
}

// Slice is one pie-chart segment: all of a name's sessions summed.
type Slice struct {
	Name       string
	Duration   float64 // minutes
	Percentage float64
}

// Slices aggregates a day's sessions by name, in first-seen order, and
// computes each name's share of the day's total.
func Slices(activities []models.Activity) []Slice {
	var total float64
	for _, act := range activities {
		total += act.Duration
	}
	if total == 0 {
		return nil
	}

	var slices []Slice
	index := make(map[string]int)
	for _, act := range activities {
		if i, ok := index[act.Name]; ok {
			slices[i].Duration += act.Duration
			continue
		}
		index[act.Name] = len(slices)
		slices = append(slices, Slice{Name: act.Name, Duration: act.Duration})
	}
	for i := range slices {
		slices[i].Percentage = slices[i].Duration / total * 100
	}
	return slices
}

// HourBucket groups the sessions whose span touches one hour of the day.
type HourBucket struct {
	Hour    int // 0-23
	Entries []models.Activity
}

// Timeline buckets a day's sessions by hour. Sessions are ordered by start
// time, duplicates by (name, startTime) collapse to one entry, and a session
// appears under every hour its start-to-end span overlaps. Hours without
// entries are omitted.
func Timeline(activities []models.Activity) []HourBucket {
	if len(activities) == 0 {
		return nil
	}

	sorted := make([]models.Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var unique []models.Activity
	for _, act := range sorted {
		dup := false
		for _, seen := range unique {
			if seen.Same(act) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, act)
		}
	}

	var buckets []HourBucket
	for hour := 0; hour < 24; hour++ {
		var entries []models.Activity
		for _, act := range unique {
			if spanTouchesHour(act, hour) {
				entries = append(entries, act)
			}
		}
		if len(entries) > 0 {
			buckets = append(buckets, HourBucket{Hour: hour, Entries: entries})
		}
	}
	return buckets
}

// spanTouchesHour reports whether a session's [start, start+duration) span
// overlaps the given hour of its day.
func spanTouchesHour(act models.Activity, hour int) bool {
	startMin := float64(act.StartTime.Hour()*60 + act.StartTime.Minute())
	endMin := startMin + act.Duration
	hourStart := float64(hour * 60)
	hourEnd := hourStart + 60
	if endMin <= startMin {
		// Zero-length sessions still show under their start hour.
		return startMin >= hourStart && startMin < hourEnd
	}
	return startMin < hourEnd && endMin > hourStart
}

// FormatHour renders an hour of the day as a 12-hour label, e.g. "9 AM".
func FormatHour(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d %s", display, period)
}

// TotalMinutes sums a day's accrued minutes.
func TotalMinutes(activities []models.Activity) float64 {
	var total float64
	for _, act := range activities {
		total += act.Duration
	}
	return total
}

// SortedByStart returns a day's sessions in start-time order without
// mutating the stored insertion order.
func SortedByStart(activities []models.Activity) []models.Activity {
	sorted := make([]models.Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}
