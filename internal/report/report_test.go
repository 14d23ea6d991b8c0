package report

import (
	"testing"
	"time"

	"github.com/julianstephens/timepie/internal/models"
)

func session(name string, hour, min int, duration float64) models.Activity {
	return models.Activity{
		Name:      name,
		Duration:  duration,
		StartTime: time.Date(2025, 6, 1, hour, min, 0, 0, time.Local),
	}
}

func TestColorForCyclesThroughPalette(t *testing.T) {
	catalog := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	if got := ColorFor(catalog, "A"); got != Palette[0] {
		t.Errorf("first entry: got %s, want %s", got, Palette[0])
	}
	// The seventh entry wraps back to the first color.
	if got := ColorFor(catalog, "G"); got != Palette[0] {
		t.Errorf("seventh entry: got %s, want %s", got, Palette[0])
	}
	if got := ColorFor(catalog, "H"); got != Palette[1] {
		t.Errorf("eighth entry: got %s, want %s", got, Palette[1])
	}
}

func TestColorForUnknownName(t *testing.T) {
	if got := ColorFor([]string{"A"}, "missing"); got != Palette[len(Palette)-1] {
		t.Errorf("unknown name: got %s", got)
	}
}

func TestSlicesAggregateByName(t *testing.T) {
	activities := []models.Activity{
		session("Coding", 9, 0, 30),
		session("Meeting", 10, 0, 15),
		session("Coding", 11, 0, 15),
	}

	slices := Slices(activities)
	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}

	// First-seen order is preserved.
	if slices[0].Name != "Coding" || slices[1].Name != "Meeting" {
		t.Errorf("unexpected slice order: %+v", slices)
	}
	if slices[0].Duration != 45 {
		t.Errorf("Coding duration: got %v, want 45", slices[0].Duration)
	}
	if slices[0].Percentage != 75 {
		t.Errorf("Coding percentage: got %v, want 75", slices[0].Percentage)
	}
	if slices[1].Percentage != 25 {
		t.Errorf("Meeting percentage: got %v, want 25", slices[1].Percentage)
	}
}

func TestSlicesEmptyDay(t *testing.T) {
	if got := Slices(nil); got != nil {
		t.Errorf("expected nil for empty day, got %+v", got)
	}
}

func TestTimelineBucketsBySpan(t *testing.T) {
	activities := []models.Activity{
		// 9:30 for 95 minutes: touches the 9, 10, and 11 o'clock buckets.
		session("Coding", 9, 30, 95),
		session("Meeting", 14, 0, 20),
	}

	buckets := Timeline(activities)
	hours := make([]int, 0, len(buckets))
	for _, b := range buckets {
		hours = append(hours, b.Hour)
	}

	want := []int{9, 10, 11, 14}
	if len(hours) != len(want) {
		t.Fatalf("got buckets for hours %v, want %v", hours, want)
	}
	for i := range want {
		if hours[i] != want[i] {
			t.Fatalf("got buckets for hours %v, want %v", hours, want)
		}
	}

	for _, b := range buckets[:3] {
		if len(b.Entries) != 1 || b.Entries[0].Name != "Coding" {
			t.Errorf("hour %d: unexpected entries %+v", b.Hour, b.Entries)
		}
	}
	if buckets[3].Entries[0].Name != "Meeting" {
		t.Errorf("hour 14: unexpected entries %+v", buckets[3].Entries)
	}
}

func TestTimelineCollapsesDuplicateSessions(t *testing.T) {
	act := session("Coding", 9, 0, 5)
	buckets := Timeline([]models.Activity{act, act})

	if len(buckets) != 1 || len(buckets[0].Entries) != 1 {
		t.Errorf("duplicate sessions should collapse: %+v", buckets)
	}
}

func TestTimelineOrdersByStart(t *testing.T) {
	activities := []models.Activity{
		session("Late", 15, 0, 5),
		session("Early", 8, 0, 5),
	}

	buckets := Timeline(activities)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Hour != 8 || buckets[1].Hour != 15 {
		t.Errorf("buckets out of order: %+v", buckets)
	}
}

func TestTimelineZeroDurationSession(t *testing.T) {
	buckets := Timeline([]models.Activity{session("Blip", 9, 59, 0)})
	if len(buckets) != 1 || buckets[0].Hour != 9 {
		t.Errorf("zero-length session should land under its start hour: %+v", buckets)
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{9, "9 AM"},
		{12, "12 PM"},
		{15, "3 PM"},
		{23, "11 PM"},
	}
	for _, tt := range tests {
		if got := FormatHour(tt.hour); got != tt.want {
			t.Errorf("FormatHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestTotalMinutes(t *testing.T) {
	activities := []models.Activity{
		session("A", 9, 0, 12.5),
		session("B", 10, 0, 7.5),
	}
	if got := TotalMinutes(activities); got != 20 {
		t.Errorf("TotalMinutes = %v, want 20", got)
	}
}
