package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/timepie/internal/clock"
	"github.com/julianstephens/timepie/internal/report"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	dateStr := c.Date
	if dateStr == "today" {
		dateStr = clock.DateOf(time.Now())
	} else if _, err := time.Parse(clock.DateFormat, dateStr); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}

	day, err := tr.Day(dateStr)
	if err != nil {
		return err
	}

	fmt.Printf("Activities for %s:\n\n", dateStr)

	if len(day.Activities) == 0 {
		fmt.Println("  No activities recorded")
		return nil
	}

	for _, act := range report.SortedByStart(day.Activities) {
		fmt.Printf("%s  %-30s  %s\n",
			clock.FormatClock(act.StartTime), act.Name, clock.FormatDuration(act.Duration))
	}

	fmt.Println()
	for _, slice := range report.Slices(day.Activities) {
		fmt.Printf("%-30s  %6s  %5.1f%%\n",
			slice.Name, clock.FormatDuration(slice.Duration), slice.Percentage)
	}
	fmt.Printf("\nTotal: %s\n", clock.FormatDuration(report.TotalMinutes(day.Activities)))

	return nil
}

type DaysCmd struct{}

func (c *DaysCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Recorded days:")
	for _, day := range tr.Days() {
		marker := " "
		if day.Date == tr.SelectedDate() {
			marker = "*"
		}
		fmt.Printf("%s %s  %d sessions  %s\n",
			marker, day.Date, len(day.Activities),
			clock.FormatDuration(report.TotalMinutes(day.Activities)))
	}

	return nil
}
