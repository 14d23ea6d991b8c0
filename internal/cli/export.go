package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/timepie/internal/clock"
	"github.com/julianstephens/timepie/internal/export"
)

type ExportCmd struct {
	Day    string `help:"Export a single day (YYYY-MM-DD or 'today') instead of everything."`
	Output string `help:"Directory to write the export into." short:"o" type:"path" default:"."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	if c.Day == "" {
		path, err := export.SaveAll(c.Output, tr.Days())
		if err != nil {
			return err
		}
		fmt.Printf("✓ Exported all activities to %s\n", path)
		return nil
	}

	dateStr := c.Day
	if dateStr == "today" {
		dateStr = clock.DateOf(time.Now())
	} else if _, err := time.Parse(clock.DateFormat, dateStr); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}

	day, err := tr.Day(dateStr)
	if err != nil {
		return err
	}
	path, err := export.SaveDay(c.Output, day)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Exported %s to %s\n", dateStr, path)
	return nil
}
