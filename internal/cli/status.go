package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/timepie/internal/clock"
	"github.com/julianstephens/timepie/internal/report"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	if tr.Running() {
		// Credit elapsed time before reporting so the totals are current.
		if err := tr.Tick(now); err != nil {
			return err
		}
		elapsed := clock.ElapsedMinutes(tr.SessionStart(), now)
		fmt.Printf("Tracking: %s (started %s, %s elapsed)\n",
			tr.CurrentActivity(),
			clock.FormatClock(tr.SessionStart()),
			clock.FormatDuration(elapsed))
	} else {
		fmt.Println("Not tracking.")
	}

	today, err := tr.Day(clock.DateOf(now))
	if err != nil {
		return nil
	}
	total := report.TotalMinutes(today.Activities)
	if total > 0 {
		fmt.Printf("Today: %s across %d sessions\n",
			clock.FormatDuration(total), len(today.Activities))
	}

	return nil
}
