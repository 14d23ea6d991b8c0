package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/timepie/internal/tracker"
)

type StartCmd struct {
	Name string `arg:"" help:"Activity to start tracking."`
}

func (c *StartCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	previous := tr.CurrentActivity()
	if err := tr.Start(c.Name, time.Now()); err != nil {
		if errors.Is(err, tracker.ErrUnknownActivity) {
			return fmt.Errorf("unknown activity %q, add it first with 'timepie activity add'", c.Name)
		}
		return err
	}

	if !tr.Running() {
		// Starting the running activity again toggles it off.
		fmt.Printf("✓ Stopped %s\n", previous)
		return nil
	}
	if previous != "" {
		fmt.Printf("✓ Switched from %s to %s\n", previous, c.Name)
	} else {
		fmt.Printf("✓ Started %s\n", c.Name)
	}
	return nil
}

type StopCmd struct{}

func (c *StopCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	if !tr.Running() {
		fmt.Println("Not tracking.")
		return nil
	}

	name := tr.CurrentActivity()
	if err := tr.Stop(time.Now()); err != nil {
		return err
	}
	fmt.Printf("✓ Stopped %s\n", name)
	return nil
}
