package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

type NewDayCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *NewDayCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	result, err := tr.StartNewDay(now, c.Yes)
	if err != nil {
		return err
	}

	if result.ConfirmationRequired {
		fmt.Println("Today already has recorded activities.")
		fmt.Println("Starting a new day stops the running session and resets the view; recorded time is kept.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}

		if _, err := tr.StartNewDay(now, true); err != nil {
			return err
		}
	}

	fmt.Printf("✓ Started new day: %s\n", tr.SelectedDate())
	return nil
}
