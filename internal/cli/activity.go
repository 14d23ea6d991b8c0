package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/timepie/internal/report"
)

type ActivityAddCmd struct {
	Name string `arg:"" help:"Name of the activity to add."`
}

func (c *ActivityAddCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	if err := tr.AddActivity(c.Name); err != nil {
		return err
	}
	fmt.Printf("✓ Added activity: %s\n", c.Name)
	return nil
}

type ActivityRenameCmd struct {
	OldName string `arg:"" help:"Current activity name."`
	NewName string `arg:"" help:"New activity name."`
}

func (c *ActivityRenameCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	if err := tr.RenameActivity(c.OldName, c.NewName); err != nil {
		return err
	}
	fmt.Printf("✓ Renamed %s to %s\n", c.OldName, c.NewName)
	return nil
}

type ActivityDeleteCmd struct {
	Name string `arg:"" help:"Activity to delete."`
	Yes  bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ActivityDeleteCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	result, err := tr.DeleteActivity(c.Name, c.Yes)
	if err != nil {
		return err
	}

	if result.ConfirmationRequired {
		fmt.Printf("⚠️  Deleting %s removes all of its recorded time from every day.\n", c.Name)
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

		if _, err := tr.DeleteActivity(c.Name, true); err != nil {
			return err
		}
	}

	fmt.Printf("✓ Deleted activity: %s\n", c.Name)
	return nil
}

type ActivityListCmd struct{}

func (c *ActivityListCmd) Run(ctx *Context) error {
	tr, err := loadTracker(ctx)
	if err != nil {
		return err
	}

	catalog := tr.Catalog()
	if len(catalog) == 0 {
		fmt.Println("No activities yet. Add one with 'timepie activity add <name>'.")
		return nil
	}

	// Sum each activity's time across the whole ledger.
	totals := make(map[string]float64)
	for _, day := range tr.Days() {
		for _, act := range day.Activities {
			totals[act.Name] += act.Duration
		}
	}

	for _, name := range catalog {
		marker := " "
		if name == tr.CurrentActivity() {
			marker = "▶"
		}
		fmt.Printf("%s %-30s  %s  %s\n",
			marker, name, report.ColorFor(catalog, name), formatTotal(totals[name]))
	}
	return nil
}

func formatTotal(minutes float64) string {
	if minutes == 0 {
		return "no time recorded"
	}
	hours := int(minutes) / 60
	mins := int(minutes) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm total", hours, mins)
	}
	return fmt.Sprintf("%dm total", mins)
}
