package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/timepie/internal/cli"
	"github.com/julianstephens/timepie/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path." type:"path" default:"~/.config/timepie/timepie.db"`

	Init     cli.InitCmd   `cmd:"" help:"Initialize timepie storage."`
	Tui      cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Status   cli.StatusCmd `cmd:"" help:"Show the running session and today's total."`
	Start    cli.StartCmd  `cmd:"" help:"Start tracking an activity."`
	Stop     cli.StopCmd   `cmd:"" help:"Stop the running session."`
	Day      cli.DayCmd    `cmd:"" help:"Show recorded activities for a day."`
	Days     cli.DaysCmd   `cmd:"" help:"List all recorded days."`
	NewDay   cli.NewDayCmd `cmd:"" name:"new-day" help:"Reset the view to a fresh day."`
	Activity struct {
		Add    cli.ActivityAddCmd    `cmd:"" help:"Add a new activity."`
		Rename cli.ActivityRenameCmd `cmd:"" help:"Rename an activity everywhere."`
		Delete cli.ActivityDeleteCmd `cmd:"" help:"Delete an activity and its history."`
		List   cli.ActivityListCmd   `cmd:"" help:"List all activities."`
	} `cmd:"" help:"Manage the activity catalog."`
	Export cli.ExportCmd `cmd:"" help:"Export recorded activities as JSON."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("timepie"),
		kong.Description("Single-user activity time tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Data, ".json") {
		store = storage.NewJSONStore(CLI.Data)
	} else {
		store = storage.NewSQLiteStore(CLI.Data)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
