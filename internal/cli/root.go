package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/timepie/internal/backup"
	"github.com/julianstephens/timepie/internal/storage"
	"github.com/julianstephens/timepie/internal/tracker"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetDataPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// loadTracker opens the store and reconstructs tracker state from it.
func loadTracker(ctx *Context) (*tracker.Tracker, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}

	tr := tracker.New(ctx.Store)
	if err := tr.Load(time.Now()); err != nil {
		return nil, err
	}
	return tr, nil
}
