package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// newActivityForm builds the add/rename form. Uniqueness is enforced by the
// tracker; the form only catches blank input early.
func newActivityForm(fm *ActivityFormModel, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("activity name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
