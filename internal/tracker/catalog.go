package tracker

import "fmt"

// DeleteResult is the outcome of a DeleteActivity call.
type DeleteResult struct {
	// ConfirmationRequired is set when the activity has recorded history and
	// the call was not confirmed. Nothing was mutated.
	ConfirmationRequired bool
}

// AddActivity appends a new name to the catalog. Names are case-sensitive and
// must be unique; the new entry's index determines its color from here on.
func (t *Tracker) AddActivity(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if t.hasCatalogEntry(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	t.catalog = append(t.catalog, name)
	return t.saveCatalog()
}

// RenameActivity rewrites a catalog entry in place, keeping its index and
// therefore its color, and propagates the new name into every historical day
// record. A running session under the old name keeps accruing under the new
// one with no loss of duration.
func (t *Tracker) RenameActivity(oldName, newName string) error {
	if newName == "" {
		return ErrEmptyName
	}
	if t.hasCatalogEntry(newName) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, newName)
	}

	renamed := false
	for i, entry := range t.catalog {
		if entry == oldName {
			t.catalog[i] = newName
			renamed = true
			break
		}
	}
	if !renamed {
		return fmt.Errorf("%w: %s", ErrUnknownActivity, oldName)
	}

	for i := range t.days {
		for j := range t.days[i].Activities {
			if t.days[i].Activities[j].Name == oldName {
				t.days[i].Activities[j].Name = newName
			}
		}
	}

	if err := t.saveCatalog(); err != nil {
		return err
	}
	if err := t.saveDays(); err != nil {
		return err
	}

	if t.current == oldName {
		t.current = newName
		return t.saveSession()
	}
	return nil
}

// DeleteActivity removes a name from the catalog. Without recorded history the
// removal is immediate. With history this is a destructive two-phase
// operation: once confirmed, every record under the name is erased from every
// day, and a running session under the name is dropped without crediting its
// in-flight elapsed time (the record it would land in is being removed).
func (t *Tracker) DeleteActivity(name string, confirmed bool) (DeleteResult, error) {
	if !t.hasCatalogEntry(name) {
		return DeleteResult{}, fmt.Errorf("%w: %s", ErrUnknownActivity, name)
	}

	if t.hasHistory(name) && !confirmed {
		return DeleteResult{ConfirmationRequired: true}, nil
	}

	for i, entry := range t.catalog {
		if entry == name {
			t.catalog = append(t.catalog[:i], t.catalog[i+1:]...)
			break
		}
	}

	for i := range t.days {
		kept := t.days[i].Activities[:0]
		for _, act := range t.days[i].Activities {
			if act.Name != name {
				kept = append(kept, act)
			}
		}
		t.days[i].Activities = kept
	}

	if err := t.saveCatalog(); err != nil {
		return DeleteResult{}, err
	}
	if err := t.saveDays(); err != nil {
		return DeleteResult{}, err
	}

	if t.current == name {
		t.current = ""
		if err := t.saveSession(); err != nil {
			return DeleteResult{}, err
		}
	}

	return DeleteResult{}, nil
}

// hasHistory reports whether any day holds a record under this name.
func (t *Tracker) hasHistory(name string) bool {
	for i := range t.days {
		for _, act := range t.days[i].Activities {
			if act.Name == name {
				return true
			}
		}
	}
	return false
}
