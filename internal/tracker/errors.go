package tracker

import "errors"

// Validation rejections are sentinel errors so callers can tell "did nothing
// because invalid" apart from a storage failure.
var (
	ErrEmptyName       = errors.New("activity name cannot be empty")
	ErrDuplicateName   = errors.New("activity name already exists")
	ErrUnknownActivity = errors.New("unknown activity")
	ErrUnknownDay      = errors.New("unknown day")
)
