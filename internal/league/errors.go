package league

import "errors"

var (
	// ErrPlayerNotFound is returned when a lookup by name finds no record.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrNoFields is returned when a partial update carries no fields.
	ErrNoFields = errors.New("no fields to update")
)
