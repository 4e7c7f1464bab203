package types

import (
	"errors"
	"fmt"
	"time"
)

// Caller-visible failure classes. Everything returned by controllers wraps one
// of these so handlers can map it to a status code with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrInvalidReading   = errors.New("invalid reading")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
)

func DuplicateUtility(roomID fmt.Stringer, month time.Time) error {
	return fmt.Errorf("%w: room %s already has a record for %s", ErrDuplicateRecord, roomID, month.Format("2006-01"))
}
