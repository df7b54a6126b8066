package numberset

import (
	"errors"
	"time"
)

// MinNumber is the smallest value the set accepts. 0 and 1 are rejected
// as invalid arguments, the same rule the client applies locally.
const MinNumber uint64 = 2

var (
	// ErrBelowMinimum reports an insert of a number below MinNumber.
	ErrBelowMinimum = errors.New("numberset: number below minimum")
	// ErrDuplicate reports an insert of a number already in the set.
	ErrDuplicate = errors.New("numberset: number already exists")
	// ErrNotFound reports a delete of a number not in the set.
	ErrNotFound = errors.New("numberset: number not found")
)

// Entry is one stored record. It is immutable after creation; InsertedAt
// is assigned once, at second resolution, and never changes.
type Entry struct {
	Number     uint64
	InsertedAt time.Time
}
