package domain

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current calendar date to the ledger.
type Clock interface {
	Today() Date
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

// Today returns the current date in the clock's location (UTC when unset).
func (c SystemClock) Today() Date {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// FixedClock always reports the same date.
type FixedClock Date

func (c FixedClock) Today() Date { return Date(c) }

// IDGenerator produces identifiers for new records.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}
