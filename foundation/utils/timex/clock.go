// File: clock.go
// Title: Clock Source
// Description: Clock supplies the current instant and the local location
//              used for local-view boundaries and zone hints.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-12-14
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-14 v0.2.0: Initial implementation

package timex

import "time"

// Clock provides the current time and the local location
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct{}

// SystemClock returns a clock backed by the host time and time.Local
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Location() *time.Location {
	return time.Local
}

type fixedClock struct {
	now time.Time
	loc *time.Location
}

// FixedClock returns a clock frozen at now with loc as the local location.
// A nil loc means UTC.
func FixedClock(now time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return fixedClock{now: now, loc: loc}
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Location() *time.Location {
	return c.loc
}
