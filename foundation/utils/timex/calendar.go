// File: calendar.go
// Title: Calendar Views
// Description: Calendar binds a Clock and provides every operation that
//              depends on "now" or on the local zone: construction with a
//              local zone hint, local-view unit boundaries, unit-granular
//              comparisons and local rendering.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-12-14
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-14 v0.2.0: Initial implementation

package timex

import (
	"time"
)

// Calendar evaluates clock and local-zone dependent operations.
// A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	clock Clock
}

var defaultCalendar = NewCalendar(SystemClock())

// NewCalendar returns a calendar reading time and location from clock.
// A nil clock means SystemClock.
func NewCalendar(clock Clock) *Calendar {
	if clock == nil {
		clock = SystemClock()
	}
	return &Calendar{clock: clock}
}

// Default returns the calendar backed by the host clock
func Default() *Calendar {
	return defaultCalendar
}

// Clock returns the underlying clock
func (c *Calendar) Clock() Clock {
	return c.clock
}

// Location returns the local location of the clock
func (c *Calendar) Location() *time.Location {
	return c.clock.Location()
}

// LocalZone returns the clock's current local offset as a zone hint
func (c *Calendar) LocalZone() Zone {
	return zoneOf(c.clock.Now(), c.clock.Location())
}

// Now returns the current instant with the local offset as zone hint
func (c *Calendar) Now() Value {
	now := c.clock.Now()
	return newValue(now.Round(0), zoneOf(now, c.clock.Location()))
}

// Local returns the instant of v in the location its zone hint resolves
// to. Region hints resolve to the clock's location.
func (c *Calendar) Local(v Value) time.Time {
	return v.instant.In(v.zone.Location(c.clock.Location()))
}

// ToLocalString renders v with an explicit numeric offset in its resolved zone
func (c *Calendar) ToLocalString(v Value) string {
	return c.Local(v).Format("2006-01-02T15:04:05-07:00")
}

// StartOf returns the first instant of the unit bucket containing v.
// Year, Month, Week and Day buckets are taken in the clock's location;
// finer units are taken in UTC. Weeks start on Sunday.
func (c *Calendar) StartOf(v Value, unit Unit) Value {
	if !v.valid {
		return v
	}
	return Value{instant: c.floor(v.instant, unit), zone: v.zone, valid: true}
}

// EndOf returns the last nanosecond of the unit bucket containing v
func (c *Calendar) EndOf(v Value, unit Unit) Value {
	if !v.valid {
		return v
	}
	return Value{instant: c.ceil(v.instant, unit), zone: v.zone, valid: true}
}

func (c *Calendar) floor(t time.Time, unit Unit) time.Time {
	switch unit {
	case Year, Month, Week, Day:
		loc := c.clock.Location()
		local := t.In(loc)
		y, m, d := local.Date()
		switch unit {
		case Year:
			return time.Date(y, time.January, 1, 0, 0, 0, 0, loc).UTC()
		case Month:
			return time.Date(y, m, 1, 0, 0, 0, 0, loc).UTC()
		case Week:
			return time.Date(y, m, d-int(local.Weekday()), 0, 0, 0, 0, loc).UTC()
		default:
			return time.Date(y, m, d, 0, 0, 0, 0, loc).UTC()
		}
	default:
		d, ok := unit.Duration()
		if !ok {
			return t
		}
		return t.Truncate(d).UTC()
	}
}

func (c *Calendar) ceil(t time.Time, unit Unit) time.Time {
	start := c.floor(t, unit)

	var next time.Time
	switch unit {
	case Year, Month, Week, Day:
		loc := c.clock.Location()
		y, m, d := start.In(loc).Date()
		switch unit {
		case Year:
			next = time.Date(y+1, time.January, 1, 0, 0, 0, 0, loc)
		case Month:
			next = time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
		case Week:
			next = time.Date(y, m, d+7, 0, 0, 0, 0, loc)
		default:
			next = time.Date(y, m, d+1, 0, 0, 0, 0, loc)
		}
	default:
		d, ok := unit.Duration()
		if !ok {
			return t
		}
		next = start.Add(d)
	}

	return next.Add(-time.Nanosecond).UTC()
}

// bucket is the comparison key of v at unit granularity
func (c *Calendar) bucket(v Value, unit Unit) time.Time {
	if unit == Millisecond {
		return v.instant
	}
	return c.floor(v.instant, unit)
}

// IsBeforeUnit reports whether a's unit bucket starts before b's
func (c *Calendar) IsBeforeUnit(a, b Value, unit Unit) bool {
	return c.bucket(a, unit).Before(c.bucket(b, unit))
}

// IsAfterUnit reports whether a's unit bucket starts after b's
func (c *Calendar) IsAfterUnit(a, b Value, unit Unit) bool {
	return c.bucket(a, unit).After(c.bucket(b, unit))
}

// IsSameUnit reports whether a and b fall into the same unit bucket
func (c *Calendar) IsSameUnit(a, b Value, unit Unit) bool {
	return c.bucket(a, unit).Equal(c.bucket(b, unit))
}

// IsSameOrBeforeUnit is IsSameUnit or IsBeforeUnit
func (c *Calendar) IsSameOrBeforeUnit(a, b Value, unit Unit) bool {
	return !c.IsAfterUnit(a, b, unit)
}

// IsSameOrAfterUnit is IsSameUnit or IsAfterUnit
func (c *Calendar) IsSameOrAfterUnit(a, b Value, unit Unit) bool {
	return !c.IsBeforeUnit(a, b, unit)
}

// IsBetweenUnit reports start < v < end after flooring all three to unit
func (c *Calendar) IsBetweenUnit(v, start, end Value, unit Unit) bool {
	x := c.bucket(v, unit)
	return c.bucket(start, unit).Before(x) && x.Before(c.bucket(end, unit))
}
