// File: compare.go
// Title: Comparison and Diff
// Description: Exact instant comparisons, unit-granular comparisons and
//              numeric differences between values.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-12-14
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-14 v0.2.0: Initial implementation

package timex

import "time"

// Compare returns -1, 0 or +1 comparing the instants of v and other
func (v Value) Compare(other Value) int {
	return v.instant.Compare(other.instant)
}

// IsBefore compares raw instants
func (v Value) IsBefore(other Value) bool {
	return v.instant.Before(other.instant)
}

// IsAfter compares raw instants
func (v Value) IsAfter(other Value) bool {
	return v.instant.After(other.instant)
}

// IsSame compares raw instants and ignores zone hints
func (v Value) IsSame(other Value) bool {
	return v.instant.Equal(other.instant)
}

// IsSameOrBefore compares raw instants
func (v Value) IsSameOrBefore(other Value) bool {
	return !v.instant.After(other.instant)
}

// IsSameOrAfter compares raw instants
func (v Value) IsSameOrAfter(other Value) bool {
	return !v.instant.Before(other.instant)
}

// IsBetween reports start < v < end; both endpoints are excluded
func (v Value) IsBetween(start, end Value) bool {
	return start.instant.Before(v.instant) && v.instant.Before(end.instant)
}

// IsBeforeUnit compares the unit buckets of v and other
func (v Value) IsBeforeUnit(other Value, unit Unit) bool {
	return Default().IsBeforeUnit(v, other, unit)
}

// IsAfterUnit compares the unit buckets of v and other
func (v Value) IsAfterUnit(other Value, unit Unit) bool {
	return Default().IsAfterUnit(v, other, unit)
}

// IsSameUnit reports whether v and other share a unit bucket
func (v Value) IsSameUnit(other Value, unit Unit) bool {
	return Default().IsSameUnit(v, other, unit)
}

// IsSameOrBeforeUnit compares the unit buckets of v and other
func (v Value) IsSameOrBeforeUnit(other Value, unit Unit) bool {
	return Default().IsSameOrBeforeUnit(v, other, unit)
}

// IsSameOrAfterUnit compares the unit buckets of v and other
func (v Value) IsSameOrAfterUnit(other Value, unit Unit) bool {
	return Default().IsSameOrAfterUnit(v, other, unit)
}

// IsBetweenUnit is IsBetween after flooring all three values to unit
func (v Value) IsBetweenUnit(start, end Value, unit Unit) bool {
	return Default().IsBetweenUnit(v, start, end, unit)
}

// Diff returns a - b in units.
//
// Millisecond through Week divide the elapsed time by the fixed unit
// length and truncate toward zero, so Day is not a calendar day count.
//
// Month and Year subtract the UTC calendar fields and ignore everything
// finer: Diff(2023-05-20, 2023-01-15, Month) is 4.
func Diff(a, b Value, unit Unit) int64 {
	switch unit {
	case Year:
		return int64(a.Year() - b.Year())
	case Month:
		return int64((a.Year()-b.Year())*12 + (a.MonthOfYear() - b.MonthOfYear()))
	}

	d, ok := unit.Duration()
	if !ok {
		return 0
	}

	// seconds and nanoseconds carry the same sign after this step
	secs := a.instant.Unix() - b.instant.Unix()
	nanos := int64(a.instant.Nanosecond() - b.instant.Nanosecond())
	switch {
	case secs > 0 && nanos < 0:
		secs--
		nanos += int64(time.Second)
	case secs < 0 && nanos > 0:
		secs++
		nanos -= int64(time.Second)
	}

	if d >= time.Second {
		return secs / int64(d/time.Second)
	}
	return secs*int64(time.Second/d) + nanos/int64(d)
}

// Diff returns v - other in units
func (v Value) Diff(other Value, unit Unit) int64 {
	return Diff(v, other, unit)
}
