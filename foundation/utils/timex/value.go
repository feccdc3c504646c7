// File: value.go
// Title: Temporal Value
// Description: Value is an immutable UTC instant with a display zone hint.
//              Accessors read UTC calendar fields; setters return a new
//              value and leave the receiver untouched when the requested
//              field would form an impossible date.
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

// Value is a point in time plus a zone hint used for local rendering
type Value struct {
	instant time.Time
	zone    Zone
	valid   bool
}

// fields is the broken down UTC representation used when rebuilding values
type fields struct {
	year, month, day     int
	hour, minute, second int
	nanosecond           int
}

// Now returns the current instant with the host's local offset as zone hint
func Now() Value {
	return Default().Now()
}

// FromTime converts a time.Time. The zone hint is the fixed offset t
// carries in its own location.
func FromTime(t time.Time) Value {
	return Value{
		instant: t.UTC(),
		zone:    zoneOf(t, t.Location()),
		valid:   true,
	}
}

func newValue(t time.Time, zone Zone) Value {
	return Value{instant: t.UTC(), zone: zone, valid: true}
}

// Time returns the instant in UTC
func (v Value) Time() time.Time {
	return v.instant
}

// Zone returns the zone hint
func (v Value) Zone() Zone {
	return v.zone
}

// IsValid reports whether v was produced by a constructor. The zero Value
// is not valid.
func (v Value) IsValid() bool {
	return v.valid
}

// WithZone returns a copy with the given zone hint and the same instant
func (v Value) WithZone(zone Zone) Value {
	v.zone = zone
	return v
}

// Clone returns an independent copy
func (v Value) Clone() Value {
	return v
}

// Equal reports structural equality on instant and zone hint
func (v Value) Equal(other Value) bool {
	return v.valid == other.valid && v.instant.Equal(other.instant) && v.zone == other.zone
}

// Year returns the UTC year
func (v Value) Year() int {
	return v.instant.Year()
}

// Month returns the UTC month, 0 for January
func (v Value) Month() int {
	return int(v.instant.Month()) - 1
}

// MonthOfYear returns the UTC month, 1 for January
func (v Value) MonthOfYear() int {
	return int(v.instant.Month())
}

// Date returns the UTC day of month, 1..31
func (v Value) Date() int {
	return v.instant.Day()
}

// Weekday returns the UTC weekday, 0 for Sunday
func (v Value) Weekday() int {
	return int(v.instant.Weekday())
}

// DayOfYear returns the UTC ordinal day, 1..366
func (v Value) DayOfYear() int {
	return v.instant.YearDay()
}

// WeekOfYear returns the ISO 8601 week number, 1..53
func (v Value) WeekOfYear() int {
	_, week := v.instant.ISOWeek()
	return week
}

// Hour returns the UTC hour
func (v Value) Hour() int {
	return v.instant.Hour()
}

// Minute returns the UTC minute
func (v Value) Minute() int {
	return v.instant.Minute()
}

// Second returns the UTC second
func (v Value) Second() int {
	return v.instant.Second()
}

// Millisecond returns the millisecond within the second
func (v Value) Millisecond() int {
	return v.instant.Nanosecond() / int(time.Millisecond)
}

// Nanosecond returns the nanosecond within the second
func (v Value) Nanosecond() int {
	return v.instant.Nanosecond()
}

// Unix returns seconds since the Unix epoch
func (v Value) Unix() int64 {
	return v.instant.Unix()
}

// UnixMilli returns milliseconds since the Unix epoch
func (v Value) UnixMilli() int64 {
	return v.instant.UnixMilli()
}

// SetYear returns v with the year replaced. Feb 29 into a common year is
// impossible and returns v unchanged.
func (v Value) SetYear(year int) Value {
	f := v.fields()
	f.year = year
	return v.rebuild(f)
}

// SetMonth returns v with the 0-based month replaced
func (v Value) SetMonth(month int) Value {
	f := v.fields()
	f.month = month + 1
	return v.rebuild(f)
}

// SetDate returns v with the day of month replaced
func (v Value) SetDate(day int) Value {
	f := v.fields()
	f.day = day
	return v.rebuild(f)
}

// SetHour returns v with the hour replaced
func (v Value) SetHour(hour int) Value {
	f := v.fields()
	f.hour = hour
	return v.rebuild(f)
}

// SetMinute returns v with the minute replaced
func (v Value) SetMinute(minute int) Value {
	f := v.fields()
	f.minute = minute
	return v.rebuild(f)
}

// SetSecond returns v with the second replaced
func (v Value) SetSecond(second int) Value {
	f := v.fields()
	f.second = second
	return v.rebuild(f)
}

// SetMillisecond returns v with the millisecond replaced. Sub-millisecond
// precision is kept.
func (v Value) SetMillisecond(ms int) Value {
	if ms < 0 || ms > 999 {
		return v
	}
	f := v.fields()
	f.nanosecond = ms*int(time.Millisecond) + f.nanosecond%int(time.Millisecond)
	return v.rebuild(f)
}

func (v Value) fields() fields {
	t := v.instant
	return fields{
		year:       t.Year(),
		month:      int(t.Month()),
		day:        t.Day(),
		hour:       t.Hour(),
		minute:     t.Minute(),
		second:     t.Second(),
		nanosecond: t.Nanosecond(),
	}
}

func (v Value) rebuild(f fields) Value {
	if !v.valid {
		return v
	}
	t, ok := f.toTime()
	if !ok {
		return v
	}
	return Value{instant: t, zone: v.zone, valid: true}
}

// validate returns the name of the first out of range field
func (f fields) validate() (string, int, bool) {
	switch {
	case f.month < 1 || f.month > 12:
		return "month", f.month, false
	case f.day < 1 || f.day > daysIn(f.year, time.Month(f.month)):
		return "day", f.day, false
	case f.hour < 0 || f.hour > 23:
		return "hour", f.hour, false
	case f.minute < 0 || f.minute > 59:
		return "minute", f.minute, false
	case f.second < 0 || f.second > 59:
		return "second", f.second, false
	case f.nanosecond < 0 || f.nanosecond >= int(time.Second):
		return "nanosecond", f.nanosecond, false
	}
	return "", 0, true
}

// toTime builds the UTC instant without normalizing overflowing fields
func (f fields) toTime() (time.Time, bool) {
	if _, _, ok := f.validate(); !ok {
		return time.Time{}, false
	}
	return time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.second, f.nanosecond, time.UTC), true
}
