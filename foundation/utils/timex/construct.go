// File: construct.go
// Title: Value Construction
// Description: Construction entry points for epoch numbers and explicit
//              calendar fields. Every constructor returns an error instead
//              of producing an invalid value.
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

// FromEpoch interprets n by its decimal digit count: 10 digits are seconds
// and 13 digits are milliseconds since the Unix epoch. The sign does not
// count as a digit.
func FromEpoch(n int64) (Value, error) {
	return Default().FromEpoch(n)
}

// FromFields builds a UTC value from a 1-based month and optional
// hour, minute, second and millisecond.
func FromFields(year, month, day int, timeOfDay ...int) (Value, error) {
	return Default().FromFields(year, month, day, timeOfDay...)
}

// FromArray builds a UTC value from [year, month0, day, hour, minute,
// second, millisecond]. Month is 0-based. Missing trailing elements
// default to day 1 and zero time.
func FromArray(parts []int) (Value, error) {
	return Default().FromArray(parts)
}

// FromEpoch is the calendar bound variant of the package function
func (c *Calendar) FromEpoch(n int64) (Value, error) {
	var t time.Time
	switch digitCount(n) {
	case 10:
		t = time.Unix(n, 0)
	case 13:
		t = time.UnixMilli(n)
	default:
		return Value{}, timestampError(n)
	}
	return newValue(t, c.LocalZone()), nil
}

// FromFields is the calendar bound variant of the package function
func (c *Calendar) FromFields(year, month, day int, timeOfDay ...int) (Value, error) {
	if len(timeOfDay) > 4 {
		return Value{}, fieldError("FromFields", "timeOfDay", len(timeOfDay))
	}

	f := fields{year: year, month: month, day: day}
	if err := applyTimeOfDay(&f, timeOfDay, "FromFields"); err != nil {
		return Value{}, err
	}

	t, err := f.build("FromFields")
	if err != nil {
		return Value{}, err
	}
	return newValue(t, c.LocalZone()), nil
}

// FromArray is the calendar bound variant of the package function
func (c *Calendar) FromArray(parts []int) (Value, error) {
	if len(parts) == 0 || len(parts) > 7 {
		return Value{}, fieldError("FromArray", "length", len(parts))
	}

	f := fields{year: parts[0], month: 1, day: 1}
	if len(parts) > 1 {
		if parts[1] < 0 || parts[1] > 11 {
			return Value{}, fieldError("FromArray", "month", parts[1])
		}
		f.month = parts[1] + 1
	}
	if len(parts) > 2 {
		f.day = parts[2]
	}
	if err := applyTimeOfDay(&f, parts[min(len(parts), 3):], "FromArray"); err != nil {
		return Value{}, err
	}

	t, err := f.build("FromArray")
	if err != nil {
		return Value{}, err
	}
	return newValue(t, c.LocalZone()), nil
}

func applyTimeOfDay(f *fields, tod []int, op string) error {
	targets := []*int{&f.hour, &f.minute, &f.second}
	for i, value := range tod {
		if i < len(targets) {
			*targets[i] = value
			continue
		}
		if value < 0 || value > 999 {
			return fieldError(op, "millisecond", value)
		}
		f.nanosecond = value * int(time.Millisecond)
	}
	return nil
}

func (f fields) build(op string) (time.Time, error) {
	if name, value, ok := f.validate(); !ok {
		return time.Time{}, fieldError(op, name, value)
	}
	t, _ := f.toTime()
	return t, nil
}

func digitCount(n int64) int {
	u := uint64(n)
	if n < 0 {
		u = uint64(-(n + 1)) + 1
	}
	count := 1
	for u >= 10 {
		u /= 10
		count++
	}
	return count
}
