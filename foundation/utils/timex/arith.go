// File: arith.go
// Title: Calendar Arithmetic
// Description: Unit-aware addition and subtraction plus month length and
//              leap year helpers.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-12-14
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-14 v0.2.0: Initial implementation
//
// Month arithmetic clamps to the last day of the target month, so
// Jan 31 + 1 month is Feb 28 (Feb 29 in leap years) and subtracting the
// month again yields Feb 28 - 1 month = Jan 28. Year arithmetic is twelve
// months and therefore also clamps Feb 29 to Feb 28. Week and finer units
// are fixed durations on the UTC instant, applied in whole seconds so
// shifts of any length stay exact.

package timex

import (
	"time"
)

// Add returns v moved by quantity units. A negative quantity subtracts.
func Add(v Value, quantity int, unit Unit) Value {
	if !v.valid || quantity == 0 {
		return v
	}

	switch unit {
	case Year:
		return addMonths(v, quantity*12)
	case Month:
		return addMonths(v, quantity)
	}

	d, ok := unit.Duration()
	if !ok {
		return v
	}
	return Value{instant: shift(v.instant, int64(quantity), d), zone: v.zone, valid: true}
}

// shift moves t by n steps of d in whole seconds plus a nanosecond rest,
// so shifts longer than time.Duration can hold stay exact
func shift(t time.Time, n int64, d time.Duration) time.Time {
	var secs, nanos int64
	if d >= time.Second {
		secs = n * int64(d/time.Second)
	} else {
		perSecond := int64(time.Second / d)
		secs = n / perSecond
		nanos = (n % perSecond) * int64(d)
	}
	return time.Unix(t.Unix()+secs, int64(t.Nanosecond())+nanos).UTC()
}

// Subtract returns v moved back by quantity units
func Subtract(v Value, quantity int, unit Unit) Value {
	return Add(v, -quantity, unit)
}

func addMonths(v Value, months int) Value {
	f := v.fields()

	total := f.year*12 + (f.month - 1) + months
	year := floorDiv(total, 12)
	month := total - year*12 + 1

	f.year = year
	f.month = month
	if last := daysIn(year, time.Month(month)); f.day > last {
		f.day = last
	}

	t, ok := f.toTime()
	if !ok {
		return v
	}
	return Value{instant: t, zone: v.zone, valid: true}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// daysIn returns the length of month in year as the day before the first
// of the following month
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear applies the Gregorian rule
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the UTC month of v
func (v Value) DaysInMonth() int {
	return daysIn(v.instant.Year(), v.instant.Month())
}

// IsLeapYear reports whether the UTC year of v is a leap year
func (v Value) IsLeapYear() bool {
	return IsLeapYear(v.instant.Year())
}

// Add returns v moved by quantity units
func (v Value) Add(quantity int, unit Unit) Value {
	return Add(v, quantity, unit)
}

// Subtract returns v moved back by quantity units
func (v Value) Subtract(quantity int, unit Unit) Value {
	return Add(v, -quantity, unit)
}

func (v Value) AddYears(n int) Value        { return Add(v, n, Year) }
func (v Value) AddMonths(n int) Value       { return Add(v, n, Month) }
func (v Value) AddWeeks(n int) Value        { return Add(v, n, Week) }
func (v Value) AddDays(n int) Value         { return Add(v, n, Day) }
func (v Value) AddHours(n int) Value        { return Add(v, n, Hour) }
func (v Value) AddMinutes(n int) Value      { return Add(v, n, Minute) }
func (v Value) AddSeconds(n int) Value      { return Add(v, n, Second) }
func (v Value) AddMilliseconds(n int) Value { return Add(v, n, Millisecond) }

func (v Value) SubtractYears(n int) Value        { return Add(v, -n, Year) }
func (v Value) SubtractMonths(n int) Value       { return Add(v, -n, Month) }
func (v Value) SubtractWeeks(n int) Value        { return Add(v, -n, Week) }
func (v Value) SubtractDays(n int) Value         { return Add(v, -n, Day) }
func (v Value) SubtractHours(n int) Value        { return Add(v, -n, Hour) }
func (v Value) SubtractMinutes(n int) Value      { return Add(v, -n, Minute) }
func (v Value) SubtractSeconds(n int) Value      { return Add(v, -n, Second) }
func (v Value) SubtractMilliseconds(n int) Value { return Add(v, -n, Millisecond) }

// StartOf floors v to unit using the host clock's location
func (v Value) StartOf(unit Unit) Value {
	return Default().StartOf(v, unit)
}

// EndOf ceils v to unit using the host clock's location
func (v Value) EndOf(unit Unit) Value {
	return Default().EndOf(v, unit)
}
