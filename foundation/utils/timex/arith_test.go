// File: arith_test.go
// Title: Calendar Arithmetic Tests
// Description: Tests for unit addition, month clamping, unit boundaries,
//              month lengths and leap years.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-12-14
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-14 v0.2.0: Initial test implementation

package timex

import (
	"testing"
	"time"
)

func TestAdd(t *testing.T) {
	base := time.Date(2023, 1, 31, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		start    time.Time
		quantity int
		unit     Unit
		want     time.Time
	}{
		{"Milliseconds", base, 1500, Millisecond, base.Add(1500 * time.Millisecond)},
		{"Seconds", base, 90, Second, base.Add(90 * time.Second)},
		{"Minutes", base, -30, Minute, base.Add(-30 * time.Minute)},
		{"Hours", base, 20, Hour, time.Date(2023, 2, 1, 6, 0, 0, 0, time.UTC)},
		{"Days", base, 1, Day, time.Date(2023, 2, 1, 10, 0, 0, 0, time.UTC)},
		{"Weeks", base, 2, Week, time.Date(2023, 2, 14, 10, 0, 0, 0, time.UTC)},
		{"Month clamps to Feb 28", base, 1, Month, time.Date(2023, 2, 28, 10, 0, 0, 0, time.UTC)},
		{"Month clamps to Feb 29", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 1, Month, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"Month across year", time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC), 3, Month, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)},
		{"December plus one", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 1, Month, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"Negative months", time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC), -13, Month, time.Date(2022, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"Thirteen months", time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), 13, Month, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"Year", time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), 1, Year, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)},
		{"Year across leap day", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), 1, Year, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Leap day plus year", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 1, Year, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"Leap day plus four years", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 4, Year, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"Zero quantity", base, 0, Month, base},
		{"Days beyond three centuries", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 110000, Day, time.Date(2301, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"Negative days beyond three centuries", time.Date(2301, 3, 4, 0, 0, 0, 0, time.UTC), -110000, Day, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Hours beyond three centuries", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 110000 * 24, Hour, time.Date(2301, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"Weeks beyond three centuries", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 20000, Week, time.Date(2383, 4, 23, 0, 0, 0, 0, time.UTC)},
		{"Negative milliseconds borrow a second", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), -1, Millisecond, time.Date(1999, 12, 31, 23, 59, 59, 999000000, time.UTC)},
		{"Milliseconds keep nanoseconds", time.Date(2000, 1, 1, 0, 0, 0, 999999999, time.UTC), 1, Millisecond, time.Date(2000, 1, 1, 0, 0, 1, 999999, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := FromTime(tc.start)
			got := v.Add(tc.quantity, tc.unit)
			if !got.Time().Equal(tc.want) {
				t.Errorf("Add(%d, %s) = %s, want %s", tc.quantity, tc.unit, got.Time(), tc.want)
			}
			if alt := v.Subtract(-tc.quantity, tc.unit); !alt.Equal(got) {
				t.Errorf("Subtract(%d) = %s, want %s", -tc.quantity, alt, got)
			}
			if got.Zone() != v.Zone() {
				t.Errorf("zone changed by Add")
			}
		})
	}
}

func TestSubtractMirrorsAdd(t *testing.T) {
	v := mustFields(t, 2023, 5, 15, 12)
	for _, unit := range Units() {
		t.Run(unit.String(), func(t *testing.T) {
			if !v.Subtract(3, unit).Equal(v.Add(-3, unit)) {
				t.Errorf("Subtract(3) != Add(-3)")
			}
			if fixed, ok := unit.Duration(); ok {
				if got := v.Add(3, unit).Subtract(3, unit); !got.Equal(v) {
					t.Errorf("fixed unit %s not invertible: %s", unit, got)
				}
				if d := v.Add(3, unit).Time().Sub(v.Time()); d != 3*fixed {
					t.Errorf("Add(3) moved %s, want %s", d, 3*fixed)
				}
			}
		})
	}
}

func TestMonthArithmeticIsNotInvertibleAtMonthEnd(t *testing.T) {
	jan31 := mustFields(t, 2023, 1, 31)
	back := jan31.AddMonths(1).SubtractMonths(1)
	if back.Date() != 28 || back.MonthOfYear() != 1 {
		t.Errorf("Jan 31 + 1 month - 1 month = %s, want Jan 28", back)
	}
}

func TestConvenienceAdders(t *testing.T) {
	v := mustFields(t, 2023, 5, 15, 12, 0, 0)

	testCases := []struct {
		name string
		got  Value
		want Value
	}{
		{"AddYears", v.AddYears(2), v.Add(2, Year)},
		{"AddMonths", v.AddMonths(2), v.Add(2, Month)},
		{"AddWeeks", v.AddWeeks(2), v.Add(2, Week)},
		{"AddDays", v.AddDays(2), v.Add(2, Day)},
		{"AddHours", v.AddHours(2), v.Add(2, Hour)},
		{"AddMinutes", v.AddMinutes(2), v.Add(2, Minute)},
		{"AddSeconds", v.AddSeconds(2), v.Add(2, Second)},
		{"AddMilliseconds", v.AddMilliseconds(2), v.Add(2, Millisecond)},
		{"SubtractYears", v.SubtractYears(2), v.Add(-2, Year)},
		{"SubtractMonths", v.SubtractMonths(2), v.Add(-2, Month)},
		{"SubtractWeeks", v.SubtractWeeks(2), v.Add(-2, Week)},
		{"SubtractDays", v.SubtractDays(2), v.Add(-2, Day)},
		{"SubtractHours", v.SubtractHours(2), v.Add(-2, Hour)},
		{"SubtractMinutes", v.SubtractMinutes(2), v.Add(-2, Minute)},
		{"SubtractSeconds", v.SubtractSeconds(2), v.Add(-2, Second)},
		{"SubtractMilliseconds", v.SubtractMilliseconds(2), v.Add(-2, Millisecond)},
	}

	for _, tc := range testCases {
		if !tc.got.Equal(tc.want) {
			t.Errorf("%s = %s, want %s", tc.name, tc.got, tc.want)
		}
	}
}

func TestStartOfEndOf(t *testing.T) {
	// Wednesday
	v := FromTime(time.Date(2023, 5, 17, 14, 25, 36, 789000000, time.UTC))

	testCases := []struct {
		unit  Unit
		start time.Time
		end   time.Time
	}{
		{Year, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 31, 23, 59, 59, 999999999, time.UTC)},
		{Month, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 5, 31, 23, 59, 59, 999999999, time.UTC)},
		{Week, time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC), time.Date(2023, 5, 20, 23, 59, 59, 999999999, time.UTC)},
		{Day, time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC), time.Date(2023, 5, 17, 23, 59, 59, 999999999, time.UTC)},
		{Hour, time.Date(2023, 5, 17, 14, 0, 0, 0, time.UTC), time.Date(2023, 5, 17, 14, 59, 59, 999999999, time.UTC)},
		{Minute, time.Date(2023, 5, 17, 14, 25, 0, 0, time.UTC), time.Date(2023, 5, 17, 14, 25, 59, 999999999, time.UTC)},
		{Second, time.Date(2023, 5, 17, 14, 25, 36, 0, time.UTC), time.Date(2023, 5, 17, 14, 25, 36, 999999999, time.UTC)},
		{Millisecond, time.Date(2023, 5, 17, 14, 25, 36, 789000000, time.UTC), time.Date(2023, 5, 17, 14, 25, 36, 789999999, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.unit.String(), func(t *testing.T) {
			start := utcCalendar.StartOf(v, tc.unit)
			end := utcCalendar.EndOf(v, tc.unit)
			if !start.Time().Equal(tc.start) {
				t.Errorf("StartOf = %s, want %s", start.Time(), tc.start)
			}
			if !end.Time().Equal(tc.end) {
				t.Errorf("EndOf = %s, want %s", end.Time(), tc.end)
			}
			if again := utcCalendar.StartOf(start, tc.unit); !again.Equal(start) {
				t.Errorf("StartOf not idempotent: %s then %s", start, again)
			}
			if again := utcCalendar.EndOf(end, tc.unit); !again.Equal(end) {
				t.Errorf("EndOf not idempotent: %s then %s", end, again)
			}
		})
	}
}

func TestStartOfIdempotentForManyValues(t *testing.T) {
	values := []Value{
		mustFields(t, 2024, 2, 29, 23, 59, 59, 999),
		mustFields(t, 2023, 12, 31),
		mustFields(t, 2023, 1, 1, 0, 0, 0, 1),
		mustFields(t, 1999, 12, 31, 12),
	}
	for _, v := range values {
		for _, unit := range Units() {
			once := utcCalendar.StartOf(v, unit)
			if twice := utcCalendar.StartOf(once, unit); !twice.Equal(once) {
				t.Errorf("StartOf(%s, %s) not idempotent", v, unit)
			}
			if once.IsAfter(v) || utcCalendar.EndOf(v, unit).IsBefore(v) {
				t.Errorf("bucket of %s at %s does not contain it", v, unit)
			}
		}
	}
}

func TestEndOfMonthLeapYears(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		day   int
	}{
		{"February common year", "2023-02-15", 28},
		{"February leap year", "2024-02-15", 29},
		{"February century", "1900-02-10", 28},
		{"February 400 year", "2000-02-10", 29},
		{"April", "2023-04-30", 30},
		{"December", "2023-12-01", 31},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			end := utcCalendar.EndOf(mustParse(t, tc.input), Month)
			if end.Date() != tc.day {
				t.Errorf("EndOf(%s, month).Date() = %d, want %d", tc.input, end.Date(), tc.day)
			}
			if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 || end.Nanosecond() != 999999999 {
				t.Errorf("EndOf time = %s", end.Time())
			}
		})
	}
}

func TestStartOfUsesLocalView(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	cal := NewCalendar(FixedClock(time.Now(), tokyo))

	// 2023-05-31T20:00Z is June 1st 05:00 in Tokyo
	v := FromTime(time.Date(2023, 5, 31, 20, 0, 0, 0, time.UTC))

	day := cal.StartOf(v, Day)
	if want := time.Date(2023, 6, 1, 0, 0, 0, 0, tokyo); !day.Time().Equal(want) {
		t.Errorf("StartOf(day) = %s, want %s", day.Time(), want)
	}
	month := cal.StartOf(v, Month)
	if want := time.Date(2023, 6, 1, 0, 0, 0, 0, tokyo); !month.Time().Equal(want) {
		t.Errorf("StartOf(month) = %s, want %s", month.Time(), want)
	}
	hour := cal.StartOf(v, Hour)
	if want := time.Date(2023, 5, 31, 20, 0, 0, 0, time.UTC); !hour.Time().Equal(want) {
		t.Errorf("StartOf(hour) = %s, want %s", hour.Time(), want)
	}
	if day.Time().Location() != time.UTC {
		t.Errorf("boundary not stored in UTC")
	}

	// half hour offsets keep hour buckets in UTC
	india := NewCalendar(FixedClock(time.Now(), time.FixedZone("IST", 5*3600+1800)))
	if got := india.StartOf(v.AddMinutes(45), Hour); !got.Time().Equal(time.Date(2023, 5, 31, 20, 0, 0, 0, time.UTC)) {
		t.Errorf("hour bucket = %s", got.Time())
	}
}

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		year  int
		month int
		want  int
	}{
		{2023, 1, 31}, {2023, 2, 28}, {2024, 2, 29}, {2023, 4, 30},
		{2023, 12, 31}, {1900, 2, 28}, {2000, 2, 29}, {2023, 11, 30},
	}

	for _, tc := range testCases {
		v := mustFields(t, tc.year, tc.month, 1)
		if got := v.DaysInMonth(); got != tc.want {
			t.Errorf("DaysInMonth(%d-%02d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	testCases := []struct {
		year int
		want bool
	}{
		{2000, true}, {1900, false}, {2024, true}, {2023, false}, {2100, false}, {2400, true},
	}

	for _, tc := range testCases {
		if got := IsLeapYear(tc.year); got != tc.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.want)
		}
		if got := mustFields(t, tc.year, 3, 1).IsLeapYear(); got != tc.want {
			t.Errorf("Value.IsLeapYear(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}
