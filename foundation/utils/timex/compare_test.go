// File: compare_test.go
// Title: Comparison and Diff Tests
// Description: Tests for exact and unit-granular comparisons and for the
//              duration and calendar-field diffs.
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

func TestExactComparisons(t *testing.T) {
	early := mustParse(t, "2023-05-15 10:00:00")
	late := mustParse(t, "2023-05-15 10:00:00.001")
	sameInstant := early.WithZone(Zone{kind: ZoneHours, seconds: 3 * 3600})

	pairs := [][2]Value{{early, late}, {late, early}, {early, sameInstant}, {early, early}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		count := 0
		for _, ok := range []bool{a.IsBefore(b), a.IsSame(b), a.IsAfter(b)} {
			if ok {
				count++
			}
		}
		if count != 1 {
			t.Errorf("exactly one of before/same/after must hold for %s and %s", a, b)
		}
	}

	if !early.IsBefore(late) || late.IsBefore(early) {
		t.Error("IsBefore wrong")
	}
	if !late.IsAfter(early) {
		t.Error("IsAfter wrong")
	}
	if !early.IsSame(sameInstant) {
		t.Error("IsSame should ignore the zone hint")
	}
	if !early.IsSameOrBefore(sameInstant) || !early.IsSameOrBefore(late) || late.IsSameOrBefore(early) {
		t.Error("IsSameOrBefore wrong")
	}
	if !late.IsSameOrAfter(early) || !early.IsSameOrAfter(sameInstant) || early.IsSameOrAfter(late) {
		t.Error("IsSameOrAfter wrong")
	}
	if early.Compare(late) != -1 || late.Compare(early) != 1 || early.Compare(sameInstant) != 0 {
		t.Error("Compare wrong")
	}
}

func TestUnitComparisons(t *testing.T) {
	a := mustParse(t, "2023-05-15 08:00:00")
	b := mustParse(t, "2023-05-15 20:30:00")
	c := mustParse(t, "2023-05-16 00:00:00")

	testCases := []struct {
		name string
		got  bool
		want bool
	}{
		{"same day", utcCalendar.IsSameUnit(a, b, Day), true},
		{"not same hour", utcCalendar.IsSameUnit(a, b, Hour), false},
		{"not before at day", utcCalendar.IsBeforeUnit(a, b, Day), false},
		{"before at hour", utcCalendar.IsBeforeUnit(a, b, Hour), true},
		{"before next day", utcCalendar.IsBeforeUnit(b, c, Day), true},
		{"same week", utcCalendar.IsSameUnit(a, c, Week), true},
		{"same month", utcCalendar.IsSameUnit(a, c, Month), true},
		{"after at day", utcCalendar.IsAfterUnit(c, b, Day), true},
		{"same or before", utcCalendar.IsSameOrBeforeUnit(b, a, Day), true},
		{"same or after", utcCalendar.IsSameOrAfterUnit(a, b, Day), true},
		{"not same or after", utcCalendar.IsSameOrAfterUnit(a, c, Day), false},
		{"millisecond is exact", utcCalendar.IsSameUnit(a, a.AddMilliseconds(1), Millisecond), false},
		{"sub millisecond differs", utcCalendar.IsBeforeUnit(a, FromTime(a.Time().Add(time.Microsecond)), Millisecond), true},
	}

	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestIsBetween(t *testing.T) {
	start := mustParse(t, "2023-05-01")
	mid := mustParse(t, "2023-05-15")
	end := mustParse(t, "2023-05-31")

	testCases := []struct {
		name string
		v    Value
		want bool
	}{
		{"Middle", mid, true},
		{"Start excluded", start, false},
		{"End excluded", end, false},
		{"Before", mustParse(t, "2023-04-30"), false},
		{"After", mustParse(t, "2023-06-01"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.IsBetween(start, end); got != tc.want {
				t.Errorf("IsBetween = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsBetweenUnit(t *testing.T) {
	start := mustParse(t, "2023-05-01 09:00")
	end := mustParse(t, "2023-05-03 18:00")

	// same day as start is excluded after flooring
	if utcCalendar.IsBetweenUnit(mustParse(t, "2023-05-01 23:00"), start, end, Day) {
		t.Error("value on the start day should be excluded at day granularity")
	}
	if !utcCalendar.IsBetweenUnit(mustParse(t, "2023-05-02 00:00"), start, end, Day) {
		t.Error("value on the middle day should be included")
	}
	if utcCalendar.IsBetweenUnit(mustParse(t, "2023-05-03 01:00"), start, end, Day) {
		t.Error("value on the end day should be excluded at day granularity")
	}
	if !utcCalendar.IsBetweenUnit(mustParse(t, "2023-05-01 23:00"), start, end, Hour) {
		t.Error("hour granularity should include the start day evening")
	}
}

func TestDiff(t *testing.T) {
	testCases := []struct {
		name string
		a    string
		b    string
		unit Unit
		want int64
	}{
		{"Days", "2023-05-20", "2023-05-15", Day, 5},
		{"Negative days", "2023-05-15", "2023-05-20", Day, -5},
		{"Partial day truncates", "2023-05-20 23:59:59", "2023-05-15", Day, 5},
		{"Negative partial truncates toward zero", "2023-05-15", "2023-05-20 12:00", Day, -5},
		{"Months ignore day", "2023-05-20", "2023-01-15", Month, 4},
		{"Months ignore later day", "2023-05-01", "2023-01-31", Month, 4},
		{"Months across years", "2024-02-01", "2022-11-30", Month, 15},
		{"Years", "2024-01-01", "2023-12-31", Year, 1},
		{"Weeks", "2023-05-29", "2023-05-15", Week, 2},
		{"Hours", "2023-05-15 12:30", "2023-05-15 10:00", Hour, 2},
		{"Minutes", "2023-05-15 12:30", "2023-05-15 10:00", Minute, 150},
		{"Seconds", "2023-05-15 00:01:00", "2023-05-15", Second, 60},
		{"Milliseconds", "2023-05-15 00:00:01.250", "2023-05-15", Millisecond, 1250},
		{"Days across four centuries", "2023-01-01", "1600-01-01", Day, 154498},
		{"Negative days across four centuries", "1600-01-01", "2023-01-01", Day, -154498},
		{"Hours across four centuries", "2023-01-01", "1600-01-01", Hour, 154498 * 24},
		{"Negative sub-second milliseconds", "2023-05-15 00:00:00.500", "2023-05-15 00:00:01", Millisecond, -500},
		{"Negative sub-second seconds", "2023-05-15 00:00:00.500", "2023-05-15 00:00:01", Second, 0},
		{"Borrowed second", "2023-05-15 00:00:01.250", "2023-05-15 00:00:00.750", Millisecond, 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)
			if got := Diff(a, b, tc.unit); got != tc.want {
				t.Errorf("Diff(%s, %s, %s) = %d, want %d", tc.a, tc.b, tc.unit, got, tc.want)
			}
			if got := a.Diff(b, tc.unit); got != tc.want {
				t.Errorf("Value.Diff = %d, want %d", got, tc.want)
			}
		})
	}
}
