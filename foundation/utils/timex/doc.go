// Package timex provides a calendar-aware date-time value with a tolerant
// multi-format parser and unit-granular arithmetic.
//
// Package: timex
// Title: dayx Temporal Values
// Description: Value couples a UTC instant with a display zone hint. The
//              package parses heterogeneous textual timestamps, performs
//              calendar-correct arithmetic, computes unit boundaries and
//              compares or diffs values at a chosen granularity.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial time utilities on top of time.Time
// - 2025-12-14 v0.2.0: Immutable Value type, zone hints, injected clock,
//                      ordered parser and unit arithmetic
//
// Construction:
//
//	v, err := timex.Parse("2023-05-15 09:30:45 +02:00")
//	v, err := timex.FromEpoch(1684147845)       // 10 digits: seconds
//	v, err := timex.FromEpoch(1684147845000)    // 13 digits: milliseconds
//	v, err := timex.FromFields(2024, 2, 29, 12) // month is 1-based
//	v, err := timex.FromArray([]int{2019, 0, 25})
//
// Construction fails loudly with a *mdwerror.Error that wraps ErrParse,
// ErrInvalidTimestamp or ErrInvalidField. Setters on an existing value
// never fail: an impossible result leaves the value unchanged.
//
// Arithmetic and boundaries:
//
//	next := v.Add(1, timex.Month)        // Jan 31 -> Feb 28/29
//	eom := v.EndOf(timex.Month)          // 23:59:59.999999999 on the last day
//	days := timex.Diff(a, b, timex.Day)  // truncated elapsed days
//
// Local views:
//
// Year, Month, Week and Day boundaries are computed in the local zone of a
// Clock. Package level functions use the host clock; tests and tools that
// need determinism build a Calendar from FixedClock:
//
//	cal := timex.NewCalendar(timex.FixedClock(ref, time.UTC))
//	start := cal.StartOf(v, timex.Week) // Sunday 00:00
//
// Zones:
//
// A Zone is a fixed offset ("+08:00"), a whole-hour offset (8) or a named
// region ("Asia/Shanghai"). Regions are labels only and are never resolved
// against a zone database; rendering falls back to the clock's location.
package timex
