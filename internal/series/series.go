// ============================================================================
// dayx - calendar-aware date-time toolkit
// ============================================================================
//
// Package:     series
// Description: Recurrence expansion (RFC 5545 RRULE) and cron occurrences
//              over timex values
// Author:      dayx team
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package series

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/teambition/rrule-go"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
	"github.com/msto63/dayx/foundation/utils/timex"
)

// DefaultMaxCount caps every expansion when no limit is configured
const DefaultMaxCount = 1000

// ErrInvalidRule is returned for malformed RRULE or cron text
var ErrInvalidRule = errors.New("invalid recurrence rule")

// Expander produces occurrence lists. Occurrences are computed in the wall
// clock of the start value's resolved zone and carry the start's zone hint.
//
// RRULE semantics apply: a monthly series from the 31st skips months without
// a 31st, unlike timex.Add which clamps. Sub-second parts of the start are
// dropped because RRULE works at second resolution.
type Expander struct {
	cal      *timex.Calendar
	maxCount int
}

// New creates an expander. A nil calendar uses timex.Default and a
// non-positive maxCount uses DefaultMaxCount.
func New(cal *timex.Calendar, maxCount int) *Expander {
	if cal == nil {
		cal = timex.Default()
	}
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}
	return &Expander{cal: cal, maxCount: maxCount}
}

// MaxCount returns the expansion cap
func (e *Expander) MaxCount() int {
	return e.maxCount
}

var frequencies = map[timex.Unit]rrule.Frequency{
	timex.Year:   rrule.YEARLY,
	timex.Month:  rrule.MONTHLY,
	timex.Week:   rrule.WEEKLY,
	timex.Day:    rrule.DAILY,
	timex.Hour:   rrule.HOURLY,
	timex.Minute: rrule.MINUTELY,
	timex.Second: rrule.SECONDLY,
}

// Expand returns count occurrences starting at start, every interval units
func (e *Expander) Expand(start timex.Value, unit timex.Unit, interval, count int) ([]timex.Value, error) {
	const op = "series.Expand"

	if err := e.checkStart(start, op); err != nil {
		return nil, err
	}
	freq, ok := frequencies[unit]
	if !ok {
		return nil, mdwerror.Wrap(timex.ErrUnknownUnit, fmt.Sprintf("unit %s cannot drive a recurrence", unit)).
			WithCode(mdwerror.CodeInvalidUnit).
			WithOperation(op).
			WithDetail("unit", unit.String())
	}
	if interval < 1 {
		return nil, rangeError(op, "interval", interval, e.maxCount)
	}
	if err := e.checkCount(op, count); err != nil {
		return nil, err
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Count:    count,
		Dtstart:  e.wall(start),
	})
	if err != nil {
		return nil, ruleError(op, fmt.Sprintf("FREQ=%v;INTERVAL=%d;COUNT=%d", freq, interval, count), err)
	}

	return e.collect(start, r.Iterator(), count), nil
}

// ExpandRule expands RRULE text (with or without the "RRULE:" prefix) from
// start, returning at most limit occurrences
func (e *Expander) ExpandRule(rule string, start timex.Value, limit int) ([]timex.Value, error) {
	const op = "series.ExpandRule"

	if err := e.checkStart(start, op); err != nil {
		return nil, err
	}
	if err := e.checkCount(op, limit); err != nil {
		return nil, err
	}

	r, err := e.rule(op, rule, start)
	if err != nil {
		return nil, err
	}
	return e.collect(start, r.Iterator(), limit), nil
}

// Between returns the occurrences of rule from start that fall inside the
// inclusive window [from, to]
func (e *Expander) Between(rule string, start, from, to timex.Value) ([]timex.Value, error) {
	const op = "series.Between"

	if err := e.checkStart(start, op); err != nil {
		return nil, err
	}
	if !from.IsValid() || !to.IsValid() || to.IsBefore(from) {
		return nil, mdwerror.New(fmt.Sprintf("window %s .. %s is empty", from, to)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}

	r, err := e.rule(op, rule, start)
	if err != nil {
		return nil, err
	}

	loc := e.location(start)
	times := r.Between(from.Time().In(loc), to.Time().In(loc), true)
	if len(times) > e.maxCount {
		times = times[:e.maxCount]
	}

	out := make([]timex.Value, 0, len(times))
	for _, t := range times {
		out = append(out, timex.FromTime(t).WithZone(start.Zone()))
	}
	return out, nil
}

// NextCron returns the next n firing instants of a standard five-field cron
// expression strictly after from, evaluated in from's resolved zone.
// Descriptors such as "@daily" and a CRON_TZ= prefix are accepted.
func (e *Expander) NextCron(spec string, from timex.Value, n int) ([]timex.Value, error) {
	const op = "series.NextCron"

	if err := e.checkStart(from, op); err != nil {
		return nil, err
	}
	if err := e.checkCount(op, n); err != nil {
		return nil, err
	}

	sched, err := cron.ParseStandard(strings.TrimSpace(spec))
	if err != nil {
		return nil, ruleError(op, spec, err)
	}

	out := make([]timex.Value, 0, n)
	t := e.wall(from)
	for len(out) < n {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		out = append(out, timex.FromTime(t).WithZone(from.Zone()))
	}
	return out, nil
}

func (e *Expander) rule(op, text string, start timex.Value) (*rrule.RRule, error) {
	text = strings.TrimSpace(text)
	if len(text) >= 6 && strings.EqualFold(text[:6], "RRULE:") {
		text = text[6:]
	}

	r, err := rrule.StrToRRule(text)
	if err != nil {
		return nil, ruleError(op, text, err)
	}
	r.DTStart(e.wall(start))
	return r, nil
}

func (e *Expander) collect(start timex.Value, next rrule.Next, limit int) []timex.Value {
	out := make([]timex.Value, 0, min(limit, 64))
	for len(out) < limit {
		t, ok := next()
		if !ok {
			break
		}
		out = append(out, timex.FromTime(t).WithZone(start.Zone()))
	}
	return out
}

func (e *Expander) location(v timex.Value) *time.Location {
	return v.Zone().Location(e.cal.Location())
}

func (e *Expander) wall(v timex.Value) time.Time {
	return v.Time().In(e.location(v))
}

func (e *Expander) checkStart(v timex.Value, op string) error {
	if v.IsValid() {
		return nil
	}
	return mdwerror.New("series start is not a valid date").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(op)
}

func (e *Expander) checkCount(op string, count int) error {
	if count < 1 || count > e.maxCount {
		return rangeError(op, "count", count, e.maxCount)
	}
	return nil
}

func rangeError(op, field string, value, limit int) error {
	return mdwerror.New(fmt.Sprintf("%s %d out of range 1..%d", field, value, limit)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetail("field", field).
		WithDetail("value", value)
}

func ruleError(op, rule string, cause error) error {
	return mdwerror.Wrap(ErrInvalidRule, fmt.Sprintf("rule %q: %v", rule, cause)).
		WithCode(mdwerror.CodeInvalidRule).
		WithOperation(op).
		WithDetail("input", rule)
}
