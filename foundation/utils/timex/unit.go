// File: unit.go
// Title: Time Units
// Description: The closed set of granularities used for arithmetic,
//              boundaries, comparison and diffs.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-12-14
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-14 v0.2.0: Initial implementation

package timex

import (
	"fmt"
	"strings"
	"time"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
)

// Unit is a calendar or clock granularity
type Unit int

const (
	Year Unit = iota
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
)

// Units lists every unit from coarsest to finest
func Units() []Unit {
	return []Unit{Year, Month, Week, Day, Hour, Minute, Second, Millisecond}
}

// String returns the singular lower-case unit name
func (u Unit) String() string {
	switch u {
	case Year:
		return "year"
	case Month:
		return "month"
	case Week:
		return "week"
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	case Millisecond:
		return "millisecond"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// IsValid reports whether u is one of the defined units
func (u Unit) IsValid() bool {
	return u >= Year && u <= Millisecond
}

// Duration returns the fixed length of u. Month and Year have none.
func (u Unit) Duration() (time.Duration, bool) {
	switch u {
	case Week:
		return 7 * 24 * time.Hour, true
	case Day:
		return 24 * time.Hour, true
	case Hour:
		return time.Hour, true
	case Minute:
		return time.Minute, true
	case Second:
		return time.Second, true
	case Millisecond:
		return time.Millisecond, true
	default:
		return 0, false
	}
}

// ParseUnit accepts singular, plural and short unit names. "M" is month
// and "m" is minute; every other name is case-insensitive.
func ParseUnit(s string) (Unit, error) {
	text := strings.TrimSpace(s)
	switch text {
	case "M":
		return Month, nil
	case "m":
		return Minute, nil
	}

	switch strings.ToLower(text) {
	case "year", "years", "y":
		return Year, nil
	case "month", "months":
		return Month, nil
	case "week", "weeks", "w":
		return Week, nil
	case "day", "days", "d", "date":
		return Day, nil
	case "hour", "hours", "h":
		return Hour, nil
	case "minute", "minutes":
		return Minute, nil
	case "second", "seconds", "s":
		return Second, nil
	case "millisecond", "milliseconds", "ms":
		return Millisecond, nil
	}

	return 0, mdwerror.Wrap(ErrUnknownUnit, fmt.Sprintf("unit %q", s)).
		WithCode(mdwerror.CodeInvalidUnit).
		WithOperation("timex.ParseUnit").
		WithDetail("input", s)
}

// UnmarshalText lets units be used as flag and config values
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText renders the unit name
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
