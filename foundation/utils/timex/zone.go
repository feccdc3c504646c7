// File: zone.go
// Title: Zone Hints
// Description: Zone describes how a value should be rendered locally. It is
//              a fixed offset, a whole-hour offset or an inert region label
//              and never changes the stored instant.
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
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ZoneKind identifies the active variant of a Zone
type ZoneKind int

const (
	// ZoneOffset is a fixed hours:minutes offset
	ZoneOffset ZoneKind = iota

	// ZoneHours is a signed whole-hour offset
	ZoneHours

	// ZoneRegion is a named region such as "Asia/Shanghai"
	ZoneRegion
)

// String returns the variant name
func (k ZoneKind) String() string {
	switch k {
	case ZoneOffset:
		return "offset"
	case ZoneHours:
		return "hours"
	case ZoneRegion:
		return "region"
	default:
		return "unknown"
	}
}

const (
	minOffsetSeconds = -12 * 3600
	maxOffsetSeconds = 14 * 3600
	minOffsetHours   = -12
	maxOffsetHours   = 14
)

var (
	offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)
	hoursPattern  = regexp.MustCompile(`^[+-]?\d{1,2}$`)
	regionPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_+\-]*(/[A-Za-z0-9_+\-]+)*$`)
)

// Zone is a display zone hint. The zero Zone is the UTC offset.
type Zone struct {
	kind    ZoneKind
	seconds int
	name    string
}

// UTC is the zero offset zone
var UTC = Zone{kind: ZoneOffset}

// OffsetZone returns a fixed offset zone. The offset must lie in -12:00..+14:00.
func OffsetZone(seconds int) (Zone, error) {
	if seconds < minOffsetSeconds || seconds > maxOffsetSeconds {
		return Zone{}, zoneError(formatOffset(seconds), "offset out of range")
	}
	return Zone{kind: ZoneOffset, seconds: seconds}, nil
}

// HoursZone returns a whole-hour offset zone in -12..14.
func HoursZone(hours int) (Zone, error) {
	if hours < minOffsetHours || hours > maxOffsetHours {
		return Zone{}, zoneError(strconv.Itoa(hours), "hour offset out of range")
	}
	return Zone{kind: ZoneHours, seconds: hours * 3600}, nil
}

// RegionZone returns a named region zone. The name is kept as given.
func RegionZone(name string) (Zone, error) {
	if !regionPattern.MatchString(name) {
		return Zone{}, zoneError(name, "not a region name")
	}
	return Zone{kind: ZoneRegion, name: name}, nil
}

// ParseZone accepts "+08:00" or "+0800" (offset), "8" or "-5" (hours),
// "Z", "UTC" or "GMT" (zero offset) and region names.
func ParseZone(s string) (Zone, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Zone{}, zoneError(s, "empty")
	}

	switch strings.ToUpper(text) {
	case "Z", "UTC", "GMT":
		return UTC, nil
	}

	if m := offsetPattern.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		if minutes > 59 {
			return Zone{}, zoneError(s, "minutes out of range")
		}
		seconds := hours*3600 + minutes*60
		if m[1] == "-" {
			seconds = -seconds
		}
		zone, err := OffsetZone(seconds)
		if err != nil {
			return Zone{}, zoneError(s, "offset out of range")
		}
		return zone, nil
	}

	if hoursPattern.MatchString(text) {
		hours, _ := strconv.Atoi(text)
		return HoursZone(hours)
	}

	if text[0] == '+' || text[0] == '-' {
		return Zone{}, zoneError(s, "malformed offset")
	}
	return RegionZone(text)
}

// Kind returns the active variant
func (z Zone) Kind() ZoneKind {
	return z.kind
}

// Offset returns the offset in seconds east of UTC. Regions report false.
func (z Zone) Offset() (int, bool) {
	if z.kind == ZoneRegion {
		return 0, false
	}
	return z.seconds, true
}

// Name returns the region label, or the canonical text of an offset zone
func (z Zone) Name() string {
	if z.kind == ZoneRegion {
		return z.name
	}
	return z.String()
}

// String renders the zone so that ParseZone returns an equal Zone
func (z Zone) String() string {
	switch z.kind {
	case ZoneHours:
		return strconv.Itoa(z.seconds / 3600)
	case ZoneRegion:
		return z.name
	default:
		return formatOffset(z.seconds)
	}
}

// Location resolves the zone to a time.Location. Offsets become fixed
// zones; a region yields fallback, or time.Local when fallback is nil.
func (z Zone) Location(fallback *time.Location) *time.Location {
	if z.kind == ZoneRegion {
		if fallback == nil {
			return time.Local
		}
		return fallback
	}
	if z.seconds == 0 {
		return time.UTC
	}
	return time.FixedZone(formatOffset(z.seconds), z.seconds)
}

// zoneOf captures the offset of t in loc as a fixed offset hint
func zoneOf(t time.Time, loc *time.Location) Zone {
	_, offset := t.In(loc).Zone()
	return Zone{kind: ZoneOffset, seconds: offset}
}

func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
