// File: parse.go
// Title: Multi-Format Parser
// Description: Turns text into a UTC instant by trying an ordered chain of
//              layouts. Zone qualified layouts run before zoneless ones, and
//              text that visibly carries a zone never falls through to the
//              zoneless stage.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-25 v0.1.0: Layout list over time.Parse
// - 2025-12-14 v0.2.0: Ordered attempt chain, UTC suffix normalization,
//                      RFC 2822 zone names, zone suffix guard

package timex

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FormatAttempt is one step of the parser's fallback chain
type FormatAttempt struct {
	Layout string
	Zoned  bool
}

type stage int

const (
	stageStandard stage = iota
	stageZoned
	stageZoneless
	stageDateOnly
)

type attempt struct {
	FormatAttempt
	stage  stage
	rfc822 bool
}

var attempts = buildAttempts()

// zoneSuffix matches a clock time followed by something that denotes a zone
var zoneSuffix = regexp.MustCompile(
	`(?:\d{1,2}:\d{2}(?::\d{2}(?:[.,]\d+)?)?|T\d{4,6}(?:[.,]\d+)?)\s*(?:Z|[+-]\d{1,2}(?::?\d{2})?|[A-Za-z][A-Za-z_/]*)$`)

// expandedISO matches ISO 8601 expanded years such as +010000-03-01T00:00:00Z
var expandedISO = regexp.MustCompile(`^([+-])(\d{6})(-\d{2}-\d{2}T.+)$`)

// obsoleteZones maps RFC 2822 obsolete zone names to numeric offsets
var obsoleteZones = map[string]string{
	"GMT": "+0000",
	"UT":  "+0000",
	"UTC": "+0000",
	"Z":   "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

func buildAttempts() []attempt {
	var list []attempt
	add := func(s stage, layout string, zoned, rfc822 bool) {
		list = append(list, attempt{FormatAttempt: FormatAttempt{Layout: layout, Zoned: zoned}, stage: s, rfc822: rfc822})
	}

	add(stageStandard, time.RFC3339, true, false)
	for _, layout := range []string{
		"Mon, 2 Jan 2006 15:04:05 -0700",
		"2 Jan 2006 15:04:05 -0700",
		"Mon, 2 Jan 2006 15:04 -0700",
		"2 Jan 2006 15:04 -0700",
	} {
		add(stageStandard, layout, true, true)
	}

	dates := []string{"2006-01-02", "2006/01/02"}
	separators := []string{" ", "T"}
	clocks := []string{"15:04:05", "15:04"}
	zones := []string{" Z07:00", " Z0700", " Z07", "Z07:00", "Z0700", "Z07"}

	for _, d := range dates {
		for _, sep := range separators {
			for _, c := range clocks {
				for _, z := range zones {
					add(stageZoned, d+sep+c+z, true, false)
				}
			}
		}
	}
	for _, d := range dates {
		add(stageZoned, d+" Z07:00", true, false)
	}
	add(stageZoned, "20060102T150405Z0700", true, false)

	for _, d := range dates {
		for _, sep := range separators {
			for _, c := range clocks {
				add(stageZoneless, d+sep+c, false, false)
			}
		}
	}
	add(stageZoneless, "20060102T150405", false, false)

	for _, layout := range []string{
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
		"2006/1/2",
		"20060102",
		"02.01.2006",
		"2.1.2006",
		"02-01-2006",
	} {
		add(stageDateOnly, layout, false, false)
	}

	return list
}

// FormatAttempts returns the parser's layouts in the order they are tried
func FormatAttempts() []FormatAttempt {
	result := make([]FormatAttempt, len(attempts))
	for i, a := range attempts {
		result[i] = a.FormatAttempt
	}
	return result
}

// Parse converts text into a Value whose zone hint is the host's local
// offset. The instant is taken from the text; zoneless text is UTC.
func Parse(text string) (Value, error) {
	return Default().Parse(text)
}

// Parse is the calendar bound variant of the package function
func (c *Calendar) Parse(text string) (Value, error) {
	t, err := parseInstant(text)
	if err != nil {
		return Value{}, err
	}
	return newValue(t, c.LocalZone()), nil
}

// ParseInZone parses text and attaches zone as hint
func ParseInZone(text string, zone Zone) (Value, error) {
	t, err := parseInstant(text)
	if err != nil {
		return Value{}, err
	}
	return newValue(t, zone), nil
}

func parseInstant(text string) (time.Time, error) {
	s := normalize(text)
	if s == "" {
		return time.Time{}, parseError(text)
	}

	if m := expandedISO.FindStringSubmatch(s); m != nil {
		return parseExpanded(text, m)
	}

	rfc822 := replaceObsoleteZone(strings.TrimSpace(text))
	zoned := zoneSuffix.MatchString(s)

	for _, a := range attempts {
		if a.stage >= stageZoneless && zoned {
			break
		}
		input := s
		if a.rfc822 {
			input = rfc822
		}
		if t, err := time.Parse(a.Layout, input); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, parseError(text)
}

// normalize trims text and rewrites a trailing "UTC" marker as +00:00
func normalize(text string) string {
	s := strings.TrimSpace(text)
	if len(s) < 3 || !strings.EqualFold(s[len(s)-3:], "utc") {
		return s
	}
	head := strings.TrimSpace(s[:len(s)-3])
	if head == "" {
		return ""
	}
	return head + " +00:00"
}

func replaceObsoleteZone(s string) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return s
	}
	if offset, ok := obsoleteZones[strings.ToUpper(s[i+1:])]; ok {
		return s[:i+1] + offset
	}
	return s
}

// parseExpanded reads the date with a stand-in year of the same leap kind
// and moves the result to the real year
func parseExpanded(text string, m []string) (time.Time, error) {
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, parseError(text)
	}
	if m[1] == "-" {
		year = -year
	}

	proxy := 2001
	if IsLeapYear(year) {
		proxy = 2000
	}

	t, err := time.Parse(time.RFC3339, strconv.Itoa(proxy)+m[3])
	if err != nil {
		return time.Time{}, parseError(text)
	}
	t = t.UTC()
	return time.Date(t.Year()+year-proxy, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
}
