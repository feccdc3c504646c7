// File: display.go
// Title: Display Helpers
// Description: Fixed textual renderings of a value, a strftime style
//              formatter and text marshalling. All renderings except the
//              local string read UTC fields.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-25 v0.1.0: Go layout based formatting
// - 2025-12-14 v0.2.0: dayjs style renderings and strftime directives

package timex

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

const (
	isoLayout     = "2006-01-02T15:04:05.000Z"
	isoNanoLayout = "2006-01-02T15:04:05.000000000Z"
	utcLayout     = "2006-01-02 15:04:05"
	gmtLayout     = "Mon, 02 Jan 2006 15:04:05 GMT"
	stringLayout  = "2006-01-02 15:04:05.999999999 UTC"
)

// ToISO renders "2019-01-25T02:00:00.000Z". Nine fractional digits are
// used when the value carries sub-millisecond precision so that the
// rendering always parses back to the same instant. Years outside
// 0000..9999 use the expanded form "+010000-03-01T00:00:00.000Z".
func (v Value) ToISO() string {
	layout := isoLayout
	if v.instant.Nanosecond()%int(time.Millisecond) != 0 {
		layout = isoNanoLayout
	}
	if y := v.instant.Year(); y < 0 || y > 9999 {
		sign := "+"
		if y < 0 {
			sign, y = "-", -y
		}
		return fmt.Sprintf("%s%06d", sign, y) + v.instant.Format(layout[len("2006"):])
	}
	return v.instant.Format(layout)
}

// ToUTCString renders "2019-01-25 00:00:00 +00:00"
func (v Value) ToUTCString() string {
	return v.instant.Format(utcLayout) + " +00:00"
}

// ToGMT renders "Fri, 25 Jan 2019 00:00:00 GMT"
func (v Value) ToGMT() string {
	return v.instant.Format(gmtLayout)
}

// ToArray renders "[ 2019, 0, 25, 0, 0, 0, 0 ]" with a 0-based month, in
// the element order FromArray accepts
func (v Value) ToArray() string {
	return fmt.Sprintf("[ %d, %d, %d, %d, %d, %d, %d ]",
		v.Year(), v.Month(), v.Date(), v.Hour(), v.Minute(), v.Second(), v.Millisecond())
}

// Array returns the FromArray element slice of v
func (v Value) Array() []int {
	return []int{v.Year(), v.Month(), v.Date(), v.Hour(), v.Minute(), v.Second(), v.Millisecond()}
}

// String renders "2019-01-25 00:00:00 UTC"
func (v Value) String() string {
	if !v.valid {
		return "Invalid Date"
	}
	return v.instant.Format(stringLayout)
}

// ToLocalString renders v in its resolved zone using the host clock
func (v Value) ToLocalString() string {
	return Default().ToLocalString(v)
}

// MarshalText renders ToISO
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.ToISO()), nil
}

// UnmarshalText parses text with Parse
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Format renders v using strftime directives on the UTC fields:
//
//	%Y year           %y two digit year  %m month 01-12    %d day 01-31
//	%e day, padded    %j day of year     %H hour 00-23     %I hour 01-12
//	%p AM/PM          %M minute          %S second         %L milliseconds
//	%f nanoseconds    %z +0000           %:z +00:00        %Z UTC
//	%a Mon            %A Monday          %b Jan            %B January
//	%s epoch seconds  %F %Y-%m-%d        %T %H:%M:%S       %% literal %
//
// The remaining strftime(3) directives are supported as well. Unknown
// directives are copied through unchanged.
func (v Value) Format(template string) string {
	out, err := strftime.Format(escapeUnknown(template), v.instant, strftime.WithSpecificationSet(formatSpecs))
	if err != nil {
		return template
	}
	return out
}

// colonZone is the internal verb that %:z is rewritten to
const colonZone = 'Q'

var formatSpecs = newFormatSpecs()

func newFormatSpecs() strftime.SpecificationSet {
	ss := strftime.NewSpecificationSet()
	extra := map[byte]strftime.Appender{
		'L': strftime.Milliseconds(),
		's': strftime.UnixSeconds(),
		'f': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return fmt.Appendf(b, "%09d", t.Nanosecond())
		}),
		colonZone: strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return t.AppendFormat(b, "-07:00")
		}),
	}
	for verb, a := range extra {
		if err := ss.Set(verb, a); err != nil {
			panic(err)
		}
	}
	return ss
}

// escapeUnknown rewrites %:z to the internal verb and escapes every
// directive the specification set does not know, including a trailing %
func escapeUnknown(template string) string {
	var b strings.Builder
	b.Grow(len(template) + 8)

	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch != '%' {
			b.WriteByte(ch)
			continue
		}
		if i == len(template)-1 {
			b.WriteString("%%")
			break
		}

		i++
		verb := template[i]
		switch {
		case verb == ':' && i+1 < len(template) && template[i+1] == 'z':
			i++
			b.WriteByte('%')
			b.WriteByte(colonZone)
		case verb == '%':
			b.WriteString("%%")
		case verb == colonZone || !knownVerb(verb):
			b.WriteString("%%")
			b.WriteByte(verb)
		default:
			b.WriteByte('%')
			b.WriteByte(verb)
		}
	}

	return b.String()
}

func knownVerb(verb byte) bool {
	_, err := formatSpecs.Lookup(verb)
	return err == nil
}
