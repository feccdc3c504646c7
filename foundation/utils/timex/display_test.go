// File: display_test.go
// Title: Display Helper Tests
// Description: Tests for fixed renderings, strftime directives, local
//              rendering and text marshalling.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-12-14 v0.2.0: dayjs style renderings

package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFixedRenderings(t *testing.T) {
	v := mustFields(t, 2019, 1, 25, 2, 0, 0)

	testCases := []struct {
		name string
		got  string
		want string
	}{
		{"ToISO", v.ToISO(), "2019-01-25T02:00:00.000Z"},
		{"ToUTCString", v.ToUTCString(), "2019-01-25 02:00:00 +00:00"},
		{"ToGMT", v.ToGMT(), "Fri, 25 Jan 2019 02:00:00 GMT"},
		{"ToArray", v.ToArray(), "[ 2019, 0, 25, 2, 0, 0, 0 ]"},
		{"String", v.String(), "2019-01-25 02:00:00 UTC"},
		{"String with fraction", v.AddMilliseconds(120).String(), "2019-01-25 02:00:00.12 UTC"},
		{"ToISO nanoseconds", FromTime(v.Time().Add(1500)).ToISO(), "2019-01-25T02:00:00.000001500Z"},
		{"Invalid", Value{}.String(), "Invalid Date"},
	}

	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	v := mustFields(t, 2023, 5, 7, 15, 4, 5, 6)

	testCases := []struct {
		template string
		want     string
	}{
		{"%Y-%m-%d %H:%M:%S", "2023-05-07 15:04:05"},
		{"%y/%m/%e", "23/05/ 7"},
		{"%I:%M %p", "03:04 PM"},
		{"%a %A %b %B", "Sun Sunday May May"},
		{"%j", "127"},
		{"%S.%L", "05.006"},
		{"%f", "006000000"},
		{"%z %:z %Z", "+0000 +00:00 UTC"},
		{"%s", "1683471845"},
		{"%F %T", "2023-05-07 15:04:05"},
		{"100%% done", "100% done"},
		{"%Q unknown", "%Q unknown"},
		{"trailing %", "trailing %"},
		{"no directives", "no directives"},
		{"%D %R", "05/07/23 15:04"},
		{"%:x and %E", "%:x and %E"},
		{"%%Y", "%Y"},
	}

	for _, tc := range testCases {
		t.Run(tc.template, func(t *testing.T) {
			if got := v.Format(tc.template); got != tc.want {
				t.Errorf("Format(%q) = %q, want %q", tc.template, got, tc.want)
			}
		})
	}

	midnight := mustFields(t, 2023, 5, 7)
	if got := midnight.Format("%I %p"); got != "12 AM" {
		t.Errorf("midnight 12-hour = %q", got)
	}
}

func TestToLocalString(t *testing.T) {
	cal := NewCalendar(FixedClock(time.Now(), time.FixedZone("HOST", -4*3600)))
	v := mustFields(t, 2019, 1, 25)

	offset, _ := ParseZone("+08:00")
	hours, _ := ParseZone("9")
	region, _ := ParseZone("Asia/Shanghai")

	testCases := []struct {
		name string
		zone Zone
		want string
	}{
		{"Offset", offset, "2019-01-25T08:00:00+08:00"},
		{"Hours", hours, "2019-01-25T09:00:00+09:00"},
		{"Region uses host", region, "2019-01-24T20:00:00-04:00"},
		{"UTC", UTC, "2019-01-25T00:00:00+00:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.ToLocalString(v.WithZone(tc.zone)); got != tc.want {
				t.Errorf("ToLocalString = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTextMarshalling(t *testing.T) {
	type payload struct {
		At Value `json:"at"`
	}

	in := payload{At: mustFields(t, 2023, 5, 15, 9, 30, 45, 500)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"at":"2023-05-15T09:30:45.500Z"}` {
		t.Errorf("JSON = %s", data)
	}

	var out payload
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !out.At.IsSame(in.At) {
		t.Errorf("round trip = %s, want %s", out.At, in.At)
	}

	if err := json.Unmarshal([]byte(`{"at":"yesterday"}`), &out); err == nil {
		t.Error("unparsable text accepted")
	}
}
