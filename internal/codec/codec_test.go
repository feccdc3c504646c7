package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
	"github.com/msto63/dayx/foundation/utils/timex"
)

func tokyoCalendar() *timex.Calendar {
	loc := time.FixedZone("JST", 9*3600)
	return timex.NewCalendar(timex.FixedClock(time.Date(2023, 5, 15, 12, 0, 0, 0, loc), loc))
}

func TestToObject(t *testing.T) {
	zone, err := timex.ParseZone("+08:00")
	require.NoError(t, err)

	v, err := timex.ParseInZone("2019-01-25T00:00:00Z", zone)
	require.NoError(t, err)

	obj := ToObject(v)
	assert.Equal(t, "+08:00", obj.TZ)
	assert.Equal(t, "2019-01-25T00:00:00.000Z", obj.Time)
}

func TestFromObject(t *testing.T) {
	cal := tokyoCalendar()

	tests := []struct {
		name     string
		obj      Object
		wantISO  string
		wantZone string
	}{
		{"offset zone", Object{TZ: "+08:00", Time: "2019-01-25T00:00:00Z"}, "2019-01-25T00:00:00.000Z", "+08:00"},
		{"hour zone", Object{TZ: "-5", Time: "2019-01-25 10:00:00 +02:00"}, "2019-01-25T08:00:00.000Z", "-5"},
		{"region zone", Object{TZ: "Europe/Berlin", Time: "2019-01-25"}, "2019-01-25T00:00:00.000Z", "Europe/Berlin"},
		{"empty zone is local", Object{Time: "2019-01-25T00:00:00Z"}, "2019-01-25T00:00:00.000Z", "+09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromObjectIn(cal, tt.obj)
			require.NoError(t, err)
			assert.Equal(t, tt.wantISO, v.ToISO())
			assert.Equal(t, tt.wantZone, v.Zone().String())
		})
	}
}

func TestFromObject_Errors(t *testing.T) {
	cal := tokyoCalendar()

	_, err := FromObjectIn(cal, Object{TZ: "+01:00"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTime))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeRequiredField))

	_, err = FromObjectIn(cal, Object{Time: "not a date"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, timex.ErrParse))
	assert.Contains(t, err.Error(), "not a date")

	_, err = FromObjectIn(cal, Object{TZ: "+99:00", Time: "2019-01-25"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, timex.ErrInvalidZone))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cal := tokyoCalendar()
	zone, err := timex.ParseZone("+05:30")
	require.NoError(t, err)

	v, err := timex.ParseInZone("2023-05-15T10:50:45.123Z", zone)
	require.NoError(t, err)

	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(v, format)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			got, err := Decode(cal, data, format)
			require.NoError(t, err)
			assert.True(t, v.Equal(got), "got %s, want %s", got, v)
		})
	}
}

func TestEncode_Shapes(t *testing.T) {
	zone, err := timex.ParseZone("+08:00")
	require.NoError(t, err)
	v, err := timex.ParseInZone("2019-01-25T00:00:00Z", zone)
	require.NoError(t, err)

	data, err := Encode(v, FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tz":"+08:00","time":"2019-01-25T00:00:00.000Z"}`, string(data))

	data, err = Encode(v, FormatYAML)
	require.NoError(t, err)
	assert.YAMLEq(t, "tz: \"+08:00\"\ntime: \"2019-01-25T00:00:00.000Z\"\n", string(data))
}

func TestEncode_CBORDeterministic(t *testing.T) {
	v, err := timex.ParseInZone("2019-01-25T00:00:00Z", timex.UTC)
	require.NoError(t, err)

	a, err := Encode(v, FormatCBOR)
	require.NoError(t, err)
	b, err := Encode(v.Clone(), FormatCBOR)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_Invalid(t *testing.T) {
	_, err := Encode(timex.Value{}, FormatJSON)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	v, err := timex.ParseInZone("2019-01-25", timex.UTC)
	require.NoError(t, err)
	_, err = Encode(v, Format("xml"))
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(tokyoCalendar(), []byte("{not json"), FormatJSON)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))

	_, err = Decode(tokyoCalendar(), []byte{0xff, 0x00}, FormatCBOR)
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"json": FormatJSON, "YAML": FormatYAML, "yml": FormatYAML, " cbor ": FormatCBOR}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
}
