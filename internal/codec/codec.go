// ============================================================================
// dayx - calendar-aware date-time toolkit
// ============================================================================
//
// Package:     codec
// Description: Structured {tz, time} object form of a timex value, encoded
//              as JSON, YAML or CBOR
// Author:      dayx team
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
	"github.com/msto63/dayx/foundation/utils/timex"
)

// ErrMissingTime is returned when an object carries no time member
var ErrMissingTime = errors.New("object has no time")

// Object is the structured form of a value. Time is an ISO 8601 instant and
// TZ a zone hint accepted by timex.ParseZone; an empty TZ means local.
type Object struct {
	TZ   string `json:"tz,omitempty" yaml:"tz,omitempty" cbor:"1,keyasint,omitempty"`
	Time string `json:"time" yaml:"time" cbor:"2,keyasint"`
}

// Format selects the wire encoding of an object
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats returns the supported encodings
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCBOR}
}

// ParseFormat parses a format name; "yml" is accepted for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", unknownFormat("codec.ParseFormat", s)
	}
}

func unknownFormat(op, s string) error {
	return mdwerror.New(fmt.Sprintf("unknown object format %q", s)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation(op).
		WithDetail("input", s)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// objectEncMode encodes deterministically so equal objects yield equal bytes
var objectEncMode cbor.EncMode

var objectDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	objectEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create object CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	objectDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create object CBOR decoder mode: %v", err))
	}
}

// ToObject returns the structured form of v
func ToObject(v timex.Value) Object {
	return Object{
		TZ:   v.Zone().String(),
		Time: v.ToISO(),
	}
}

// FromObject builds a value with the default calendar
func FromObject(o Object) (timex.Value, error) {
	return FromObjectIn(timex.Default(), o)
}

// FromObjectIn builds a value from o. The time member is parsed with the
// calendar's parser; an empty tz keeps the calendar's local zone.
func FromObjectIn(cal *timex.Calendar, o Object) (timex.Value, error) {
	if strings.TrimSpace(o.Time) == "" {
		return timex.Value{}, mdwerror.Wrap(ErrMissingTime, "decode object").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("codec.FromObject").
			WithDetail("field", "time")
	}

	v, err := cal.Parse(o.Time)
	if err != nil {
		return timex.Value{}, err
	}

	if o.TZ == "" {
		return v.WithZone(cal.LocalZone()), nil
	}

	zone, err := timex.ParseZone(o.TZ)
	if err != nil {
		return timex.Value{}, err
	}
	return v.WithZone(zone), nil
}

// Encode renders the object form of v in the given format
func Encode(v timex.Value, format Format) ([]byte, error) {
	if !v.IsValid() {
		return nil, mdwerror.New("encode invalid value").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("codec.Encode")
	}

	obj := ToObject(v)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.Marshal(obj)
	case FormatYAML:
		data, err = yaml.Marshal(obj)
	case FormatCBOR:
		data, err = objectEncMode.Marshal(obj)
	default:
		return nil, unknownFormat("codec.Encode", string(format))
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("encode %s object", format)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("codec.Encode")
	}
	return data, nil
}

// Decode reads an object in the given format and builds its value with cal
func Decode(cal *timex.Calendar, data []byte, format Format) (timex.Value, error) {
	var (
		obj Object
		err error
	)
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &obj)
	case FormatYAML:
		err = yaml.Unmarshal(data, &obj)
	case FormatCBOR:
		err = objectDecMode.Unmarshal(data, &obj)
	default:
		return timex.Value{}, unknownFormat("codec.Decode", string(format))
	}
	if err != nil {
		return timex.Value{}, mdwerror.Wrap(err, fmt.Sprintf("decode %s object", format)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("codec.Decode")
	}

	return FromObjectIn(cal, obj)
}
