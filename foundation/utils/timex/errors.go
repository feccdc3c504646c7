// File: errors.go
// Title: Temporal Error Sentinels
// Description: Sentinel errors and constructors for the failures the
//              construction entry points report.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-12-14
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-14 v0.2.0: Initial implementation

package timex

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
)

var (
	// ErrParse is returned when text matches no supported layout or
	// describes an impossible calendar date.
	ErrParse = errors.New("unrecognized date-time")

	// ErrInvalidTimestamp is returned for epoch numbers with an unsupported
	// digit count.
	ErrInvalidTimestamp = errors.New("not a 10 or 13 digit epoch timestamp")

	// ErrInvalidField is returned when explicit fields do not form a valid date.
	ErrInvalidField = errors.New("invalid calendar field")

	// ErrInvalidZone is returned for malformed or out of range zone hints.
	ErrInvalidZone = errors.New("invalid zone")

	// ErrUnknownUnit is returned by ParseUnit.
	ErrUnknownUnit = errors.New("unknown unit")
)

func parseError(input string) error {
	return mdwerror.Wrap(ErrParse, fmt.Sprintf("parse %q", input)).
		WithCode(mdwerror.CodeParseFailed).
		WithOperation("timex.Parse").
		WithDetail("input", input)
}

func timestampError(n int64) error {
	return mdwerror.Wrap(ErrInvalidTimestamp, fmt.Sprintf("epoch %d", n)).
		WithCode(mdwerror.CodeInvalidTimestamp).
		WithOperation("timex.FromEpoch").
		WithDetail("input", n)
}

func fieldError(op string, field string, value int) error {
	return mdwerror.Wrap(ErrInvalidField, fmt.Sprintf("%s: %s=%d", op, field, value)).
		WithCode(mdwerror.CodeInvalidField).
		WithOperation("timex."+op).
		WithDetails(map[string]interface{}{"field": field, "value": value})
}

func zoneError(input string, reason string) error {
	return mdwerror.Wrap(ErrInvalidZone, fmt.Sprintf("zone %q: %s", input, reason)).
		WithCode(mdwerror.CodeInvalidZone).
		WithOperation("timex.ParseZone").
		WithDetail("input", input)
}
