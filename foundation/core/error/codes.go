// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across timex and the dayx CLI.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-12-14 v0.2.0: Added temporal codes, removed service/TCOL codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Temporal values
	CodeParseFailed      Code = "PARSE_FAILED"
	CodeInvalidTimestamp Code = "INVALID_TIMESTAMP"
	CodeInvalidField     Code = "INVALID_FIELD"
	CodeInvalidZone      Code = "INVALID_ZONE"
	CodeInvalidUnit      Code = "INVALID_UNIT"
	CodeInvalidRule      Code = "INVALID_RULE"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeParseFailed, CodeInvalidTimestamp, CodeInvalidField, CodeInvalidZone, CodeInvalidUnit, CodeInvalidRule,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeParseFailed, CodeInvalidTimestamp, CodeInvalidField, CodeInvalidZone, CodeInvalidUnit, CodeInvalidRule:
		return "temporal"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line tools.
// Input problems exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "temporal", "validation":
		return 2
	default:
		return 1
	}
}
