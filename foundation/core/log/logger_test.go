// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, derived loggers, and the JSON and
//              text formatters.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-12-14 v0.2.0: Formatter and correlation id tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"trc", LevelTrace, false},
		{"verbose", LevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %s, %v", f, err)
	}
	if f, err := ParseFormat("console"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(console) = %s, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered messages were written: %q", out)
	}
	if !strings.Contains(out, "[WRN] shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestDerivedLoggersAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	root := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf, Name: "dayx"})
	child := root.WithField("command", "parse").WithCorrelationID("abc-123")

	root.Info("root")
	child.Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if strings.Contains(lines[0], "command=") {
		t.Errorf("root logger picked up child field: %q", lines[0])
	}
	if !strings.Contains(lines[1], "{dayx} <abc-123> child command=parse") {
		t.Errorf("unexpected child line: %q", lines[1])
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	logger.Debug("fields", Fields{"zeta": 1, "alpha": 2, "mid": "x"})

	if !strings.Contains(buf.String(), "fields alpha=2 mid=x zeta=1") {
		t.Errorf("fields not sorted: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf, Name: "dayx"})

	cause := mdwerror.Wrap(errors.New("boom"), "parse \"x\"").WithCode(mdwerror.CodeParseFailed)
	logger.WithCorrelationID("id-1").ErrorWithErr("command failed", cause, String("input", "x"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	checks := map[string]interface{}{
		"level":          "error",
		"message":        "command failed",
		"logger":         "dayx",
		"correlation_id": "id-1",
		"error":          "parse \"x\": boom",
		"error_code":     "PARSE_FAILED",
		"error_severity": "low",
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}

	fields, ok := decoded["fields"].(map[string]interface{})
	if !ok || fields["input"] != "x" {
		t.Errorf("fields = %v", decoded["fields"])
	}
}

func TestErrFieldBecomesEntryError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.Warn("retrying", Err(errors.New("temporary")))

	if !strings.Contains(buf.String(), `error="temporary"`) {
		t.Errorf("error not rendered: %q", buf.String())
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Output: &buf}))
	GetDefault().Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not replaced: %q", buf.String())
	}
}
