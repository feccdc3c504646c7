package version

import (
	"regexp"
	"runtime"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionIsSemver(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q is not semantic", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	testCases := []struct {
		name string
		got  string
		want string
	}{
		{"Name", info.Name, Name},
		{"Version", info.Version, Version},
		{"GoVersion", info.GoVersion, runtime.Version()},
		{"Platform", info.Platform, runtime.GOOS + "/" + runtime.GOARCH},
		{"String", info.String(), "dayx v" + Version + " (" + GitCommit + ")"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("%s = %q, want %q", tc.name, tc.got, tc.want)
			}
		})
	}
}
