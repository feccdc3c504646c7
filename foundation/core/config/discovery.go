// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Picks the first existing configuration file from an ordered
//              candidate list and loads it.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-12-14 v0.2.0: Explicit ordered candidates instead of path matrix

package config

import (
	"os"
	"strings"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	Candidates []string // Files to try in order; empty entries are skipped
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// Discover loads the first candidate that exists. When none exists and the
// file is not required, an empty configuration with env overrides is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	for _, candidate := range options.Candidates {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return LoadWithOptions(candidate, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
	}

	if options.Required {
		return nil, mdwerror.New("no configuration file found").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("candidates", strings.Join(options.Candidates, ", "))
	}

	return Empty(options.EnvPrefix), nil
}
