// Package config provides file based configuration with environment overrides.
//
// Package: config
// Title: dayx Configuration Management
// Description: Loads TOML or YAML configuration into a nested key/value tree
//              and exposes typed getters with dot notation and defaults.
//              Environment variables named <PREFIX>_<KEY> override file values.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-12-14 v0.2.0: Removed file watching and rule validation, ordered
//                      discovery over explicit candidate paths
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("configs/config.toml", config.LoadOptions{
//		EnvPrefix: "DAYX",
//	})
//	if err != nil {
//		return err
//	}
//
//	zone := cfg.GetString("display.zone", "")     // DAYX_DISPLAY_ZONE wins
//	color := cfg.GetBool("display.color", true)
//
// Key lookup:
//
//   - "general.log_level" walks the [general] table
//   - the matching environment variable is DAYX_GENERAL_LOG_LEVEL
//   - a missing key returns the supplied default or the zero value
package config
