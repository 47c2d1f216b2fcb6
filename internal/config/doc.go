// Package config manages stagelist configuration.
//
// It handles:
//   - Loading and saving the JSON config file
//   - Validating config values
//   - Environment variable overrides
package config
