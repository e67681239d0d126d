// Package common holds the handful of constants shared across packages
// that would otherwise need to agree on a literal.
package common

// Version is the current module version string.
const Version string = "0.1.0"

// ConfigFileName is the conventional name for a project configuration
// file. Package config does not refer to it: config.Load takes an explicit
// path.
const ConfigFileName string = "sig-project.toml"
