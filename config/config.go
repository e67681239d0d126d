// Package config loads the TOML project configuration consumed by
// cmd/sigtool: the root namespace declarations are inserted under, the
// trace log level, and whether normalization should be run eagerly
// (every class/module alias normalized up front) rather than lazily (on
// first query).
//
// Modeled on chai's depm.LoadModule (a go-toml-backed project file
// loader).
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/aki19035vc/rbs/typing"
)

// tomlConfig is the on-disk shape of a project configuration file.
type tomlConfig struct {
	RootNamespace string `toml:"root_namespace"`
	LogLevel      string `toml:"log_level"`
	EagerMemo     bool   `toml:"eager_memo"`
}

// Config is a validated project configuration.
type Config struct {
	// RootNamespace is the namespace every top-level declaration is
	// implicitly nested under, beyond the root sentinel.
	RootNamespace typing.Namespace

	// LogLevel is the raw level name from the config file ("silent",
	// "error", "warning", or anything else for verbose), handed to
	// logging.ParseLevel by the caller.
	LogLevel string

	// EagerMemo requests that every class/module alias be normalized
	// immediately after loading, rather than lazily on first query.
	EagerMemo bool
}

// Load reads and validates the project configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open config file at %q: %w", path, err)
	}
	defer f.Close()

	tc := &tomlConfig{LogLevel: "warning"}
	if err := toml.NewDecoder(f).Decode(tc); err != nil {
		return nil, fmt.Errorf("error parsing config file at %q: %w", path, err)
	}

	return validate(tc)
}

func validate(tc *tomlConfig) (*Config, error) {
	ns := typing.RootNamespace

	if tc.RootNamespace != "" {
		for _, seg := range splitNamespace(tc.RootNamespace) {
			if !typing.IsValidIdentifier(seg) {
				return nil, fmt.Errorf("root_namespace segment %q is not a valid identifier", seg)
			}

			ns = ns.Append(seg)
		}
	}

	return &Config{
		RootNamespace: ns,
		LogLevel:      tc.LogLevel,
		EagerMemo:     tc.EagerMemo,
	}, nil
}

func splitNamespace(s string) []string {
	var segs []string
	start := 0

	for i := 0; i+1 < len(s); i++ {
		if s[i] == ':' && s[i+1] == ':' {
			if i > start {
				segs = append(segs, s[start:i])
			}
			start = i + 2
			i++
		}
	}

	if start < len(s) {
		segs = append(segs, s[start:])
	}

	return segs
}
