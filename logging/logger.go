// Package logging provides a leveled tracer for the declaration
// environment's internal events (insertion, normalization, resolution),
// distinct from -- and lower-level than -- any end-user diagnostic
// renderer a host tool layers on top.
package logging

import (
	"fmt"
	"sync"

	"github.com/pterm/pterm"
)

// Level controls which events a Logger prints.
type Level int

const (
	// LevelSilent prints nothing.
	LevelSilent Level = iota
	// LevelError prints only Error events.
	LevelError
	// LevelWarn prints Error and Warn events.
	LevelWarn
	// LevelVerbose prints everything, including Trace events.
	LevelVerbose
)

// ParseLevel maps a config/CLI-facing level name to a Level, defaulting to
// LevelVerbose for anything unrecognized.
func ParseLevel(name string) Level {
	switch name {
	case "silent":
		return LevelSilent
	case "error":
		return LevelError
	case "warning", "warn":
		return LevelWarn
	default:
		return LevelVerbose
	}
}

// Logger is a leveled tracer, safe for concurrent use: a CLI front-end may
// log from multiple goroutines even though the Environment it wraps is
// used single-threaded.
type Logger struct {
	level Level
	m     sync.Mutex
}

// New creates a Logger at the given level.
func New(level Level) *Logger {
	return &Logger{level: level}
}

// Level reports the logger's current level.
func (l *Logger) Level() Level {
	return l.level
}

// Trace logs a library-internal event: fragment inserted, alias
// normalized, type name resolved. Silent below LevelVerbose.
func (l *Logger) Trace(format string, args ...interface{}) {
	l.print(LevelVerbose, pterm.FgGray, "trace", format, args)
}

// Warn logs a recoverable anomaly (eg. a resolver miss the pass is about
// to tolerate). Silent below LevelWarn.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.print(LevelWarn, pterm.FgYellow, "warn", format, args)
}

// Error logs a terminal failure the caller is about to return as an
// error. Silent below LevelError.
func (l *Logger) Error(format string, args ...interface{}) {
	l.print(LevelError, pterm.FgRed, "error", format, args)
}

func (l *Logger) print(at Level, color pterm.Color, tag, format string, args []interface{}) {
	if l == nil || l.level < at {
		return
	}

	l.m.Lock()
	defer l.m.Unlock()

	msg := fmt.Sprintf(format, args...)
	pterm.Println(pterm.NewStyle(color).Sprintf("[%s] %s", tag, msg))
}
