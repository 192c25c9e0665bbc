// Package logging is a small leveled logger for judgekit's diagnostics.
//
// Judge answers go to stdout, so log messages go to stderr by default, or to
// a size-rotated file when Config.Logfile is set. Debug messages are dropped
// unless Config.Verbose is true.
package logging

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/natefinch/lumberjack"
)

// Config describes where log messages go. It is decoded from the [log]
// table of the TOML configuration file.
type Config struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
	Verbose bool   `toml:"verbose"`
}

var (
	mu      sync.Mutex
	std     = log.New(os.Stderr, "", log.LstdFlags)
	verbose bool
	rotator *lumberjack.Logger
)

// SetLogger applies c. A nil Config or an empty Logfile logs to stderr.
// Any file opened by a previous call is closed.
func (c *Config) SetLogger() {
	mu.Lock()
	defer mu.Unlock()

	closeRotator()
	if c == nil {
		verbose = false
		std.SetOutput(os.Stderr)
		return
	}
	verbose = c.Verbose
	if c.Logfile == "" {
		std.SetOutput(os.Stderr)
		return
	}
	rotator = &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}
	std.SetOutput(rotator)
}

// SetOutput sends log messages to w, leaving the verbosity unchanged.
// Tests use it to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeRotator()
	std.SetOutput(w)
}

// SetVerbose turns Debug messages on or off.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// Shutdown closes the log file, if any, and reverts to stderr.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	closeRotator()
	std.SetOutput(os.Stderr)
}

func closeRotator() {
	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}
}

func isVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// Debugf logs at DEBUG level; it is a no-op unless verbose.
func Debugf(format string, args ...interface{}) {
	if !isVerbose() {
		return
	}
	std.Printf(" DEBUG "+format, args...)
}

// Infof logs at INFO level.
func Infof(format string, args ...interface{}) {
	std.Printf(" INFO "+format, args...)
}

// Warningf logs at WARNING level.
func Warningf(format string, args ...interface{}) {
	std.Printf(" WARNING "+format, args...)
}

// Errorf logs at ERROR level.
func Errorf(format string, args ...interface{}) {
	std.Printf(" ERROR "+format, args...)
}
