// Package logging routes the editor's log lines to stderr or to a rotating
// log file, with a small leveled API over the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/natefinch/lumberjack"
)

// Config selects the log destination.
type Config struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
	Debug   bool   `toml:"debug"`
}

var debug atomic.Bool

// Setup applies c to the standard logger and returns a closer for the log
// file, if one was opened. With no Logfile, output goes to stderr.
func (c *Config) Setup() io.Closer {
	log.SetFlags(log.LstdFlags)
	if c == nil {
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}
	debug.Store(c.Debug)
	if c.Logfile == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}
	log.SetOutput(l)
	return l
}

// SetOutput sends log lines to w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetDebug toggles Debugf output.
func SetDebug(on bool) {
	debug.Store(on)
}

// Debugf logs at DEBUG level when debug output is enabled.
func Debugf(format string, args ...interface{}) {
	if debug.Load() {
		logf("DEBUG", format, args...)
	}
}

// Infof logs at INFO level.
func Infof(format string, args ...interface{}) {
	logf("INFO", format, args...)
}

// Warningf logs at WARNING level.
func Warningf(format string, args ...interface{}) {
	logf("WARNING", format, args...)
}

// Errorf logs at ERROR level.
func Errorf(format string, args ...interface{}) {
	logf("ERROR", format, args...)
}

func logf(level, format string, args ...interface{}) {
	_ = log.Output(3, " "+level+" "+fmt.Sprintf(format, args...))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
