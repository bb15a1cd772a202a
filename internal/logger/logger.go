// Package logger provides verbose logging for menusearch.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow catalog loading, indexing
// and navigation handoffs.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr

	components sync.Map // map[string]*Component
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("[WARN] ", format, args...)
}

func write(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Component is a logger whose lines are tagged with a component name,
// e.g. "[DEBUG] [catalog] fetched 12 dishes".
type Component struct {
	tag string
}

// For returns the logger for a named component.
// Loggers are cached, so For can be called at the point of use.
func For(name string) *Component {
	if name == "" {
		name = "app"
	}
	if c, ok := components.Load(name); ok {
		return c.(*Component)
	}
	c, _ := components.LoadOrStore(name, &Component{tag: "[" + name + "] "})
	return c.(*Component)
}

// Debug prints a tagged debug message if verbose mode is enabled.
func (c *Component) Debug(format string, args ...any) {
	write("[DEBUG] "+c.tag, format, args...)
}

// Info prints a tagged informational message if verbose mode is enabled.
func (c *Component) Info(format string, args ...any) {
	write("[INFO] "+c.tag, format, args...)
}

// Warn prints a tagged warning if verbose mode is enabled.
func (c *Component) Warn(format string, args ...any) {
	write("[WARN] "+c.tag, format, args...)
}
