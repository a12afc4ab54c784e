package renderer

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// silentLogger discards everything
type silentLogger struct{}

func (silentLogger) Printf(string, ...interface{}) {}

// NewSilentLogger creates a logger that discards all output
func NewSilentLogger() core.Logger {
	return silentLogger{}
}
