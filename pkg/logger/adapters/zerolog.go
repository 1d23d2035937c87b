// Package adapters provides logger adapters for integrating external
// logging libraries with the statuspush logger interface.
package adapters

import (
	"github.com/rs/zerolog"

	"github.com/kart-io/statuspush/pkg/logger"
)

// ZerologAdapter adapts a zerolog.Logger to the logger.Logger interface.
type ZerologAdapter struct {
	zl    zerolog.Logger
	level logger.LogLevel
}

// NewZerologAdapter creates a new adapter around the given zerolog logger.
func NewZerologAdapter(zl zerolog.Logger, level logger.LogLevel) logger.Logger {
	return &ZerologAdapter{zl: zl, level: level}
}

// LogMode sets the log level and returns a new logger instance.
func (a *ZerologAdapter) LogMode(level logger.LogLevel) logger.Logger {
	return &ZerologAdapter{zl: a.zl, level: level}
}

// Info logs an informational message.
func (a *ZerologAdapter) Info(msg string, args ...any) {
	if a.level >= logger.Info {
		a.emit(a.zl.Info(), msg, args)
	}
}

// Warn logs a warning message.
func (a *ZerologAdapter) Warn(msg string, args ...any) {
	if a.level >= logger.Warn {
		a.emit(a.zl.Warn(), msg, args)
	}
}

// Error logs an error message.
func (a *ZerologAdapter) Error(msg string, args ...any) {
	if a.level >= logger.Error {
		a.emit(a.zl.Error(), msg, args)
	}
}

// Debug logs a debug message.
func (a *ZerologAdapter) Debug(msg string, args ...any) {
	if a.level >= logger.Debug {
		a.emit(a.zl.Debug(), msg, args)
	}
}

// emit attaches key-value pairs to the event and writes it.
// A trailing key without a value is recorded as-is.
func (a *ZerologAdapter) emit(e *zerolog.Event, msg string, args []any) {
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		var val any = "(no value)"
		if i+1 < len(args) {
			val = args[i+1]
		}
		e = e.Interface(key, val)
	}
	e.Msg(msg)
}
