// Package diag provides a simple logging abstraction for the flint library.
//
// By default, the library uses a no-op logger that discards all output.
// Callers can configure logging by calling SetLogger with their preferred
// implementation.
//
// The package provides built-in support for zerolog via NewZerologAdapter,
// but any logger implementing the Logger interface can be used.
//
// Example with zerolog:
//
//	import (
//	    "os"
//	    "github.com/rs/zerolog"
//	    "github.com/flint-project/flint/internal/diag"
//	)
//
//	func main() {
//	    zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	    diag.SetLogger(diag.NewZerologAdapter(zlog))
//	    // ... use the flint library
//	}
package diag

import "sync"

// Field is a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the logging interface the flint library calls into. Loading a
// large install path produces diagnostics (skipped lines, dangling
// references); this interface lets a caller route them however it likes
// without the library forcing a particular logging stack on them.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

var (
	globalLogger Logger = &noopLogger{}
	mu           sync.RWMutex
)

// SetLogger sets the package-global logger. Pass nil to disable logging.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		globalLogger = &noopLogger{}
	} else {
		globalLogger = l
	}
}

// GetLogger returns the current package-global logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Debug logs at debug level using the global logger.
func Debug(msg string, fields ...Field) { GetLogger().Debug(msg, fields...) }

// Info logs at info level using the global logger.
func Info(msg string, fields ...Field) { GetLogger().Info(msg, fields...) }

// Warn logs at warn level using the global logger.
func Warn(msg string, fields ...Field) { GetLogger().Warn(msg, fields...) }

// Error logs at error level using the global logger.
func Error(msg string, fields ...Field) { GetLogger().Error(msg, fields...) }
