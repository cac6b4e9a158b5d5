// internal/logging/logging.go
package logging

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. Init replaces its level once the configuration is known.
var Log = NewLogger("info")

type requestIDKey struct{}

// Init sets the level of the global logger.
func Init(level string) {
	Log.SetLevel(ParseLevel(level))
}

// NewLogger creates a JSON logger writing to stdout at the given level.
func NewLogger(level string) *logrus.Logger {

	var log = logrus.New()

	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})

	// Default is stderr; the service logs to stdout.
	log.SetOutput(os.Stdout)
	log.SetLevel(ParseLevel(level))

	return log
}

// ParseLevel maps a configured level name to a logrus level. Unknown names mean info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// IsValidLevel reports whether level is one of the names ParseLevel understands.
func IsValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// WithRequestID stores the request identifier in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the identifier stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext returns an entry carrying the request id of ctx, if any.
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Log)
	if id := RequestID(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
