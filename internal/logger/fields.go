package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldComponent names the subsystem emitting the entry.
	FieldComponent = "component"
	// FieldRequestID carries the HTTP request identifier.
	FieldRequestID = "request_id"
	// FieldPath is the source file of a loaded artifact or résumé.
	FieldPath = "path"
)

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced by a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	logger = OrNop(logger)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// Component returns logger tagged with the component name.
func Component(logger *zap.Logger, name string) *zap.Logger {
	name = strings.TrimSpace(name)
	if name == "" {
		return OrNop(logger)
	}
	return WithFields(logger, zap.String(FieldComponent, name))
}

// TruncateForLog shortens s to limit runes, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
