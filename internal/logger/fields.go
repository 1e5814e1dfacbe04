package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldStrategy is the structured log field key for the search strategy name.
	FieldStrategy = "strategy"
	// FieldPoolSize is the structured log field key for the number of candidates in the pool.
	FieldPoolSize = "pool_size"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced with a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// SearchFields returns the fields describing a search: the strategy and the pool size.
// An empty strategy is omitted.
func SearchFields(strategy string, poolSize int) []zap.Field {
	fields := StringFields(StringField{Key: FieldStrategy, Value: strategy})
	return append(fields, zap.Int(FieldPoolSize, poolSize))
}

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
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

// Candidates renders candidate labels for a log entry, truncating each of them to limit runes.
func Candidates(key string, labels []string, limit int) zap.Field {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		out = append(out, TruncateForLog(label, limit))
	}
	return zap.Strings(key, out)
}
