package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Schema records the schema name under the key "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Field records a field path under the key "field".
func Field(path string) slog.Attr {
	return slog.String("field", path)
}

// Fields records the field paths of a failed validation under the key "fields".
// If paths is empty, it returns an empty Attr.
func Fields(paths []string) slog.Attr {
	if len(paths) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", paths)
}

// Operation records the operation name under the key "op".
func Operation(name string) slog.Attr {
	return slog.String("op", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
