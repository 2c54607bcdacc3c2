package logger

import (
	"log/slog"

	"github.com/dmitrymomot/envdsl/pkg/environment"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Environment records the runtime environment under the key "env".
// If env is empty, it returns an empty Attr.
func Environment(env environment.Environment) slog.Attr {
	if env == "" {
		return slog.Attr{}
	}
	return slog.String("env", string(env))
}

// ConfigKey records a configuration entry under its variable name, carrying
// the type and the display value.
func ConfigKey(key, typeName, display string) slog.Attr {
	return Group(key,
		slog.String("type", typeName),
		slog.String("value", display),
	)
}
