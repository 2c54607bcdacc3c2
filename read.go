package envdsl

import (
	"log/slog"

	"github.com/dmitrymomot/envdsl/pkg/environment"
	"github.com/dmitrymomot/envdsl/pkg/logger"
)

// ReadConfig reads node against a fresh snapshot of the process environment
// (or the Environ given with WithEnviron) and returns its value: a
// map[string]any for a Shape, the parsed value for a Reader.
//
// If any key is missing or malformed it returns a *ConfigError listing all of
// them. Otherwise, unless Silent is set, the success report is emitted before
// returning.
//
// Example:
//
//	cfg, err := envdsl.ReadConfig(envdsl.Group(
//		envdsl.Field("port", envdsl.Number("PORT").Default(8080)),
//		envdsl.Field("token", envdsl.String("TOKEN").Sensitive()),
//	))
//	if err != nil {
//		log.Fatal(err)
//	}
func ReadConfig(node Node, opts ...Option) (any, error) {
	if node == nil {
		return nil, ErrNilNode
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	env := o.environ
	if env == nil {
		env = Snapshot()
	}

	result := Validate(node, env)
	if !result.Valid() {
		return nil, &ConfigError{Result: result}
	}

	if !o.silent {
		if o.slog != nil {
			logResult(o.slog, result, env.Name())
		} else {
			o.sink(ValidMessage(result))
		}
	}

	value, _ := result.Value()
	return value, nil
}

// MustReadConfig works like ReadConfig but panics with the returned error.
// Configuration errors are not recoverable at startup.
func MustReadConfig(node Node, opts ...Option) any {
	value, err := ReadConfig(node, opts...)
	if err != nil {
		panic(err)
	}
	return value
}

func logResult(l *slog.Logger, r *Result, env environment.Environment) {
	keys := make([]slog.Attr, len(r.Successes))
	for i, s := range r.Successes {
		keys[i] = logger.ConfigKey(s.Key, s.Type, successDisplay(s))
	}
	l.Info("configuration read",
		logger.Component("envdsl"),
		logger.Environment(env),
		logger.Group("config", keys...),
	)
}
