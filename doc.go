// Package envdsl reads typed application configuration from environment
// variables through a small declarative DSL.
//
// A configuration is described as a tree: leaves are field readers bound to a
// variable name (String, Number, Boolean, Duration, Array, Constant, Custom),
// branches are Groups of named fields. Reading the tree evaluates every leaf,
// keeps going past failures, and aggregates all outcomes into one Result, so a
// misconfigured process reports every missing or malformed variable in a
// single run instead of one per restart.
//
// # Usage
//
//	cfg, err := envdsl.ReadConfig(envdsl.Group(
//	    envdsl.Field("port", envdsl.Number("PORT").Default(8080)),
//	    envdsl.Field("debug", envdsl.Boolean("DEBUG").Optional(environment.Development)),
//	    envdsl.Field("db", envdsl.Group(
//	        envdsl.Field("url", envdsl.String("DB_URL")),
//	        envdsl.Field("password", envdsl.String("DB_PASSWORD").Sensitive()),
//	    )),
//	    envdsl.Field("hosts", envdsl.Array("HOSTS").Strings()),
//	))
//
// ReadConfig returns a map[string]any mirroring the tree. ReadInto decodes the
// same map into a struct with github.com/go-viper/mapstructure/v2:
//
//	type Config struct {
//	    Port  int  `config:"port"`
//	    Debug bool `config:"debug"`
//	}
//	cfg, err := envdsl.ReadInto[Config](shape)
//
// # Outcomes
//
// Reading one field produces exactly one Outcome: Success, MissingKey or
// MalformedValue. Missing and malformed values are data, not errors; they
// travel through Validate as values. Transform errors and panics inside
// parsing code are downgraded to MalformedValue at the parsing boundary.
//
// # Modifiers
//
// Optional, Default and Sensitive return new readers and never mutate the
// receiver. Optional and Default accept an environment gate: when non-empty,
// an absent variable is tolerated only if the runtime environment (APP_ENV)
// is a member of the gate, otherwise it is reported missing. Sensitive hides
// the value in reports without touching the value itself.
//
// # Reporting
//
// On success ReadConfig prints a column-aligned listing of every key, type and
// value to standard output (WithLogger, WithOutput and WithSlog redirect it,
// Silent suppresses it). On failure it returns a *ConfigError whose message
// lists every missing and malformed key; errors.Is(err, ErrInvalidConfig)
// holds for it.
//
// # Environment sampling
//
// Nothing is cached. Each ReadConfig call takes a fresh snapshot of the
// process environment and reads the whole tree against it; Read on a single
// reader consults the live environment on every call.
package envdsl
