// Package logger provides a small factory around Go's slog package with
// functional options and helper attribute constructors.
//
// The package exposes a single factory, New, that creates a *slog.Logger
// configured by a set of Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Pick per-environment defaults with WithEnvironment
//
// Helper constructors such as Group, Error, Component and ConfigKey live in
// attr.go and keep attribute naming consistent; the configuration reader uses
// ConfigKey to emit one group per variable when reporting through slog.
//
// # Usage
//
//	import "github.com/dmitrymomot/envdsl/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(environment.Current()),
//	        logger.WithAttr(logger.Component("billing")),
//	    )
//	    logger.SetAsDefault(log)
//	}
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil, so
// calls like log.Info("done", logger.Error(err)) need no nil check.
package logger
