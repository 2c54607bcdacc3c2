// Package environment names the runtime environment an application runs in
// (development, staging, production, test) and answers the one question the
// configuration readers ask about it: is the current environment allowed by a
// gate list?
//
// It defines the typed string alias Environment with predefined constants
// Development, Staging, Production and Test. The current value is read from
// the APP_ENV variable with github.com/caarlos0/env, either from the live
// process environment (Current) or from an in-memory variable map (FromMap).
//
// # Usage
//
//	current := environment.Current()
//	if environment.Allows(current, environment.Development, environment.Test) {
//	    // a missing key is tolerated here
//	}
//
// # Gates
//
// A gate is a list of environments. An empty gate allows every environment,
// including an unset one. A non-empty gate allows only its exact members and
// never allows an unset (empty) current environment. Comparison is exact: no
// case folding and no aliasing ("prod" is not "production").
//
// # Error Handling
//
// Helpers never return errors. A missing APP_ENV yields the zero value ("").
package environment
