// Package validator provides composable, generic value rules used to refine
// configuration readers beyond their built-in parsing checks.
//
// A Rule pairs a Check predicate with the message reported when the check
// fails. Rules are evaluated with Apply, which runs every rule (it never stops
// at the first failure) and aggregates the failing messages into a
// ValidationErrors value satisfying the error interface.
//
// # Architecture
//
// Each source file groups a family of rules (`numeric_rules.go`,
// `string_rules.go`, `choice_rules.go`, `collection_rules.go`,
// `pattern_rules.go`). Every exported helper only builds a Rule; there is no
// global state, so rules can be shared freely between readers and goroutines.
//
// Core building blocks:
//   - Rule[T]           – Check func plus failure message
//   - ValidationErrors  – slice of messages implementing error
//   - Numeric           – constraint used by numeric helpers
//
// # Usage
//
//	port := envdsl.Number("PORT").Check(
//	    validator.Min(1.0),
//	    validator.Max(65535.0),
//	)
//
// Or directly:
//
//	err := validator.Apply(value, validator.NotEmpty(), validator.MaxLen(64))
//
// # Error Handling
//
// Apply returns nil when every rule passes. Otherwise it returns
// ValidationErrors whose Error joins the messages with "; ". Use
// ExtractValidationErrors or errors.As to inspect individual messages.
package validator
