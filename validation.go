package envdsl

import (
	"maps"
	"slices"
)

// Result aggregates the outcomes of a whole configuration tree in traversal
// order. It is valid when nothing is missing or malformed; only then is the
// merged value defined. Successes are kept on invalid results too.
type Result struct {
	Successes       []Success
	MissingKeys     []MissingKey
	MalformedValues []MalformedValue

	value any
}

// Valid reports whether no key is missing or malformed.
func (r *Result) Valid() bool {
	return len(r.MissingKeys) == 0 && len(r.MalformedValues) == 0
}

// Value returns the merged value and true for a valid result, or nil and
// false. For a Shape the value is a map[string]any; for a Reader it is the
// reader's value (nil for an absent optional field).
func (r *Result) Value() (any, bool) {
	if !r.Valid() {
		return nil, false
	}
	return r.value, true
}

// Validate reads every leaf of node against env and folds the outcomes into
// one Result. It never stops at a failure.
func Validate(node Node, env Environ) *Result {
	switch n := node.(type) {
	case Reader:
		return lift(n.ReadEnv(env))
	case Shape:
		acc := &Result{value: map[string]any{}}
		for _, entry := range n {
			acc = merge(acc, entry.Name, Validate(entry.Node, env))
		}
		return acc
	default:
		// only a nil node gets here: the Node set is closed
		return &Result{MalformedValues: []MalformedValue{{
			Key:     "(nil)",
			Type:    "(none)",
			Message: "no reader or shape",
		}}}
	}
}

// lift turns a single outcome into a one-entry Result.
func lift(o Outcome) *Result {
	switch o := o.(type) {
	case Success:
		return &Result{Successes: []Success{o}, value: o.Value}
	case MissingKey:
		return &Result{MissingKeys: []MissingKey{o}}
	case MalformedValue:
		return &Result{MalformedValues: []MalformedValue{o}}
	default:
		return &Result{}
	}
}

// merge appends child's outcomes after acc's. When both are valid the value
// is acc's map extended with {name: child value}; otherwise it is undefined.
func merge(acc *Result, name string, child *Result) *Result {
	out := &Result{
		Successes:       slices.Concat(acc.Successes, child.Successes),
		MissingKeys:     slices.Concat(acc.MissingKeys, child.MissingKeys),
		MalformedValues: slices.Concat(acc.MalformedValues, child.MalformedValues),
	}
	if acc.Valid() && child.Valid() {
		parent, _ := acc.value.(map[string]any)
		value := make(map[string]any, len(parent)+1)
		maps.Copy(value, parent)
		value[name] = child.value
		out.value = value
	}
	return out
}
