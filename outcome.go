package envdsl

// Outcome is the result of reading one field: Success, MissingKey or
// MalformedValue. The set is closed.
type Outcome interface {
	outcome()
}

// Success carries a parsed value. Value is nil for an absent optional field.
type Success struct {
	Key       string
	Type      string
	Value     any
	Sensitive bool
}

// MissingKey reports a required variable that is not set.
type MissingKey struct {
	Key  string
	Type string
}

// MalformedValue reports a variable that is set but failed parsing or
// validation. Raw is the unparsed text; Message is empty when no reason is known.
type MalformedValue struct {
	Key       string
	Type      string
	Raw       string
	Sensitive bool
	Message   string
}

func (Success) outcome()        {}
func (MissingKey) outcome()     {}
func (MalformedValue) outcome() {}
