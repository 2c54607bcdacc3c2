package envdsl

import (
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/envdsl/pkg/environment"
)

// Environ is the variable store readers consult. Lookup distinguishes an
// unset variable from an empty one; Name reports the runtime environment used
// by Optional and Default gates.
type Environ interface {
	Lookup(key string) (string, bool)
	Name() environment.Environment
}

type processEnviron struct{}

// Process returns the live process environment. Every Lookup and Name call
// reads the current state.
func Process() Environ {
	return processEnviron{}
}

func (processEnviron) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (processEnviron) Name() environment.Environment {
	return environment.Current()
}

// Vars is an in-memory Environ.
type Vars map[string]string

// Snapshot copies the current process environment into Vars.
func Snapshot() Vars {
	return Vars(env.ToMap(os.Environ()))
}

func (v Vars) Lookup(key string) (string, bool) {
	value, ok := v[key]
	return value, ok
}

func (v Vars) Name() environment.Environment {
	return environment.FromMap(v)
}
