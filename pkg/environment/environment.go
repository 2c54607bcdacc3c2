package environment

import (
	"slices"

	"github.com/caarlos0/env/v11"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
	// Test for automated test runs.
	Test Environment = "test"
)

// Key is the variable holding the runtime environment name.
const Key = "APP_ENV"

type settings struct {
	Name Environment `env:"APP_ENV"`
}

// Current returns the runtime environment named by APP_ENV in the process
// environment. It is sampled on every call.
func Current() Environment {
	s, err := env.ParseAs[settings]()
	if err != nil {
		return ""
	}
	return s.Name
}

// FromMap returns the runtime environment named by APP_ENV in vars.
func FromMap(vars map[string]string) Environment {
	if vars == nil {
		// a nil map makes env fall back to the process environment
		return ""
	}
	var s settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: vars}); err != nil {
		return ""
	}
	return s.Name
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

// In reports whether e is an exact member of envs.
func (e Environment) In(envs ...Environment) bool {
	return slices.Contains(envs, e)
}

// Allows reports whether the gate permits current. An empty gate allows
// everything; a non-empty one requires a non-empty current member.
func Allows(current Environment, gate ...Environment) bool {
	if len(gate) == 0 {
		return true
	}
	return current != "" && current.In(gate...)
}

// IsProduction checks if the environment is production.
func (e Environment) IsProduction() bool {
	return e == Production || e == "prod"
}

// IsDevelopment checks if the environment is development.
func (e Environment) IsDevelopment() bool {
	return e == Development || e == "dev"
}

// IsStaging checks if the environment is staging.
func (e Environment) IsStaging() bool {
	return e == Staging || e == "stage"
}
