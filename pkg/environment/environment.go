// Package environment names the deployment environments the site runs in.
package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Normalize maps short aliases ("dev", "stage", "prod") and mixed case to the
// canonical values. Unknown values fall back to Development.
func (e Environment) Normalize() Environment {
	switch strings.ToLower(strings.TrimSpace(string(e))) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool {
	return e.Normalize() == Production
}

func (e Environment) IsDevelopment() bool {
	return e.Normalize() == Development
}
