package env

import (
	"os"

	"github.com/lightpath-sim/lightpath/internal/envvar"
)

// Environment is the runtime environment the process believes it is in.
type Environment string

const (
	// Development is the default environment.
	Development Environment = "development"

	// Production enables production logging defaults.
	Production Environment = "production"
)

// FromEnv reads the environment from LIGHTPATH_ENV, defaulting to
// development.
func FromEnv() Environment {
	switch os.Getenv(envvar.LightpathEnv) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}
