package config

import (
	"fmt"
	"regexp"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// emptyEndpointError explains why an [rpc_endpoints] entry expanded to nothing
func emptyEndpointError(networkName, rawValue string) error {
	if envVar, ok := DetectEnvVar(rawValue); ok {
		return fmt.Errorf("RPC URL for network '%s' is empty: set %s in the environment or .env", networkName, envVar)
	}
	return fmt.Errorf("RPC URL for network '%s' is empty", networkName)
}
