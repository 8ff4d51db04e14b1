package config

import "time"

const defaultPort = 3001

const (
	envDevelopment = "development"
	envProduction  = "production"
)

var defaultRapidShyp = RapidShyp{
	BaseURL: "https://api.rapidshyp.com",
	Timeout: 30 * time.Second,
}

// DefaultPort returns the default listen port.
func DefaultPort() int {
	return defaultPort
}

// DefaultEnv returns the default runtime environment.
func DefaultEnv() string {
	return envProduction
}

// DefaultRapidShyp returns the default upstream provider settings
// (without an API key, which has no default).
func DefaultRapidShyp() RapidShyp {
	return defaultRapidShyp
}
