package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidBackend = goerr.New("invalid backend")
	ErrMissingFlag    = goerr.New("required flag is missing")
)

// Context keys for error values
const (
	BackendKey = "backend"
	FlagKey    = "flag"
)
