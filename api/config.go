package api

import "time"

// default endpoint and timeouts
const (
	DefaultAPIURL  = "http://localhost:3000"
	DefaultTimeout = 30 * time.Second
)

// Config holds the client configuration. It is copied into the client on
// construction and never changed afterwards.
type Config struct {
	// APIURL is prepended verbatim to every endpoint path.
	APIURL string `json:"api_url" yaml:"api_url"`
	// APIKey is sent as a bearer token when non-empty.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	// Timeout bounds each request, from dial to the end of the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultConfig returns the local development configuration
func DefaultConfig() Config {
	return Config{
		APIURL:  DefaultAPIURL,
		Timeout: DefaultTimeout,
	}
}
