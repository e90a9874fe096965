package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/config"
)

// EndpointConfig overrides the default rate for one endpoint.
type EndpointConfig struct {
	Path              string  // Endpoint path (a trailing "/" matches by prefix)
	Method            string  // HTTP method (GET, POST, etc.)
	RequestsPerSecond float64 // Sustained rate; 0 means unlimited
	Burst             int     // Bucket capacity
}

// NewConfig builds a limiter configuration from the application settings.
func NewConfig(c config.RateLimitConfig) *Config {
	if !c.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:           true,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
		CleanupInterval:   c.CleanupInterval,
		IdleTimeout:       time.Hour,
		Whitelist:         parseIPList(c.Whitelist),
		Blacklist:         parseIPList(c.Blacklist),
		EndpointConfigs:   DefaultEndpointConfigs(c.RequestsPerSecond, c.Burst),
	}
}

// DefaultEndpointConfigs returns the endpoint overrides derived from the
// default rate: document uploads are the most expensive and get a quarter of it.
func DefaultEndpointConfigs(rps float64, burst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/upload", Method: "POST", RequestsPerSecond: rps / 4, Burst: max(1, burst/4)},
		{Path: "/api/analyze", Method: "POST", RequestsPerSecond: rps / 2, Burst: max(1, burst/2)},
	}
}

// parseIPList turns a list of addresses into a set, ignoring blanks.
func parseIPList(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
