package core

import (
	"log/slog"
	"strings"
)

// Supported data points. "name" and "email" are implicitly satisfied by the
// profile fields the userinfo fetch already returns; there is nothing extra
// to collect for them.
const (
	DataPointName  = "name"
	DataPointEmail = "email"
)

// ParseDataPoints splits an admin-configured comma-separated list into
// individual tokens. Tokens are trimmed; empties are dropped.
func ParseDataPoints(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CheckDataPoints walks the configured data points and logs a warning for
// every token that is not a supported one. Unsupported tokens never abort a
// login; they only tell the administrator the configuration asks for
// something this provider adapter does not produce.
func CheckDataPoints(log *slog.Logger, csv string) {
	for _, dp := range ParseDataPoints(csv) {
		switch dp {
		case DataPointName, DataPointEmail:
		default:
			log.Warn("invalid data point, skipping",
				"provider", ProviderKey, "data_point", dp)
		}
	}
}
