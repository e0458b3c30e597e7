package core

import (
	"log/slog"
	"strings"
	"time"
)

// ProviderKey identifies this integration in session keys, provider links,
// and the UserManager handoff.
const ProviderKey = "social_auth_linkedin"

// CallbackPath is the fixed path, relative to the site base URL, that must be
// registered with the LinkedIn app as a valid OAuth redirect URI.
const CallbackPath = "/user/login/linkedin/callback"

// DefaultDataPoints is the admin-facing default for Config.DataPoints.
const DefaultDataPoints = "name,email"

// Config carries everything the HTTP adapter and the provider client need.
// Zero values fall back to the defaults documented per field; the host app
// fills this at startup (no DI container, no lazy getters).
type Config struct {
	// BaseURL is the site's external base URL (scheme + host, no trailing
	// slash). The OAuth redirect URI is derived from it plus CallbackPath.
	BaseURL string

	// LoginPath is where every failed or cancelled attempt redirects to,
	// with a flash message. Default "/user/login".
	LoginPath string

	// ClientID and ClientSecret come from the LinkedIn app dashboard.
	// Both are mandatory; either one empty means the module is not
	// configured and both flow endpoints refuse to start an attempt.
	ClientID     string
	ClientSecret string

	// DataPoints is the comma-separated list of profile fields an
	// administrator wants collected. Only "name" and "email" are produced;
	// anything else is logged as unsupported and ignored.
	// Default "name,email".
	DataPoints string

	// Scopes requested on the authorization URL. Default
	// ["openid", "profile", "email"].
	Scopes []string

	// UserInfoURL overrides the provider userinfo endpoint (tests point it
	// at an httptest server). Default is LinkedIn's production endpoint.
	UserInfoURL string

	// AuthURL and TokenURL override the provider OAuth2 endpoints, again
	// for tests and local fakes. Defaults are LinkedIn's production
	// authorization and token endpoints.
	AuthURL  string
	TokenURL string

	// HTTPTimeout bounds each outbound provider call (token exchange,
	// userinfo). A timeout surfaces as a profile-fetch failure. Default 10s.
	HTTPTimeout time.Duration

	// StateTTL bounds how long the persisted oAuth2State and access_token
	// session entries live. Default 30m.
	StateTTL time.Duration

	// Logger receives administrator-facing diagnostics (misconfiguration,
	// fetch failures, unsupported data points). Default slog.Default().
	Logger *slog.Logger
}

func (c Config) LoginPathOrDefault() string {
	if strings.TrimSpace(c.LoginPath) == "" {
		return "/user/login"
	}
	return c.LoginPath
}

func (c Config) DataPointsOrDefault() string {
	if strings.TrimSpace(c.DataPoints) == "" {
		return DefaultDataPoints
	}
	return c.DataPoints
}

func (c Config) HTTPTimeoutOrDefault() time.Duration {
	if c.HTTPTimeout <= 0 {
		return 10 * time.Second
	}
	return c.HTTPTimeout
}

func (c Config) StateTTLOrDefault() time.Duration {
	if c.StateTTL <= 0 {
		return 30 * time.Minute
	}
	return c.StateTTL
}

func (c Config) LoggerOrDefault() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// RedirectURI returns the absolute OAuth redirect URI for this site.
func (c Config) RedirectURI() string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/") + CallbackPath
}
