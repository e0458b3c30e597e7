package linkedin

import (
	"strings"

	"github.com/open-rails/linkedauth/core"
)

// Settings holds the resolved provider app credentials plus the redirect URI
// derived from the site base URL. Resolved once at construction; there are no
// lazy first-access reads hiding behind the getters.
type Settings struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// SettingsFromConfig resolves provider settings from the module configuration.
func SettingsFromConfig(cfg core.Config) Settings {
	return Settings{
		ClientID:     strings.TrimSpace(cfg.ClientID),
		ClientSecret: strings.TrimSpace(cfg.ClientSecret),
		RedirectURI:  cfg.RedirectURI(),
	}
}

// Valid reports whether the mandatory app credentials are present. An invalid
// Settings blocks client creation; it never panics or errors on its own.
func (s Settings) Valid() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}
