package linkedin

import (
	"errors"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	"github.com/open-rails/linkedauth/core"
)

// ErrNotConfigured means the client id or secret is missing. Fatal for the
// current request on both flow endpoints; an administrator has to fix the
// module settings, retrying won't help.
var ErrNotConfigured = errors.New("linkedin: client id and client secret are not configured")

// DefaultScopes is what the authorization URL asks for when the host does not
// override scopes: the OIDC-style product LinkedIn grants to sign-in apps.
var DefaultScopes = []string{"openid", "profile", "email"}

// Client is the configured OAuth2 client for LinkedIn. It only knows how to
// build authorization URLs and exchange codes; flow state lives in AuthManager.
type Client struct {
	conf *oauth2.Config
}

// NewClient builds a provider client from resolved settings. Invalid settings
// return ErrNotConfigured and log an administrator-facing diagnostic.
// A zero endpoint means LinkedIn's production endpoints.
func NewClient(s Settings, scopes []string, endpoint oauth2.Endpoint, log *slog.Logger) (*Client, error) {
	if !s.Valid() {
		log.Error("define Client ID and Client Secret on module settings",
			"provider", core.ProviderKey)
		return nil, ErrNotConfigured
	}
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	if endpoint.AuthURL == "" && endpoint.TokenURL == "" {
		endpoint = linkedin.Endpoint
	}
	return &Client{conf: &oauth2.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		RedirectURL:  s.RedirectURI,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}}, nil
}

// AuthCodeURL returns the provider consent page URL with the given state.
func (c *Client) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state)
}
