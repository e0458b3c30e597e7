package linkedin

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClientRejectsInvalidSettings(t *testing.T) {
	for _, s := range []Settings{
		{},
		{ClientID: "id"},
		{ClientSecret: "secret"},
	} {
		c, err := NewClient(s, nil, oauth2.Endpoint{}, discard())
		require.ErrorIs(t, err, ErrNotConfigured)
		require.Nil(t, c)
	}
}

func TestAuthCodeURLCarriesClientIDAndRedirectURI(t *testing.T) {
	c, err := NewClient(Settings{
		ClientID:     "my-client",
		ClientSecret: "my-secret",
		RedirectURI:  "https://example.com/user/login/linkedin/callback",
	}, nil, oauth2.Endpoint{}, discard())
	require.NoError(t, err)

	u := c.AuthCodeURL("st4te")
	require.Contains(t, u, "client_id=my-client")
	require.Contains(t, u, "state=st4te")
	require.Contains(t, u, "redirect_uri=https%3A%2F%2Fexample.com%2Fuser%2Flogin%2Flinkedin%2Fcallback")
	require.Contains(t, u, "https://www.linkedin.com/oauth/v2/authorization")
}

func TestNewClientDefaultScopes(t *testing.T) {
	c, err := NewClient(Settings{ClientID: "a", ClientSecret: "b"}, nil, oauth2.Endpoint{}, discard())
	require.NoError(t, err)
	u := c.AuthCodeURL("s")
	require.Contains(t, u, "scope=openid+profile+email")
}
