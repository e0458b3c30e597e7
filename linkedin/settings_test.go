package linkedin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-rails/linkedauth/core"
)

func TestSettingsFromConfig(t *testing.T) {
	s := SettingsFromConfig(core.Config{
		BaseURL:      "https://example.com/",
		ClientID:     " app-id ",
		ClientSecret: "app-secret",
	})
	require.Equal(t, "app-id", s.ClientID)
	require.Equal(t, "app-secret", s.ClientSecret)
	require.Equal(t, "https://example.com/user/login/linkedin/callback", s.RedirectURI)
}

func TestSettingsValid(t *testing.T) {
	require.True(t, Settings{ClientID: "id", ClientSecret: "secret"}.Valid())
	require.False(t, Settings{ClientID: "", ClientSecret: "secret"}.Valid())
	require.False(t, Settings{ClientID: "id", ClientSecret: ""}.Valid())
	require.False(t, Settings{}.Valid())
}
