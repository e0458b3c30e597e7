package authhttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-rails/linkedauth/core"
)

func TestAppInfoDocument(t *testing.T) {
	e := newTestEnv(t, func(c *core.Config) { c.DataPoints = "name,email" })
	w := e.get(t, "/user/linkedin-connect/app-info")

	require.Equal(t, http.StatusOK, w.Code)
	var info appInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	require.Equal(t, "https://example.com/user/login/linkedin/callback", info.OAuthRedirectURI)
	require.Equal(t, "example.com", info.AppDomain)
	require.Equal(t, "https://example.com", info.SiteURL)
	require.Equal(t, "name,email", info.DataPoints)
}

func TestLocalRedirectRefusesExternalTargets(t *testing.T) {
	for _, target := range []string{"https://evil.example", "//evil.example/x"} {
		w := httptest.NewRecorder()
		localRedirect(w, httptest.NewRequest(http.MethodGet, "/", nil), target)
		require.Equal(t, http.StatusInternalServerError, w.Code, target)
	}

	w := httptest.NewRecorder()
	localRedirect(w, httptest.NewRequest(http.MethodGet, "/", nil), "/user/login")
	require.Equal(t, http.StatusFound, w.Code)
}
