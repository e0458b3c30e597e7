package linkedin

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// UserInfoURL is LinkedIn's production userinfo endpoint (OIDC-shaped
// document; requires an access token from the "Sign In with LinkedIn" product).
const UserInfoURL = "https://api.linkedin.com/v2/userinfo"

// Profile is the normalized identity returned by the userinfo endpoint.
type Profile struct {
	Sub           string `json:"sub"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
}

// DisplayName joins first and last name with a single space.
func (p *Profile) DisplayName() string {
	return p.GivenName + " " + p.FamilyName
}

// AuthorizationRequest is what Initiate needs: the consent page URL and the
// anti-forgery state embedded in it.
type AuthorizationRequest struct {
	URL   string
	State string
}

// AuthManager drives one authorization attempt: fresh state + consent URL,
// then code exchange, then userinfo. The two network calls are sequential
// blocking I/O bounded by the configured timeout; neither is retried here —
// any failure is terminal for the attempt and the user starts over.
type AuthManager struct {
	client      *Client
	userInfoURL string
	httpClient  *http.Client

	state string
	token *oauth2.Token
}

// NewAuthManager wires a flow manager around a configured client.
// userInfoURL may be empty (production endpoint); timeout <= 0 gets 10s.
func NewAuthManager(client *Client, userInfoURL string, timeout time.Duration) *AuthManager {
	if strings.TrimSpace(userInfoURL) == "" {
		userInfoURL = UserInfoURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AuthManager{
		client:      client,
		userInfoURL: userInfoURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// AuthorizationRequest generates a fresh unguessable state and the consent
// page URL embedding it. Each call produces a new state; the caller persists
// it before redirecting.
func (m *AuthManager) AuthorizationRequest() AuthorizationRequest {
	m.state = randB64(24)
	return AuthorizationRequest{
		URL:   m.client.AuthCodeURL(m.state),
		State: m.state,
	}
}

// State returns the state generated by the last AuthorizationRequest call.
func (m *AuthManager) State() string { return m.state }

// Authenticate exchanges the authorization code for an access token.
func (m *AuthManager) Authenticate(ctx context.Context, code string) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)
	tok, err := m.client.conf.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("linkedin: token exchange failed: %w", err)
	}
	m.token = tok
	return nil
}

// AccessToken returns the bearer token from the last successful exchange,
// or "" before Authenticate has succeeded.
func (m *AuthManager) AccessToken() string {
	if m.token == nil {
		return ""
	}
	return m.token.AccessToken
}

// UserInfo fetches the authenticated profile. Must follow a successful
// Authenticate; a network error, non-200, or a document without a sub all
// count as a fetch failure.
func (m *AuthManager) UserInfo(ctx context.Context) (*Profile, error) {
	if m.token == nil {
		return nil, fmt.Errorf("linkedin: userinfo requested before token exchange")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	m.token.SetAuthHeader(req)
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkedin: userinfo request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.ReadAll(resp.Body)
		return nil, fmt.Errorf("linkedin: userinfo returned status %d", resp.StatusCode)
	}
	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("linkedin: malformed userinfo document: %w", err)
	}
	if strings.TrimSpace(p.Sub) == "" {
		return nil, fmt.Errorf("linkedin: userinfo document missing sub")
	}
	return &p, nil
}

func randB64(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
