package authhttp

import (
	"crypto/subtle"
	"net/http"

	"github.com/open-rails/linkedauth/core"
	"github.com/open-rails/linkedauth/session"
)

// User-facing flash messages. Kept generic on purpose: the login page is the
// wrong place for protocol detail, the log carries that.
const (
	msgNotConfigured = "Social Auth LinkedIn not configured properly. Contact site administrator."
	msgCancelled     = "You could not be authenticated."
	msgLoginFailed   = "LinkedIn login failed."
	msgInvalidState  = "LinkedIn login failed. Invalid OAuth2 state."
	msgNoProfile     = "LinkedIn login failed, could not load LinkedIn profile. Contact site administrator."
)

// handleLinkedInLoginGET starts the authorization-code flow: build the
// provider client, generate the consent URL plus a fresh state, persist the
// state in the session, and send the browser to LinkedIn.
func (s *Service) handleLinkedInLoginGET(w http.ResponseWriter, r *http.Request) {
	mgr, err := s.manager()
	if err != nil {
		s.loginRedirect(w, r, msgNotConfigured)
		return
	}

	ar := mgr.AuthorizationRequest()

	sess := sessionFrom(r.Context())
	if err := sess.Set(r.Context(), session.KeyOAuth2State, ar.State); err != nil {
		s.log.Error("persisting oauth2 state failed", "err", err)
		serverErr(w, "state_store_failed")
		return
	}

	// The one intentional cross-origin redirect in this module.
	trustedRedirect(w, r, ar.URL)
}

// handleLinkedInCallbackGET finishes the flow after LinkedIn redirects back:
// validate the callback, exchange the code, fetch the profile, and hand the
// normalized identity to the UserManager. Every failure branch ends on the
// login page with a flash message; no partial account is ever created here.
func (s *Service) handleLinkedInCallbackGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := sessionFrom(ctx)
	q := r.URL.Query()

	// User declined consent at the provider. Terminal, not an error, and
	// no client build or network call happens for it.
	if q.Get("error") == "access_denied" {
		s.loginRedirect(w, r, msgCancelled)
		return
	}

	mgr, err := s.manager()
	if err != nil {
		s.loginRedirect(w, r, msgNotConfigured)
		return
	}

	stored, _, err := sess.Get(ctx, session.KeyOAuth2State)
	if err != nil {
		s.log.Error("reading oauth2 state failed", "err", err)
		serverErr(w, "state_store_failed")
		return
	}

	if e := q.Get("error"); e != "" {
		s.log.Error("provider reported an error on callback",
			"provider", core.ProviderKey, "error", e)
		s.loginRedirect(w, r, msgLoginFailed)
		return
	}

	// Exact byte comparison, no trimming or case folding. The persisted
	// state is cleared on mismatch so it cannot be replayed.
	param := q.Get("state")
	if param == "" || stored == "" ||
		subtle.ConstantTimeCompare([]byte(param), []byte(stored)) != 1 {
		if err := sess.Delete(ctx, session.KeyOAuth2State); err != nil {
			s.log.Error("clearing oauth2 state failed", "err", err)
		}
		s.log.Warn("oauth2 state mismatch on callback", "provider", core.ProviderKey)
		s.loginRedirect(w, r, msgInvalidState)
		return
	}

	// State checked out; it is single-use, drop it before the exchange.
	if err := sess.Delete(ctx, session.KeyOAuth2State); err != nil {
		s.log.Error("clearing oauth2 state failed", "err", err)
	}

	if err := mgr.Authenticate(ctx, q.Get("code")); err != nil {
		s.log.Error("token exchange failed", "provider", core.ProviderKey, "err", err)
		s.loginRedirect(w, r, msgNoProfile)
		return
	}

	profile, err := mgr.UserInfo(ctx)
	if err != nil {
		s.log.Error("loading LinkedIn profile failed", "provider", core.ProviderKey, "err", err)
		s.loginRedirect(w, r, msgNoProfile)
		return
	}

	// name and email are already covered by the profile fetch; anything
	// else the administrator configured is unsupported and only warned on.
	core.CheckDataPoints(s.log, s.cfg.DataPointsOrDefault())

	if err := sess.Set(ctx, session.KeyAccessToken, mgr.AccessToken()); err != nil {
		s.log.Error("persisting access token failed", "err", err)
		serverErr(w, "state_store_failed")
		return
	}

	s.users.AuthenticateUser(w, r, core.Login{
		Name:           profile.DisplayName(),
		Email:          profile.Email,
		ProviderKey:    core.ProviderKey,
		ProviderUserID: profile.Sub,
		PictureURL:     profile.Picture,
		ExtraData:      "{}",
	})
}
