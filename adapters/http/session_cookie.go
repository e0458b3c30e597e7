package authhttp

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/open-rails/linkedauth/session"
)

// sidCookieName carries the opaque browser-session id that scopes the
// persisted OAuth state. HttpOnly + Lax so the cookie still rides along on
// the top-level navigation back from linkedin.com.
const sidCookieName = "linkedauth_sid"

type ctxKey int

const sessionCtxKey ctxKey = iota

// withSession makes sure the request has a session id cookie and binds a
// session.Handler for it into the request context.
func (s *Service) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie(sidCookieName); err == nil && c.Value != "" {
			sid = c.Value
		}
		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sidCookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   int(s.cfg.StateTTLOrDefault().Seconds()),
			})
		}
		h := session.NewHandler(s.store, sid, s.cfg.StateTTLOrDefault())
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey, h)))
	})
}

// sessionFrom returns the request-scoped persistent data handler. Only valid
// inside handlers mounted through Handler().
func sessionFrom(ctx context.Context) *session.Handler {
	h, _ := ctx.Value(sessionCtxKey).(*session.Handler)
	return h
}
