package authhttp

import (
	"net/http"

	"github.com/open-rails/linkedauth/session"
)

// ConsumeFlash returns and clears the pending flash message for the request's
// session, if any. Meant for whatever renders the login page; a message is
// shown once and gone.
func (s *Service) ConsumeFlash(r *http.Request) string {
	c, err := r.Cookie(sidCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	h := session.NewHandler(s.store, c.Value, s.cfg.StateTTLOrDefault())
	msg, ok, err := h.Consume(r.Context(), session.KeyFlash)
	if err != nil || !ok {
		return ""
	}
	return msg
}
