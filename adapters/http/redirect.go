package authhttp

import (
	"net/http"
	"strings"

	"github.com/open-rails/linkedauth/session"
)

// loginRedirect stashes a flash message for the login page and sends the
// browser there. Every failed or cancelled attempt funnels through here.
func (s *Service) loginRedirect(w http.ResponseWriter, r *http.Request, msg string) {
	if sess := sessionFrom(r.Context()); sess != nil && msg != "" {
		if err := sess.Set(r.Context(), session.KeyFlash, msg); err != nil {
			s.log.Error("storing flash message failed", "err", err)
		}
	}
	localRedirect(w, r, s.cfg.LoginPathOrDefault())
}

// localRedirect refuses absolute and protocol-relative targets. Outbound
// redirects must go through trustedRedirect, which has exactly one call site.
func localRedirect(w http.ResponseWriter, r *http.Request, target string) {
	if strings.Contains(target, "://") || strings.HasPrefix(target, "//") {
		serverErr(w, "untrusted_redirect")
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// trustedRedirect sends the browser off-site. This crossing of the origin
// boundary is intentional and limited to the provider authorization URL; do
// not route any other redirect through it.
func trustedRedirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}
