package authhttp

import "net/http"

// Handler returns the mountable handler for the LinkedIn auth flow. Mount it
// at the host mux root: the paths are fixed because the callback path must
// match the redirect URI registered with the LinkedIn app.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()

	// Entry point: redirects the user to LinkedIn for authentication.
	mux.Handle("GET /user/linkedin-connect", http.HandlerFunc(s.handleLinkedInLoginGET))

	// LinkedIn returns the user here after consent (or refusal).
	mux.Handle("GET /user/login/linkedin/callback", http.HandlerFunc(s.handleLinkedInCallbackGET))

	// Admin-facing read-only app setup values.
	mux.Handle("GET /user/linkedin-connect/app-info", http.HandlerFunc(s.handleAppInfoGET))

	return s.withSession(mux)
}
