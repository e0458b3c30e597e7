package authhttp

import (
	"net/http"
	"net/url"
)

// appInfo is the read-only document an administrator needs when filling in
// the LinkedIn app dashboard. Display only; the flow itself never reads it.
type appInfo struct {
	OAuthRedirectURI string `json:"oauth_redirect_uri"`
	AppDomain        string `json:"app_domain"`
	SiteURL          string `json:"site_url"`
	DataPoints       string `json:"data_points"`
}

func (s *Service) handleAppInfoGET(w http.ResponseWriter, r *http.Request) {
	host := ""
	if u, err := url.Parse(s.cfg.BaseURL); err == nil {
		host = u.Host
	}
	writeJSON(w, http.StatusOK, appInfo{
		OAuthRedirectURI: s.cfg.RedirectURI(),
		AppDomain:        host,
		SiteURL:          s.cfg.BaseURL,
		DataPoints:       s.cfg.DataPointsOrDefault(),
	})
}
