package main

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	authhttp "github.com/open-rails/linkedauth/adapters/http"
	"github.com/open-rails/linkedauth/core"
)

type config struct {
	ListenAddr   string
	BaseURL      string
	ClientID     string
	ClientSecret string
	DataPoints   string
	RedisURL     string
	JWTSecret    string
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}
	fatal(runServe(cfg))
}

func loadConfig() (*config, error) {
	c := &config{
		ListenAddr:   envOr("LINKEDAUTH_LISTEN_ADDR", ":8080"),
		BaseURL:      strings.TrimRight(strings.TrimSpace(os.Getenv("LINKEDAUTH_BASE_URL")), "/"),
		ClientID:     strings.TrimSpace(os.Getenv("LINKEDIN_CLIENT_ID")),
		ClientSecret: strings.TrimSpace(os.Getenv("LINKEDIN_CLIENT_SECRET")),
		DataPoints:   envOr("LINKEDAUTH_DATA_POINTS", core.DefaultDataPoints),
		RedisURL:     strings.TrimSpace(os.Getenv("REDIS_URL")),
		JWTSecret:    envOr("LINKEDAUTH_DEV_JWT_SECRET", "dev-only-not-a-secret"),
	}
	if c.BaseURL == "" {
		return nil, fmt.Errorf("LINKEDAUTH_BASE_URL is required (e.g. http://localhost:8080)")
	}
	// Deliberately no check on client id/secret here: running without them
	// is how you exercise the misconfiguration path end to end.
	return c, nil
}

func runServe(cfg *config) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	users := &devUserManager{jwtSecret: []byte(cfg.JWTSecret), log: log}

	svc := authhttp.NewService(core.Config{
		BaseURL:      cfg.BaseURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		DataPoints:   cfg.DataPoints,
		Logger:       log,
	}, users)

	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		svc.WithRedis(redis.NewClient(opt))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("GET /user/login", loginPageHandler(svc))
	mux.Handle("/user/", svc.Handler())

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("linkedauth devserver listening", "addr", cfg.ListenAddr, "base_url", cfg.BaseURL)
	return server.ListenAndServe()
}

var loginPage = template.Must(template.New("login").Parse(`<!doctype html>
<title>Sign in</title>
{{if .Flash}}<p style="color:#b00">{{.Flash}}</p>{{end}}
<p><a href="/user/linkedin-connect">Sign in with LinkedIn</a></p>
`))

func loginPageHandler(svc *authhttp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = loginPage.Execute(w, struct{ Flash string }{Flash: svc.ConsumeFlash(r)})
	}
}

// devUserManager stands in for the host site's user subsystem: it mints an
// HS256 session JWT cookie from the provider identity and calls it a login.
// Nothing is persisted; every field the module hands over is echoed into the
// token so the handoff is easy to inspect.
type devUserManager struct {
	jwtSecret      []byte
	log            *slog.Logger
	sessionNullify []string
}

func (m *devUserManager) AuthenticateUser(w http.ResponseWriter, r *http.Request, login core.Login) {
	claims := jwt.MapClaims{
		"sub":      login.ProviderUserID,
		"provider": login.ProviderKey,
		"name":     login.Name,
		"email":    login.Email,
		"picture":  login.PictureURL,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.jwtSecret)
	if err != nil {
		m.log.Error("signing dev session token failed", "err", err)
		http.Error(w, "session_issue_failed", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "dev_session",
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   3600,
	})
	m.log.Info("user authenticated", "provider", login.ProviderKey,
		"provider_user_id", login.ProviderUserID, "name", login.Name)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (m *devUserManager) SetSessionKeysToNullify(keys []string) {
	m.sessionNullify = keys
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func fatal(err error) {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
