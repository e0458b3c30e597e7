package authhttp

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"github.com/open-rails/linkedauth/core"
	"github.com/open-rails/linkedauth/linkedin"
	"github.com/open-rails/linkedauth/session"
	memorystore "github.com/open-rails/linkedauth/storage/memory"
	redisstore "github.com/open-rails/linkedauth/storage/redis"
)

// Service wires the LinkedIn auth flow for net/http mounting: configuration,
// the session-scoped state store, and the external UserManager that finishes
// every successful login.
type Service struct {
	cfg   core.Config
	log   *slog.Logger
	store session.Store
	users core.UserManager
}

// NewService builds the HTTP adapter. The UserManager is mandatory; without
// it there is nothing to hand a validated identity to. On construction the
// session keys this module writes are registered with the UserManager so the
// host clears them if a login ultimately fails.
func NewService(cfg core.Config, users core.UserManager) *Service {
	s := &Service{
		cfg: cfg,
		log: cfg.LoggerOrDefault(),
		// Default to the in-memory store for dev/single-instance use.
		store: memorystore.NewKV(),
		users: users,
	}
	users.SetSessionKeysToNullify([]string{session.KeyPrefix + session.KeyAccessToken})
	return s
}

// WithRedis switches the session state store to Redis.
func (s *Service) WithRedis(rd *redis.Client) *Service {
	if rd != nil {
		s.store = redisstore.NewKV(rd)
	}
	return s
}

// WithStore installs a custom session state store.
func (s *Service) WithStore(store session.Store) *Service {
	if store != nil {
		s.store = store
	}
	return s
}

// manager is the provider client factory: it resolves settings once, refuses
// to build a client when the module is misconfigured, and wires a fresh flow
// manager for this request. Both flow endpoints treat a factory error as
// fatal for the request.
func (s *Service) manager() (*linkedin.AuthManager, error) {
	settings := linkedin.SettingsFromConfig(s.cfg)
	client, err := linkedin.NewClient(settings, s.cfg.Scopes, oauth2.Endpoint{
		AuthURL:  s.cfg.AuthURL,
		TokenURL: s.cfg.TokenURL,
	}, s.log)
	if err != nil {
		return nil, err
	}
	return linkedin.NewAuthManager(client, s.cfg.UserInfoURL, s.cfg.HTTPTimeoutOrDefault()), nil
}
