package session

import (
	"context"
	"time"
)

// KeyPrefix namespaces every key this integration writes, so that other
// provider integrations sharing the same session cannot collide with it.
const KeyPrefix = "social_auth_linkedin_"

// Session keys used by the auth flow.
const (
	// KeyOAuth2State holds the CSRF state written at authorization-request
	// time and read (then cleared) at callback time.
	KeyOAuth2State = "oAuth2State"

	// KeyAccessToken holds the short-lived provider access token written
	// after a successful exchange.
	KeyAccessToken = "access_token"

	// KeyFlash holds the user-facing message shown on the login page after
	// a failed or cancelled attempt. Consumed on read.
	KeyFlash = "flash"
)

// Handler is the persistent data handler for one browser session: string
// values, automatic KeyPrefix namespacing, write-through to the backing
// store. No expiry logic of its own beyond the session TTL applied on writes.
type Handler struct {
	store Store
	sid   string
	ttl   time.Duration
}

// NewHandler binds a handler to one session id.
func NewHandler(store Store, sid string, ttl time.Duration) *Handler {
	return &Handler{store: store, sid: sid, ttl: ttl}
}

// Prefix returns the namespace prefix, exposed so hosts can register
// prefixed keys with their UserManager (e.g. keys to nullify on failure).
func (h *Handler) Prefix() string { return KeyPrefix }

func (h *Handler) storageKey(key string) string {
	return "sess:" + h.sid + ":" + KeyPrefix + key
}

// Get reads a session value. Missing keys are ("", false, nil).
func (h *Handler) Get(ctx context.Context, key string) (string, bool, error) {
	b, ok, err := h.store.Get(ctx, h.storageKey(key))
	if err != nil || !ok {
		return "", false, err
	}
	return string(b), true, nil
}

// Set writes a session value immediately (no batching).
func (h *Handler) Set(ctx context.Context, key, value string) error {
	return h.store.Set(ctx, h.storageKey(key), []byte(value), h.ttl)
}

// Delete removes a session value. Deleting a missing key is not an error.
func (h *Handler) Delete(ctx context.Context, key string) error {
	return h.store.Del(ctx, h.storageKey(key))
}

// Consume reads and deletes a value in one step (flash messages, validated
// CSRF state).
func (h *Handler) Consume(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := h.Get(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}
	if err := h.Delete(ctx, key); err != nil {
		return "", false, err
	}
	return v, true, nil
}
