package core

import "net/http"

// Login is the normalized identity handed to the UserManager after a
// validated callback. No auth decisions are made on it here; the UserManager
// owns find-or-create and local session establishment.
type Login struct {
	// Name is the display name, first and last joined with a space.
	Name string

	// Email as asserted by the provider's userinfo document.
	Email string

	// ProviderKey is always "social_auth_linkedin". Together with
	// ProviderUserID it forms the stable local-account lookup key.
	ProviderKey string

	// ProviderUserID is the provider-scoped stable user id (OIDC sub).
	ProviderUserID string

	// PictureURL is the provider-hosted avatar URL, may be empty.
	PictureURL string

	// ExtraData is a JSON object reserved for future data-point values.
	// Currently always "{}".
	ExtraData string
}

// UserManager is the external collaborator that turns a validated provider
// identity into a logged-in local user. It writes the final HTTP response
// itself (redirect, cookie, whatever the host site does after login).
type UserManager interface {
	AuthenticateUser(w http.ResponseWriter, r *http.Request, login Login)

	// SetSessionKeysToNullify registers session keys the host must clear
	// if the login ultimately fails on its side.
	SetSessionKeysToNullify(keys []string)
}
