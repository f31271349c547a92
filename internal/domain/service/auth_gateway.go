// Package service defines interfaces for external collaborators consumed by
// the application layer: the auth/profile backend and the crop analysis
// services. Concrete implementations live in the infrastructure layer.
package service

import (
	"context"

	"agriproxy/internal/domain/entity"
)

// Credentials is the input for an explicit login.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the input for creating a new account.
type Registration struct {
	Name     string
	Email    string
	Password string
	Phone    string // optional
	Location string // optional
}

// ProfileUpdate carries the mutable subset of the core profile.
// Nil fields are omitted from the request.
type ProfileUpdate struct {
	Name     *string
	Phone    *string
	Location *string
}

// AuthSession is the result of a successful login or signup: the issued
// bearer token together with the server's view of the user.
type AuthSession struct {
	Token string
	User  entity.User
}

// AuthGateway is the contract with the external authentication backend.
// Every method maps transport failures to the domain error taxonomy:
// timeouts and connection failures surface ErrNetworkUnavailable, an
// authorization rejection surfaces ErrInvalidCredentials (login) or
// ErrSessionExpired (profile revalidation), and other non-2xx responses
// surface ErrServerError carrying the server's message.
type AuthGateway interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, credentials Credentials) (*AuthSession, error)

	// Signup creates an account and returns the session for it.
	Signup(ctx context.Context, registration Registration) (*AuthSession, error)

	// FetchProfile returns the current user for the cached token.
	FetchProfile(ctx context.Context) (*entity.User, error)

	// UpdateProfile applies the mutable core fields and returns the
	// server's updated user.
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*entity.User, error)

	// Logout invalidates the session server-side. Best-effort: callers
	// must proceed with local cleanup regardless of the returned error.
	Logout(ctx context.Context) error
}
