// Package repository defines the interfaces for the durable local store.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"agriproxy/internal/domain/entity"
)

// ErrSessionNotFound is returned when no persisted session exists.
var ErrSessionNotFound = errors.New("session not found")

// PersistedSession is the token and cached user written to durable storage
// after a successful login or signup.
type PersistedSession struct {
	Token string      // Opaque bearer token issued by the auth backend.
	User  entity.User // Cached copy of the server's user, refreshed on revalidation.
}

// SessionRepository persists the current session across launches.
// The session store is the only writer of these keys; Save and Clear
// apply the token and user atomically, never one without the other.
type SessionRepository interface {
	// Save persists the token and cached user together.
	Save(ctx context.Context, session *PersistedSession) error

	// Load retrieves the persisted session, or ErrSessionNotFound when
	// no complete token+user pair is stored.
	Load(ctx context.Context) (*PersistedSession, error)

	// Clear removes both keys. Clearing an absent session is a no-op.
	Clear(ctx context.Context) error
}
