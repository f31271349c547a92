package mockapi

import (
	"strings"
	"sync"
	"time"

	"agriproxy/internal/domain/entity"
	"agriproxy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store errors. Handlers map these to contract status codes.
var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrUnknownUser      = errors.New("user not found")
	ErrWrongCredentials = errors.New("wrong email or password")
)

// userRecord pairs the public user with its password hash.
type userRecord struct {
	user entity.User
	hash string
}

// UserStore is the in-memory account backing of the mock backend.
// Safe for concurrent use.
type UserStore struct {
	hasher service.PasswordHasher

	mu      sync.RWMutex
	byID    map[string]*userRecord
	byEmail map[string]string
	revoked map[string]struct{}
}

// NewUserStore is the constructor for UserStore.
func NewUserStore(hasher service.PasswordHasher) *UserStore {
	return &UserStore{
		hasher:  hasher,
		byID:    make(map[string]*userRecord),
		byEmail: make(map[string]string),
		revoked: make(map[string]struct{}),
	}
}

// Create registers a new account and returns the stored user.
func (s *UserStore) Create(name, email, password, phone, location string) (*entity.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[key]; exists {
		return nil, errors.WithStack(ErrEmailTaken)
	}

	now := time.Now().UTC()
	user := entity.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     key,
		Phone:     phone,
		Location:  location,
		Role:      "farmer",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		LastLogin: now,
	}

	s.byID[user.ID] = &userRecord{user: user, hash: hash}
	s.byEmail[key] = user.ID

	return &user, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *UserStore) Authenticate(email, password string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.byEmail[normalizeEmail(email)]
	if !exists {
		return nil, errors.WithStack(ErrWrongCredentials)
	}

	record := s.byID[id]
	if !s.hasher.Check(password, record.hash) {
		return nil, errors.WithStack(ErrWrongCredentials)
	}

	record.user.LastLogin = time.Now().UTC()
	user := record.user

	return &user, nil
}

// Get returns the user with the given id.
func (s *UserStore) Get(id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.byID[id]
	if !exists {
		return nil, errors.WithStack(ErrUnknownUser)
	}
	user := record.user

	return &user, nil
}

// Update applies the patch to the stored user and returns the result.
func (s *UserStore) Update(id string, patch entity.UserPatch) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.byID[id]
	if !exists {
		return nil, errors.WithStack(ErrUnknownUser)
	}

	record.user = record.user.Merge(patch)
	record.user.UpdatedAt = time.Now().UTC()
	user := record.user

	return &user, nil
}

// RevokeToken marks a bearer token as logged out.
func (s *UserStore) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = struct{}{}
}

// TokenRevoked reports whether the token was logged out.
func (s *UserStore) TokenRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, revoked := s.revoked[token]

	return revoked
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
