package usecase

import (
	"context"
	"io"

	"agriproxy/internal/domain/entity"
	"agriproxy/internal/domain/service"
)

// SessionUsecase defines the interface for the auth/session store: the
// authoritative holder of the current identity and the bearer token.
type SessionUsecase interface {
	// Restore loads the persisted session and revalidates it against the
	// backend. Returns the restored user, or nil when no session exists.
	Restore(ctx context.Context) (*entity.User, error)

	// Login exchanges credentials for an authenticated session.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// Signup creates an account and enters the authenticated state.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Logout ends the session. Local state is always cleared, even when
	// the remote invalidation fails.
	Logout(ctx context.Context) error

	// UpdateUser applies the mutable core profile fields.
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)

	// UpdateProfile applies the extended profile fields.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// UploadAvatar replaces the profile photo.
	UploadAvatar(ctx context.Context, fileName string, image io.Reader) (*service.AvatarUpload, error)

	// CurrentUser returns the cached user, nil while anonymous.
	CurrentUser() *entity.User

	// IsAuthenticated reports whether a session is active.
	IsAuthenticated() bool

	// IsLoading reports whether restore/login/signup is in flight.
	IsLoading() bool
}

// --- Input DTOs ---

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,min=10"`
	Location string `json:"location"`
}

// UpdateUserInput defines the mutable core profile fields. Nil fields are
// left unchanged.
type UpdateUserInput struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

// UpdateProfileInput defines the extended profile fields. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Location    *string `json:"location,omitempty"`
	Username    *string `json:"username,omitempty"`
	AddressLine *string `json:"addressLine,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Pincode     *string `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
}
