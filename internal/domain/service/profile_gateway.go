package service

import (
	"context"
	"io"

	"agriproxy/internal/domain/entity"
)

// ExtendedProfileUpdate carries the extended profile fields managed on the
// dedicated profile endpoints. Nil fields are omitted from the request.
type ExtendedProfileUpdate struct {
	Name        *string
	Phone       *string
	Location    *string
	Username    *string
	AddressLine *string
	City        *string
	State       *string
	Pincode     *string
}

// AvatarUpload is the result of a successful avatar upload.
type AvatarUpload struct {
	User      entity.User
	AvatarURL string
}

// ProfileGateway is the contract with the extended-profile backend.
type ProfileGateway interface {
	// FetchProfile returns the extended profile for the cached token.
	FetchProfile(ctx context.Context) (*entity.User, error)

	// UpdateProfile applies the extended fields and returns the server's
	// updated user.
	UpdateProfile(ctx context.Context, update ExtendedProfileUpdate) (*entity.User, error)

	// UploadAvatar sends the image as multipart form data and returns the
	// updated user together with the resolved avatar URL.
	UploadAvatar(ctx context.Context, fileName string, image io.Reader) (*AvatarUpload, error)

	// AvatarURL resolves a server-relative avatar path against the API
	// host. Absolute URLs are returned unchanged; empty paths yield "".
	AvatarURL(path string) string
}
