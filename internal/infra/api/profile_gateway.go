package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"agriproxy/internal/domain/entity"
	domainerrors "agriproxy/internal/domain/errors"
	"agriproxy/internal/domain/service"

	"github.com/pkg/errors"
)

// profileGateway implements service.ProfileGateway over the extended
// profile endpoints.
type profileGateway struct {
	client *Client
	logger *slog.Logger
}

// NewProfileGateway is the constructor for profileGateway.
func NewProfileGateway(client *Client, logger *slog.Logger) service.ProfileGateway {
	return &profileGateway{
		client: client,
		logger: logger,
	}
}

type extendedProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Location    *string `json:"location,omitempty"`
	Username    *string `json:"username,omitempty"`
	AddressLine *string `json:"addressLine,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Pincode     *string `json:"pincode,omitempty"`
}

// avatarPayload is the data section of the avatar upload response.
type avatarPayload struct {
	User      entity.User `json:"user"`
	AvatarURL string      `json:"avatarUrl"`
}

// FetchProfile returns the extended profile for the cached token.
func (g *profileGateway) FetchProfile(ctx context.Context) (*entity.User, error) {
	res, err := g.client.getJSON(ctx, "/profile")
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNetworkUnavailable, "profile request failed")
	}

	switch res.Status {
	case http.StatusOK:
		return decodeUser(res)
	case http.StatusUnauthorized:
		return nil, failure(domainerrors.ErrSessionExpired, res)
	default:
		return nil, failure(domainerrors.ErrServerError, res)
	}
}

// UpdateProfile applies the extended fields and returns the server's
// updated user.
func (g *profileGateway) UpdateProfile(ctx context.Context, update service.ExtendedProfileUpdate) (*entity.User, error) {
	res, err := g.client.doJSON(ctx, http.MethodPut, "/profile", extendedProfileRequest{
		Name:        update.Name,
		Phone:       update.Phone,
		Location:    update.Location,
		Username:    update.Username,
		AddressLine: update.AddressLine,
		City:        update.City,
		State:       update.State,
		Pincode:     update.Pincode,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNetworkUnavailable, "profile update failed")
	}

	switch res.Status {
	case http.StatusOK:
		return decodeUser(res)
	case http.StatusUnauthorized:
		return nil, failure(domainerrors.ErrSessionExpired, res)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, failure(domainerrors.ErrValidationFailed, res)
	default:
		return nil, failure(domainerrors.ErrServerError, res)
	}
}

// UploadAvatar sends the image as multipart form data and returns the
// updated user together with the resolved avatar URL.
func (g *profileGateway) UploadAvatar(ctx context.Context, fileName string, image io.Reader) (*service.AvatarUpload, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("avatar", fileName)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to build avatar form")
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to read avatar image")
	}
	if err := form.Close(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to finish avatar form")
	}

	res, err := g.client.doMultipart(ctx, "/profile/avatar", &body, form.FormDataContentType())
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNetworkUnavailable, "avatar upload failed")
	}

	switch res.Status {
	case http.StatusOK, http.StatusCreated:
		// fall through to decoding
	case http.StatusUnauthorized:
		return nil, failure(domainerrors.ErrSessionExpired, res)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, failure(domainerrors.ErrValidationFailed, res)
	default:
		return nil, failure(domainerrors.ErrServerError, res)
	}

	var payload avatarPayload
	if err := unmarshalData(res, &payload); err != nil {
		return nil, err
	}
	if payload.AvatarURL == "" {
		payload.AvatarURL = g.AvatarURL(payload.User.Avatar)
	}

	return &service.AvatarUpload{User: payload.User, AvatarURL: payload.AvatarURL}, nil
}

// AvatarURL resolves a server-relative avatar path against the API host.
// The backend serves avatars from the host root, outside the /api prefix.
func (g *profileGateway) AvatarURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}

	host := strings.TrimSuffix(g.client.BaseURL(), "/api")

	return host + path
}
