package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"agriproxy/internal/domain/entity"
	domainerrors "agriproxy/internal/domain/errors"
	"agriproxy/internal/domain/service"

	"github.com/pkg/errors"
)

// authGateway implements service.AuthGateway over the REST backend.
type authGateway struct {
	client *Client
	logger *slog.Logger
}

// NewAuthGateway is the constructor for authGateway.
func NewAuthGateway(client *Client, logger *slog.Logger) service.AuthGateway {
	return &authGateway{
		client: client,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type profileUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

// userPayload is the data section of every auth response.
type userPayload struct {
	User entity.User `json:"user"`
}

// Login exchanges credentials for a session.
func (g *authGateway) Login(ctx context.Context, credentials service.Credentials) (*service.AuthSession, error) {
	res, err := g.client.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{
		Email:    credentials.Email,
		Password: credentials.Password,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNetworkUnavailable, "login request failed")
	}

	switch res.Status {
	case http.StatusOK, http.StatusCreated:
		// fall through to decoding
	case http.StatusUnauthorized:
		return nil, failure(domainerrors.ErrInvalidCredentials, res)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, failure(domainerrors.ErrValidationFailed, res)
	default:
		return nil, failure(domainerrors.ErrServerError, res)
	}

	return decodeSession(res)
}

// Signup creates an account and returns the session for it.
func (g *authGateway) Signup(ctx context.Context, registration service.Registration) (*service.AuthSession, error) {
	res, err := g.client.doJSON(ctx, http.MethodPost, "/auth/signup", signupRequest{
		Name:     registration.Name,
		Email:    registration.Email,
		Password: registration.Password,
		Phone:    registration.Phone,
		Location: registration.Location,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNetworkUnavailable, "signup request failed")
	}

	switch res.Status {
	case http.StatusOK, http.StatusCreated:
		// fall through to decoding
	case http.StatusConflict:
		return nil, failure(domainerrors.ErrUserAlreadyExists, res)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, failure(domainerrors.ErrValidationFailed, res)
	default:
		return nil, failure(domainerrors.ErrServerError, res)
	}

	return decodeSession(res)
}

// FetchProfile returns the current user for the cached token. A 401 here
// means the cached session is no longer valid, not that credentials were
// wrong.
func (g *authGateway) FetchProfile(ctx context.Context) (*entity.User, error) {
	res, err := g.client.getJSON(ctx, "/auth/profile")
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

// UpdateProfile applies the mutable core fields and returns the server's
// updated user.
func (g *authGateway) UpdateProfile(ctx context.Context, update service.ProfileUpdate) (*entity.User, error) {
	res, err := g.client.doJSON(ctx, http.MethodPut, "/auth/profile", profileUpdateRequest{
		Name:     update.Name,
		Phone:    update.Phone,
		Location: update.Location,
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

// Logout invalidates the session server-side. Best-effort by contract.
func (g *authGateway) Logout(ctx context.Context) error {
	res, err := g.client.doJSON(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return errors.Wrap(domainerrors.ErrNetworkUnavailable, "logout request failed")
	}
	if res.Status >= http.StatusMultipleChoices {
		return failure(domainerrors.ErrServerError, res)
	}

	return nil
}

// failure wraps the call-site sentinel with the server's message so the
// taxonomy survives errors.Is while the human-readable reason is kept.
func failure(sentinel error, res *response) error {
	if reason := res.Envelope.reason(); reason != "" {
		return errors.Wrap(sentinel, reason)
	}

	return errors.WithStack(sentinel)
}

func decodeSession(res *response) (*service.AuthSession, error) {
	if !res.Envelope.Success || res.Envelope.Token == "" {
		return nil, failure(domainerrors.ErrServerError, res)
	}

	user, err := decodeUser(res)
	if err != nil {
		return nil, err
	}

	return &service.AuthSession{Token: res.Envelope.Token, User: *user}, nil
}

func decodeUser(res *response) (*entity.User, error) {
	var payload userPayload
	if err := unmarshalData(res, &payload); err != nil {
		return nil, err
	}
	if payload.User.ID == "" {
		return nil, errors.Wrap(domainerrors.ErrServerError, "response carries no user")
	}

	return &payload.User, nil
}

func unmarshalData(res *response, out any) error {
	if len(res.Envelope.Data) == 0 {
		return errors.Wrap(domainerrors.ErrServerError, "response carries no data")
	}
	if err := json.Unmarshal(res.Envelope.Data, out); err != nil {
		return errors.Wrap(domainerrors.ErrServerError, "failed to decode response data")
	}

	return nil
}
