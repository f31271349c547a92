package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"agriproxy/internal/domain/entity"
	domainerrors "agriproxy/internal/domain/errors"
	"agriproxy/internal/domain/repository"
	"agriproxy/internal/domain/service"
	"agriproxy/internal/domain/state"
	"agriproxy/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. It is the
// authoritative holder of the current identity: the app state store only
// mirrors it through SetUser dispatches.
type sessionService struct {
	store    usecase.AppStateUsecase
	gateway  service.AuthGateway
	profiles service.ProfileGateway
	sessions repository.SessionRepository
	tokens   service.TokenCache
	validate *validator.Validate
	logger   *slog.Logger

	mu      sync.Mutex
	user    *entity.User
	loading bool
	// generation is bumped on logout and invalidation so an in-flight
	// revalidation cannot resurrect a session the user already ended.
	generation uint64
}

// NewSessionService is the constructor for sessionService. It registers
// itself on the notifier so a 401 from any backend call tears down the
// local session.
func NewSessionService(
	store usecase.AppStateUsecase,
	gateway service.AuthGateway,
	profiles service.ProfileGateway,
	sessions repository.SessionRepository,
	tokens service.TokenCache,
	notifier service.UnauthorizedNotifier,
	logger *slog.Logger,
) usecase.SessionUsecase {
	srv := &sessionService{
		store:    store,
		gateway:  gateway,
		profiles: profiles,
		sessions: sessions,
		tokens:   tokens,
		validate: validator.New(),
		logger:   logger,
	}
	notifier.SetUnauthorizedHook(srv.invalidate)

	return srv
}

// Restore loads the persisted session, becomes authenticated
// optimistically, then revalidates against the backend. An unreachable
// backend keeps the cached identity; a rejection drops it.
func (srv *sessionService) Restore(ctx context.Context) (*entity.User, error) {
	srv.logger.Info("Restoring session")
	srv.setLoading(true)
	defer srv.setLoading(false)

	persisted, err := srv.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.logger.Info("No persisted session")

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load persisted session")
	}

	if tokenExpired(persisted.Token) {
		srv.logger.Info("Persisted token already expired")
		srv.invalidate()

		return nil, nil
	}

	// 1. Become authenticated from the cache before touching the network.
	srv.tokens.Set(persisted.Token)
	cached := persisted.User
	srv.mu.Lock()
	srv.user = &cached
	generation := srv.generation
	srv.mu.Unlock()
	srv.store.Dispatch(state.SetUser{User: &cached})

	// 2. Revalidate. The generation check makes a logout issued while
	// this call was in flight win over its result.
	fresh, err := srv.gateway.FetchProfile(ctx)
	switch {
	case err == nil:
		srv.mu.Lock()
		if srv.generation != generation {
			srv.mu.Unlock()

			return nil, nil
		}
		srv.user = fresh
		srv.mu.Unlock()

		if err := srv.sessions.Save(ctx, &repository.PersistedSession{Token: persisted.Token, User: *fresh}); err != nil {
			srv.logger.Warn("Failed to persist revalidated session", slog.Any("error", err))
		}
		srv.store.Dispatch(state.SetUser{User: fresh})
		srv.logger.Info("Successfully restored session", slog.String("userID", fresh.ID))

		return fresh, nil

	case errors.Is(err, domainerrors.ErrSessionExpired):
		srv.logger.Info("Persisted session rejected by backend")
		// The 401 hook has already torn the session down; this keeps
		// the path correct when the rejection came decoded rather than
		// transported.
		srv.invalidate()

		return nil, nil

	case errors.Is(err, domainerrors.ErrNetworkUnavailable):
		srv.logger.Warn("Revalidation skipped, network unavailable")

		return &cached, nil

	default:
		srv.logger.Warn("Revalidation failed, keeping cached session", slog.Any("error", err))

		return &cached, nil
	}
}

// Login exchanges credentials for an authenticated session.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	srv.logger.Info("Logging in", slog.String("email", input.Email))

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.setLoading(true)
	defer srv.setLoading(false)

	session, err := srv.gateway.Login(ctx, service.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		srv.store.Dispatch(state.SetError{Message: messageFor(err)})

		return nil, err
	}

	srv.adopt(ctx, session)
	srv.logger.Info("Successfully logged in", slog.String("userID", session.User.ID))

	return srv.CurrentUser(), nil
}

// Signup creates an account and enters the authenticated state.
func (srv *sessionService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.logger.Info("Signing up", slog.String("email", input.Email))

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.setLoading(true)
	defer srv.setLoading(false)

	session, err := srv.gateway.Signup(ctx, service.Registration{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
		Location: input.Location,
	})
	if err != nil {
		srv.store.Dispatch(state.SetError{Message: messageFor(err)})

		return nil, err
	}

	srv.adopt(ctx, session)
	srv.logger.Info("Successfully signed up", slog.String("userID", session.User.ID))

	return srv.CurrentUser(), nil
}

// Logout ends the session. The remote invalidation is best-effort; local
// state is always cleared.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.logger.Info("Logging out")

	if err := srv.gateway.Logout(ctx); err != nil {
		srv.logger.Warn("Remote logout failed, clearing local session anyway", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.generation++
	srv.user = nil
	srv.mu.Unlock()

	srv.tokens.Clear()
	srv.store.Dispatch(state.SetUser{User: nil})

	if err := srv.sessions.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear persisted session")
	}

	srv.logger.Info("Successfully logged out")

	return nil
}

// UpdateUser applies the mutable core profile fields and adopts the
// server's updated copy. A failed call leaves the cached user untouched.
func (srv *sessionService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	if !srv.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "no active session")
	}

	srv.logger.Info("Updating user profile")

	updated, err := srv.gateway.UpdateProfile(ctx, service.ProfileUpdate{
		Name:     input.Name,
		Phone:    input.Phone,
		Location: input.Location,
	})
	if err != nil {
		return nil, err
	}

	srv.replaceUser(ctx, updated)
	srv.logger.Info("Successfully updated user profile")

	return updated, nil
}

// UpdateProfile applies the extended profile fields.
func (srv *sessionService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if !srv.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "no active session")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.logger.Info("Updating extended profile")

	updated, err := srv.profiles.UpdateProfile(ctx, service.ExtendedProfileUpdate{
		Name:        input.Name,
		Phone:       input.Phone,
		Location:    input.Location,
		Username:    input.Username,
		AddressLine: input.AddressLine,
		City:        input.City,
		State:       input.State,
		Pincode:     input.Pincode,
	})
	if err != nil {
		return nil, err
	}

	srv.replaceUser(ctx, updated)
	srv.logger.Info("Successfully updated extended profile")

	return updated, nil
}

// UploadAvatar replaces the profile photo and adopts the updated user.
func (srv *sessionService) UploadAvatar(ctx context.Context, fileName string, image io.Reader) (*service.AvatarUpload, error) {
	if !srv.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "no active session")
	}

	srv.logger.Info("Uploading avatar", slog.String("fileName", fileName))

	upload, err := srv.profiles.UploadAvatar(ctx, fileName, image)
	if err != nil {
		return nil, err
	}

	updated := upload.User
	srv.replaceUser(ctx, &updated)
	srv.logger.Info("Successfully uploaded avatar")

	return upload, nil
}

// CurrentUser returns the cached user, nil while anonymous.
func (srv *sessionService) CurrentUser() *entity.User {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.user
}

// IsAuthenticated reports whether a session is active.
func (srv *sessionService) IsAuthenticated() bool {
	return srv.CurrentUser() != nil
}

// IsLoading reports whether restore/login/signup is in flight.
func (srv *sessionService) IsLoading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.loading
}

// adopt swaps in a fresh session from login or signup: persist first,
// then token cache, then memory and the state mirror.
func (srv *sessionService) adopt(ctx context.Context, session *service.AuthSession) {
	if err := srv.sessions.Save(ctx, &repository.PersistedSession{
		Token: session.Token,
		User:  session.User,
	}); err != nil {
		// Device storage failure must not block the session itself.
		srv.logger.Warn("Failed to persist session", slog.Any("error", err))
	}

	srv.tokens.Set(session.Token)

	user := session.User
	srv.mu.Lock()
	srv.user = &user
	srv.mu.Unlock()

	srv.store.Dispatch(state.SetUser{User: &user})
	srv.store.Dispatch(state.SetError{Message: ""})
}

// replaceUser adopts the server's updated user copy after a profile
// mutation.
func (srv *sessionService) replaceUser(ctx context.Context, user *entity.User) {
	srv.mu.Lock()
	srv.user = user
	srv.mu.Unlock()

	if token := srv.tokens.Token(); token != "" {
		if err := srv.sessions.Save(ctx, &repository.PersistedSession{Token: token, User: *user}); err != nil {
			srv.logger.Warn("Failed to persist updated user", slog.Any("error", err))
		}
	}

	srv.store.Dispatch(state.SetUser{User: user})
}

// invalidate tears down the local session after the backend rejected the
// token. Also runs as the 401 hook, possibly from a request goroutine.
func (srv *sessionService) invalidate() {
	srv.mu.Lock()
	alreadyAnonymous := srv.user == nil
	srv.generation++
	srv.user = nil
	srv.mu.Unlock()

	srv.tokens.Clear()
	srv.store.Dispatch(state.SetUser{User: nil})

	if err := srv.sessions.Clear(context.Background()); err != nil {
		srv.logger.Warn("Failed to clear persisted session", slog.Any("error", err))
	}

	if !alreadyAnonymous {
		srv.logger.Info("Session invalidated")
	}
}

func (srv *sessionService) setLoading(loading bool) {
	srv.mu.Lock()
	srv.loading = loading
	srv.mu.Unlock()

	srv.store.Dispatch(state.SetLoading{Loading: loading})
}

// tokenExpired peeks at the token's exp claim without verifying the
// signature; verification is the backend's job. Unreadable tokens are
// passed through for the backend to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}

	return expiry.Before(time.Now())
}

// messageFor extracts the user-facing message from a domain error chain.
func messageFor(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}
