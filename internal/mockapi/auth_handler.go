package mockapi

import (
	"log/slog"
	"net/http"

	"agriproxy/internal/domain/entity"
	"agriproxy/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the /auth routes of the contract.
type AuthHandler struct {
	users  *UserStore
	tokens service.TokenService
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(users *UserStore, tokens service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type profileUpdateRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

// userData is the data section of every auth response.
type userData struct {
	User entity.User `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return fail(c, http.StatusBadRequest, "Email and password are required")
	}

	user, err := h.users.Authenticate(input.Email, input.Password)
	if err != nil {
		h.logger.Info("Login rejected", slog.String("email", input.Email))

		return fail(c, http.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to issue token")
	}

	h.logger.Info("User logged in", slog.String("userID", user.ID))

	return okWithToken(c, http.StatusOK, userData{User: *user}, token, "Login successful")
}

// Signup creates an account and returns a session for it.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input signupRequest
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return fail(c, http.StatusBadRequest, "Name, email and a password of at least 6 characters are required")
	}

	user, err := h.users.Create(input.Name, input.Email, input.Password, input.Phone, input.Location)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return fail(c, http.StatusConflict, "An account with this email already exists")
		}

		return fail(c, http.StatusInternalServerError, "Failed to create account")
	}

	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to issue token")
	}

	h.logger.Info("User signed up", slog.String("userID", user.ID))

	return okWithToken(c, http.StatusCreated, userData{User: *user}, token, "Account created")
}

// Profile returns the user for the bearer token.
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "Unknown user")
	}

	return ok(c, http.StatusOK, userData{User: *user}, "Profile fetched")
}

// UpdateProfile applies the mutable core profile fields.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var input profileUpdateRequest
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid profile input")
	}

	userID, _ := c.Get(contextKeyUserID).(string)
	user, err := h.users.Update(userID, entity.UserPatch{
		Name:     input.Name,
		Phone:    input.Phone,
		Location: input.Location,
	})
	if err != nil {
		return fail(c, http.StatusUnauthorized, "Unknown user")
	}

	return ok(c, http.StatusOK, userData{User: *user}, "Profile updated")
}

// Logout revokes the bearer token.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, _ := c.Get(contextKeyToken).(string); token != "" {
		h.users.RevokeToken(token)
	}

	return ok(c, http.StatusOK, nil, "Logged out")
}

func (h *AuthHandler) currentUser(c echo.Context) (*entity.User, error) {
	userID, _ := c.Get(contextKeyUserID).(string)
	user, err := h.users.Get(userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}
