package mockapi

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"agriproxy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the extended /profile routes of the contract.
type ProfileHandler struct {
	users  *UserStore
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(users *UserStore, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		users:  users,
		logger: logger,
	}
}

type extendedProfileRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	Username    *string `json:"username"`
	AddressLine *string `json:"addressLine"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode" validate:"omitempty,len=6,numeric"`
}

// avatarData is the data section of the avatar upload response.
type avatarData struct {
	User      entity.User `json:"user"`
	AvatarURL string      `json:"avatarUrl,omitempty"`
}

// Profile returns the extended profile for the bearer token.
func (h *ProfileHandler) Profile(c echo.Context) error {
	userID, _ := c.Get(contextKeyUserID).(string)
	user, err := h.users.Get(userID)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "Unknown user")
	}

	return ok(c, http.StatusOK, userData{User: *user}, "Profile fetched")
}

// UpdateProfile applies the extended profile fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input extendedProfileRequest
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return fail(c, http.StatusBadRequest, "Pincode must be 6 digits")
	}

	userID, _ := c.Get(contextKeyUserID).(string)
	user, err := h.users.Update(userID, entity.UserPatch{
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
		return fail(c, http.StatusUnauthorized, "Unknown user")
	}

	return ok(c, http.StatusOK, userData{User: *user}, "Profile updated")
}

// UploadAvatar accepts the avatar image and stores its server path on the
// user. The image bytes themselves are discarded; only the path matters
// to the contract.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Avatar file is required")
	}

	avatarPath := "/uploads/avatars/" + uuid.NewString() + filepath.Ext(file.Filename)

	userID, _ := c.Get(contextKeyUserID).(string)
	user, err := h.users.Update(userID, entity.UserPatch{Avatar: &avatarPath})
	if err != nil {
		return fail(c, http.StatusUnauthorized, "Unknown user")
	}

	h.logger.Info("Avatar uploaded", slog.String("userID", userID), slog.String("path", avatarPath))

	return ok(c, http.StatusOK, avatarData{User: *user}, "Avatar updated")
}
