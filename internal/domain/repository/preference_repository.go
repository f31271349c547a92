package repository

import (
	"context"
	"errors"

	"agriproxy/internal/domain/entity"
)

// ErrPreferenceNotFound is returned when a preference key has never been set.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository persists user preferences that outlive a session.
// The selected language is owned by the localization store.
type PreferenceRepository interface {
	// SaveLanguage persists the selected interface language.
	SaveLanguage(ctx context.Context, language entity.Language) error

	// LoadLanguage retrieves the persisted language, or
	// ErrPreferenceNotFound when none was ever selected.
	LoadLanguage(ctx context.Context) (entity.Language, error)
}
