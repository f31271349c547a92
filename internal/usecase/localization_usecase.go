package usecase

import (
	"context"

	"agriproxy/internal/domain/entity"
)

// LocalizationUsecase defines the interface for the localization store.
type LocalizationUsecase interface {
	// Restore loads the persisted language selection. Without one the
	// store stays on the default language and reports no selection.
	Restore(ctx context.Context) error

	// SetLanguage persists the selection and swaps the active table
	// synchronously: the next Translate call already resolves in the
	// new language.
	SetLanguage(ctx context.Context, language entity.Language) error

	// Language returns the active language.
	Language() entity.Language

	// IsLanguageSelected reports whether the user has ever made an
	// explicit selection.
	IsLanguageSelected() bool

	// Translate resolves a dotted key in the active language, falling
	// back to the default language and finally to the key itself.
	// Total: it never fails.
	Translate(key string) string
}
