package impl

import (
	"context"
	"log/slog"
	"sync"

	"agriproxy/internal/domain/entity"
	domainerrors "agriproxy/internal/domain/errors"
	"agriproxy/internal/domain/repository"
	"agriproxy/internal/domain/service"
	"agriproxy/internal/usecase"

	"github.com/pkg/errors"
)

// localizationService implements the LocalizationUsecase interface.
type localizationService struct {
	preferences repository.PreferenceRepository
	translator  service.Translator
	fallback    entity.Language
	logger      *slog.Logger

	mu       sync.RWMutex
	language entity.Language
	selected bool
}

// NewLocalizationService is the constructor for localizationService.
// An unknown configured default falls back to English.
func NewLocalizationService(
	preferences repository.PreferenceRepository,
	translator service.Translator,
	defaultLanguage string,
	logger *slog.Logger,
) usecase.LocalizationUsecase {
	fallback := entity.Language(defaultLanguage)
	if !fallback.IsValid() {
		fallback = entity.LanguageEnglish
	}

	return &localizationService{
		preferences: preferences,
		translator:  translator,
		fallback:    fallback,
		logger:      logger,
		language:    fallback,
	}
}

// Restore loads the persisted language selection. Without one the store
// stays on the default language and reports no explicit selection.
func (srv *localizationService) Restore(ctx context.Context) error {
	language, err := srv.preferences.LoadLanguage(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load language preference")
	}

	srv.mu.Lock()
	srv.language = language
	srv.selected = true
	srv.mu.Unlock()

	srv.logger.Info("Restored language selection", slog.String("language", language.String()))

	return nil
}

// SetLanguage persists the selection and swaps the active table
// synchronously.
func (srv *localizationService) SetLanguage(ctx context.Context, language entity.Language) error {
	if !language.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unsupported language %q", language)
	}

	if err := srv.preferences.SaveLanguage(ctx, language); err != nil {
		return errors.Wrap(err, "failed to persist language selection")
	}

	srv.mu.Lock()
	srv.language = language
	srv.selected = true
	srv.mu.Unlock()

	srv.logger.Info("Language changed", slog.String("language", language.String()))

	return nil
}

// Language returns the active language.
func (srv *localizationService) Language() entity.Language {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.language
}

// IsLanguageSelected reports whether the user ever made an explicit
// selection.
func (srv *localizationService) IsLanguageSelected() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.selected
}

// Translate resolves a dotted key in the active language, then in the
// default language table, and finally returns the key verbatim. Total:
// every input yields a usable string.
func (srv *localizationService) Translate(key string) string {
	active := srv.Language()

	if text, ok := srv.translator.Lookup(active, key); ok {
		return text
	}
	if active != srv.fallback {
		if text, ok := srv.translator.Lookup(srv.fallback, key); ok {
			return text
		}
	}

	return key
}
