package impl

import (
	"context"
	"testing"

	"agriproxy/internal/domain/entity"
	domainerrors "agriproxy/internal/domain/errors"
	"agriproxy/internal/domain/repository"
	mockRepo "agriproxy/internal/mocks/repository"
	"agriproxy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTranslator serves lookups from fixed per-language tables.
type fakeTranslator struct {
	tables map[entity.Language]map[string]string
}

func (f *fakeTranslator) Lookup(language entity.Language, key string) (string, bool) {
	text, ok := f.tables[language][key]

	return text, ok
}

func createTestLocalizationService(t *testing.T, defaultLanguage string) (
	usecase.LocalizationUsecase,
	*mockRepo.MockPreferenceRepository,
) {
	t.Helper()

	preferences := mockRepo.NewMockPreferenceRepository(t)
	translator := &fakeTranslator{
		tables: map[entity.Language]map[string]string{
			entity.LanguageEnglish: {
				"common.appName":   "AgriCare",
				"auth.login":       "Login",
				"store.categories": "Categories",
			},
			entity.LanguageHindi: {
				"common.appName":   "एग्रीकेयर",
				"auth.login":       "लॉगिन",
				"soilTesting.cost": "₹299",
			},
		},
	}

	service := NewLocalizationService(preferences, translator, defaultLanguage, testLogger())

	return service, preferences
}

func TestLocalizationService_DefaultsToEnglish(t *testing.T) {
	service, _ := createTestLocalizationService(t, "english")

	assert.Equal(t, entity.LanguageEnglish, service.Language())
	assert.False(t, service.IsLanguageSelected())
}

func TestLocalizationService_UnknownDefaultFallsBackToEnglish(t *testing.T) {
	service, _ := createTestLocalizationService(t, "klingon")

	assert.Equal(t, entity.LanguageEnglish, service.Language())
}

func TestLocalizationService_Restore_NoSelectionKeepsDefault(t *testing.T) {
	service, preferences := createTestLocalizationService(t, "english")
	ctx := context.Background()

	preferences.EXPECT().LoadLanguage(ctx).
		Return(entity.Language(""), repository.ErrPreferenceNotFound)

	require.NoError(t, service.Restore(ctx))
	assert.Equal(t, entity.LanguageEnglish, service.Language())
	assert.False(t, service.IsLanguageSelected())
}

func TestLocalizationService_Restore_AppliesPersistedSelection(t *testing.T) {
	service, preferences := createTestLocalizationService(t, "english")
	ctx := context.Background()

	preferences.EXPECT().LoadLanguage(ctx).Return(entity.LanguageHindi, nil)

	require.NoError(t, service.Restore(ctx))
	assert.Equal(t, entity.LanguageHindi, service.Language())
	assert.True(t, service.IsLanguageSelected())
}

func TestLocalizationService_SetLanguage_PersistsBeforeSwap(t *testing.T) {
	service, preferences := createTestLocalizationService(t, "english")
	ctx := context.Background()

	preferences.EXPECT().SaveLanguage(ctx, entity.LanguageHindi).Return(nil)

	require.NoError(t, service.SetLanguage(ctx, entity.LanguageHindi))
	assert.Equal(t, entity.LanguageHindi, service.Language())
	assert.True(t, service.IsLanguageSelected())
}

func TestLocalizationService_SetLanguage_PersistFailureKeepsCurrent(t *testing.T) {
	service, preferences := createTestLocalizationService(t, "english")
	ctx := context.Background()

	preferences.EXPECT().SaveLanguage(ctx, entity.LanguageHindi).Return(assert.AnError)

	err := service.SetLanguage(ctx, entity.LanguageHindi)

	require.Error(t, err)
	assert.Equal(t, entity.LanguageEnglish, service.Language())
	assert.False(t, service.IsLanguageSelected())
}

func TestLocalizationService_SetLanguage_RejectsUnknownLanguage(t *testing.T) {
	service, _ := createTestLocalizationService(t, "english")

	err := service.SetLanguage(context.Background(), entity.Language("klingon"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, entity.LanguageEnglish, service.Language())
}

func TestLocalizationService_Translate_FallbackChain(t *testing.T) {
	service, preferences := createTestLocalizationService(t, "english")
	ctx := context.Background()

	preferences.EXPECT().SaveLanguage(ctx, entity.LanguageHindi).Return(nil)
	require.NoError(t, service.SetLanguage(ctx, entity.LanguageHindi))

	// Present in the active language.
	assert.Equal(t, "लॉगिन", service.Translate("auth.login"))
	// Missing in hindi, present in english.
	assert.Equal(t, "Categories", service.Translate("store.categories"))
	// Missing everywhere: the key itself comes back.
	assert.Equal(t, "store.doesNotExist", service.Translate("store.doesNotExist"))
}

func TestLocalizationService_Translate_FallsBackToConfiguredDefault(t *testing.T) {
	service, preferences := createTestLocalizationService(t, "hindi")
	ctx := context.Background()

	preferences.EXPECT().SaveLanguage(ctx, entity.LanguageEnglish).Return(nil)
	require.NoError(t, service.SetLanguage(ctx, entity.LanguageEnglish))

	// Missing in the active english table, present in the configured
	// default. The chain retries against hindi, not a hardcoded english.
	assert.Equal(t, "₹299", service.Translate("soilTesting.cost"))
}

func TestLocalizationService_Translate_EnglishActive(t *testing.T) {
	service, _ := createTestLocalizationService(t, "english")

	assert.Equal(t, "AgriCare", service.Translate("common.appName"))
	assert.Equal(t, "no.such.key", service.Translate("no.such.key"))
}
