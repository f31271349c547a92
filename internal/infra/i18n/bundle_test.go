package i18n

import (
	"testing"

	"agriproxy/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBundleParsesAllLanguages(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	for _, language := range []entity.Language{entity.LanguageEnglish, entity.LanguageHindi} {
		text, ok := bundle.Lookup(language, "navigation.home")
		assert.True(t, ok, "navigation.home missing in %s", language)
		assert.NotEmpty(t, text)
	}
}

func TestBundleLookup(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	tests := []struct {
		name     string
		language entity.Language
		key      string
		want     string
		found    bool
	}{
		{name: "top-level nested key", language: entity.LanguageEnglish, key: "cart.total", want: "Total", found: true},
		{name: "deeply nested key", language: entity.LanguageEnglish, key: "soilTesting.status.completed", want: "Completed", found: true},
		{name: "hindi translation", language: entity.LanguageHindi, key: "navigation.store", want: "स्टोर", found: true},
		{name: "missing leaf", language: entity.LanguageEnglish, key: "cart.nonexistent", found: false},
		{name: "missing namespace", language: entity.LanguageEnglish, key: "rocketry.launch", found: false},
		{name: "path ends at an object", language: entity.LanguageEnglish, key: "soilTesting.status", found: false},
		{name: "path descends past a leaf", language: entity.LanguageEnglish, key: "cart.total.extra", found: false},
		{name: "unknown language", language: entity.Language("klingon"), key: "cart.total", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bundle.Lookup(tt.language, tt.key)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBundleDictionariesCoverSameKeys(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	// Spot-check the keys the screens depend on in both languages.
	keys := []string{
		"auth.loginTitle",
		"auth.invalidEmail",
		"store.addToCart",
		"cart.proceedToCheckout",
		"profile.updateSuccess",
		"soilTesting.nutrientLevels.medium",
		"plantDisease.takePhoto",
		"languageSelection.title",
		"demoData.products.copperFungicide",
		"demoData.notifications.timeAgo.hoursAgo",
	}
	for _, language := range []entity.Language{entity.LanguageEnglish, entity.LanguageHindi} {
		for _, key := range keys {
			_, ok := bundle.Lookup(language, key)
			assert.True(t, ok, "%s missing in %s", key, language)
		}
	}
}
