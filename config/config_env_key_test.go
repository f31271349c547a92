package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
			"timeout": "10s",
		},
		"localization": map[string]any{
			"defaultLanguage": "english",
		},
		"mockApi": map[string]any{
			"secretKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_TIMEOUT", want: "api.timeout"},
		{envKey: "LOCALIZATION_DEFAULTLANGUAGE", want: "localization.defaultLanguage"},
		{envKey: "MOCKAPI_SECRETKEY", want: "mockApi.secretKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
