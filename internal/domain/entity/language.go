// Package entity contains the core business objects of the project.
package entity

// Language identifies a supported interface language.
type Language string

const (
	// LanguageEnglish is the default interface language and the fallback
	// for missing translation keys.
	LanguageEnglish Language = "english"
	// LanguageHindi is the Hindi interface language.
	LanguageHindi Language = "hindi"
)

// String returns the string representation of the Language.
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the Language is a valid value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi:
		return true
	default:
		return false
	}
}
