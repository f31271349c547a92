package service

import "agriproxy/internal/domain/entity"

// TokenCache holds the bearer token shared between the session store and
// the HTTP client. The session store is the only writer.
type TokenCache interface {
	Set(token string)
	Clear()
	Token() string
}

// UnauthorizedNotifier lets the session store register the callback run
// when the backend rejects the cached token.
type UnauthorizedNotifier interface {
	SetUnauthorizedHook(hook func())
}

// Translator resolves a dotted translation key in one language's table.
// The second return is false when the key is absent.
type Translator interface {
	Lookup(language entity.Language, key string) (string, bool)
}
