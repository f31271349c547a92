package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"agriproxy/config"
	"agriproxy/internal/domain/service"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.MockAPI == nil || cfg.MockAPI.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.MockAPI.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: cfg.MockAPI.SecretKey,
		ttl:    ttl,
	}, nil
}

// GenerateToken creates a signed HS256 token for a given user.
func (s *jwtService) GenerateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,                       // Subject (who the token is for)
		"iat": time.Now().Unix(),            // Issued At
		"exp": time.Now().Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the token signature and expiry and returns the
// user id it was issued for.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "invalid token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("token carries no subject")
	}

	return subject, nil
}
