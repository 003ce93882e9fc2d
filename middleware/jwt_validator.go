package middleware

import (
	"errors"
	"fmt"

	"github.com/axionlabs/axion-backend/config"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	// ErrTokenExpired is returned when JWT validation fails due to expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for general token validation failures (signature, format).
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenMissingClaim is returned if the 'sub' claim is missing.
	ErrTokenMissingClaim = errors.New("token missing required claim")
)

// Validator defines the interface for validating bearer tokens.
type Validator interface {
	Validate(tokenString string) (string, error)
}

// JWTValidator validates HS256 tokens signed with the configured secret.
type JWTValidator struct {
	secret []byte
}

var _ Validator = (*JWTValidator)(nil)

// NewJWTValidator creates a validator instance using application configuration.
func NewJWTValidator(cfg *config.Config) (Validator, error) {
	if cfg.Server.JwtSecretKey == "" {
		return nil, fmt.Errorf("JWT validator configuration error: JWT_SECRET_KEY must be set")
	}
	return &JWTValidator{secret: []byte(cfg.Server.JwtSecretKey)}, nil
}

// Validate parses and validates the token, returning the subject claim.
func (v *JWTValidator) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse([]byte(tokenString),
		jwt.WithKey(jwa.HS256, v.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return "", fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	sub := token.Subject()
	if sub == "" {
		return "", ErrTokenMissingClaim
	}
	return sub, nil
}
