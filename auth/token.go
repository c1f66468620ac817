package auth

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/KevCav575/crm-simple/apperrors"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies signed bearer tokens carrying a user id.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: TokenTTL}
}

// NewTokenServiceFromEnv reads SECRET_KEY, falling back to a dev default.
func NewTokenServiceFromEnv() *TokenService {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev-secret-key"
	}
	return NewTokenService(secret)
}

// Issue returns a signed token embedding the user id, expiring after the TTL.
func (s *TokenService) Issue(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify parses a token and returns the embedded user id. Malformed, badly
// signed and expired tokens all come back as ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperrors.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, apperrors.ErrInvalidToken
	}
	return uint(userID), nil
}
