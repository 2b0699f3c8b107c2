package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hostelms/internal/errors"
)

// DefaultTokenExpiry is used when no lifetime is configured.
const DefaultTokenExpiry = 7 * 24 * time.Hour

// Claims represents the identity and role carried by a session token.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Identity returns the caller identity encoded in the claims.
func (c *Claims) Identity() *Identity {
	return &Identity{UserID: c.UserID, Role: c.Role}
}

// JWTService mints and verifies signed session tokens. Verification is
// stateless: no server-side session storage or revocation list.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService creates a new JWT service with the given secret and token
// lifetime. A zero lifetime falls back to DefaultTokenExpiry.
func NewJWTService(secret string, expiry time.Duration) *JWTService {
	if expiry == 0 {
		expiry = DefaultTokenExpiry
	}
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate signs a token encoding the user identity, role, issue time, and
// expiry.
func (s *JWTService) Generate(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token signature and expiry and returns its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Auth("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Auth("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.Auth("invalid token")
	}

	return claims, nil
}
