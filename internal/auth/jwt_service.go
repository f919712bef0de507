// Package auth mints and validates the dashboard's own session cookie.
// The upstream bearer token never reaches the browser; the cookie only
// proves that this browser completed a login, with an expiry mirroring the
// upstream session's exp claim.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"festadmin/internal/model"
)

// CookieName is the session cookie set on successful login.
const CookieName = "festadmin_session"

// Claims are the dashboard cookie claims.
type Claims struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and validates session cookies.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a service with the given signing secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// GenerateSessionToken signs a cookie token expiring together with the
// upstream session.
func (s *JWTService) GenerateSessionToken(sess *model.Session) (string, error) {
	claims := &Claims{
		Username: sess.Username,
		Role:     sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.Username,
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a cookie token.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Secret exposes the signing key for the echo-jwt middleware config.
func (s *JWTService) Secret() []byte { return s.secret }
