package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"biomarket-api/internal/config"
	"biomarket-api/internal/model"
)

// Claims carried in every issued token.
type Claims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies bearer tokens with HS256.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

func NewJWTManager(cfg config.JWT) (*JWTManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &JWTManager{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiry,
	}, nil
}

func (m *JWTManager) Generate(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses a token string and returns its claims. Tokens signed with a
// different method or secret, and expired tokens, are rejected.
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, okMethod := t.Method.(*jwt.SigningMethodHMAC); !okMethod {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, okClaims := token.Claims.(*Claims)
	if !okClaims || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
