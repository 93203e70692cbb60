package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventbackend/internal/models"
)

type TokenService interface {
	Issue(userID int64, role, name string) (string, error)
	Validate(tokenString string) (*models.Claims, error)
}

type tokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenService(secret []byte, lifetime time.Duration) TokenService {
	return &tokenService{secret: secret, lifetime: lifetime}
}

func (s *tokenService) Issue(userID int64, role, name string) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Validate(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is what we expect
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
