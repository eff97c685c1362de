package service

import (
	"fmt"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

type TokenService interface {
	// Issue выдает подписанный access-токен для пользователя
	Issue(user *domain.User) (string, error)

	// Verify проверяет токен и возвращает ID пользователя
	Verify(tokenString string) (int64, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) TokenService {
	return &tokenService{secret: []byte(secret), ttl: ttl}
}

func (s *tokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *tokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	return int64(userID), nil
}
