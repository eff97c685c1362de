package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

// RegisterInput - данные регистрации нового пользователя
type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// ProfileUpdate - частичное обновление профиля, nil-поля не трогаются
type ProfileUpdate struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	Password  *string
}

type UserService interface {
	// Register создает пользователя и сразу выдает токен
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)

	// Login возвращает токен по паре email/пароль
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*domain.User, error)
	ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error)
	DeleteUser(ctx context.Context, actor *domain.User, userID int64) error
}
