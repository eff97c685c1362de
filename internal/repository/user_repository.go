package repository

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, excludeID int64) ([]*domain.User, error)
	ListNonMembers(ctx context.Context, companyID int64) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
