package repository

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type PersonalAccountRepository interface {
	Create(ctx context.Context, account *domain.PersonalAccount) error
	GetByID(ctx context.Context, id int64) (*domain.PersonalAccount, error)
	GetByName(ctx context.Context, name string) (*domain.PersonalAccount, error)
	GetByAdminID(ctx context.Context, adminID int64) (*domain.PersonalAccount, error)
	Delete(ctx context.Context, id int64) error
}
