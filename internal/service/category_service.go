package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, personalID int64, name string) (*domain.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)
	ListCategories(ctx context.Context, personalID int64) ([]*domain.Category, error)
	RenameCategory(ctx context.Context, categoryID int64, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}
