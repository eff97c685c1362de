package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	personalRepo repository.PersonalAccountRepository
}

// NewCategoryService создает новый экземпляр CategoryService
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	personalRepo repository.PersonalAccountRepository,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		personalRepo: personalRepo,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, personalID int64, name string) (*domain.Category, error) {
	if _, err := s.personalRepo.GetByID(ctx, personalID); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:       name,
		PersonalID: &personalID,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, personalID int64) ([]*domain.Category, error) {
	if _, err := s.personalRepo.GetByID(ctx, personalID); err != nil {
		return nil, err
	}
	return s.categoryRepo.ListByPersonal(ctx, personalID)
}

func (s *categoryService) RenameCategory(ctx context.Context, categoryID int64, name string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, categoryID)
}
