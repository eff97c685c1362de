package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type categoryRepository struct {
	executor DBExecutor
}

func NewCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{executor: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (name, personal_id)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.executor.QueryRowContext(ctx, query, category.Name, category.PersonalID).Scan(&category.ID)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `SELECT id, name, personal_id FROM categories WHERE id = $1`

	category := &domain.Category{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.PersonalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("category")
		}
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) ListByPersonal(ctx context.Context, personalID int64) ([]*domain.Category, error) {
	query := `SELECT id, name, personal_id FROM categories WHERE personal_id = $1 ORDER BY id`

	rows, err := r.executor.QueryContext(ctx, query, personalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.PersonalID); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `UPDATE categories SET name = $2, personal_id = $3 WHERE id = $1`

	result, err := r.executor.ExecContext(ctx, query, category.ID, category.Name, category.PersonalID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("category")
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("category")
	}

	return nil
}
