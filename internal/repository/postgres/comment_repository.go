package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type commentRepository struct {
	executor DBExecutor
}

func NewCommentRepository(db *sql.DB) *commentRepository {
	return &commentRepository{executor: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (task_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		comment.TaskID,
		comment.UserID,
		comment.Text,
		time.Now(),
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query := `
		SELECT c.id, c.task_id, c.user_id, u.username, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`

	comment := &domain.Comment{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.TaskID,
		&comment.UserID,
		&comment.Username,
		&comment.Text,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("comment")
		}
		return nil, err
	}
	return comment, nil
}

func (r *commentRepository) ListByTask(ctx context.Context, taskID int64) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.task_id, c.user_id, u.username, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.task_id = $1
		ORDER BY c.created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		comment := &domain.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.TaskID,
			&comment.UserID,
			&comment.Username,
			&comment.Text,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("comment")
	}

	return nil
}
