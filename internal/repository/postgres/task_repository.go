package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type taskRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{db: db, executor: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tasks (title, description, created_by, company_id, personal_id, category_id, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.CreatedBy,
		task.Owner.CompanyID,
		task.Owner.PersonalID,
		task.CategoryID,
		task.DueDate,
		task.Status,
		time.Now(),
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return err
	}

	for _, userID := range task.AssignedTo {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO task_assignees (task_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			task.ID,
			userID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

const taskColumns = `id, title, description, created_by, company_id, personal_id, category_id, due_date, status, created_at`

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task := &domain.Task{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.CreatedBy,
		&task.Owner.CompanyID,
		&task.Owner.PersonalID,
		&task.CategoryID,
		&task.DueDate,
		&task.Status,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, err
	}

	if err := r.loadAssignees(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) loadAssignees(ctx context.Context, task *domain.Task) error {
	rows, err := r.executor.QueryContext(
		ctx,
		`SELECT user_id FROM task_assignees WHERE task_id = $1 ORDER BY user_id`,
		task.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	task.AssignedTo = make([]int64, 0)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return err
		}
		task.AssignedTo = append(task.AssignedTo, userID)
	}
	return rows.Err()
}

func (r *taskRepository) list(ctx context.Context, query string, arg int64) ([]*domain.Task, error) {
	rows, err := r.executor.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task := &domain.Task{}
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.CreatedBy,
			&task.Owner.CompanyID,
			&task.Owner.PersonalID,
			&task.CategoryID,
			&task.DueDate,
			&task.Status,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, task := range tasks {
		if err := r.loadAssignees(ctx, task); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

func (r *taskRepository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE company_id = $1 ORDER BY id`
	return r.list(ctx, query, companyID)
}

func (r *taskRepository) ListByPersonal(ctx context.Context, personalID int64) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE personal_id = $1 ORDER BY id`
	return r.list(ctx, query, personalID)
}

func (r *taskRepository) ListByAssignee(ctx context.Context, userID int64) ([]*domain.Task, error) {
	query := `
		SELECT t.id, t.title, t.description, t.created_by, t.company_id, t.personal_id, t.category_id, t.due_date, t.status, t.created_at
		FROM tasks t
		JOIN task_assignees ta ON ta.task_id = t.id
		WHERE ta.user_id = $1
		ORDER BY t.id
	`
	return r.list(ctx, query, userID)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, category_id = $4, due_date = $5, status = $6
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.CategoryID,
		task.DueDate,
		task.Status,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("task")
	}

	return nil
}

func (r *taskRepository) SetAssignees(ctx context.Context, taskID int64, userIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_assignees WHERE task_id = $1`, taskID); err != nil {
		return err
	}

	for _, userID := range userIDs {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO task_assignees (task_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			taskID,
			userID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *taskRepository) RemoveUserAssignments(ctx context.Context, userID int64) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM task_assignees WHERE user_id = $1`, userID)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("task")
	}

	return nil
}
