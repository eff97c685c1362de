package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type notificationRepository struct {
	executor DBExecutor
}

func NewNotificationRepository(db *sql.DB) *notificationRepository {
	return &notificationRepository{executor: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, company_id, personal_id, task_id, kind, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		notification.UserID,
		notification.CompanyID,
		notification.PersonalID,
		notification.TaskID,
		notification.Kind,
		notification.Message,
		notification.IsRead,
		time.Now(),
	).Scan(&notification.ID, &notification.CreatedAt)
}

// CreateReminder опирается на частичный уникальный индекс по task_id:
// конкурентная вставка второго напоминания на ту же задачу молча пропускается
func (r *notificationRepository) CreateReminder(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, company_id, personal_id, task_id, kind, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (task_id) WHERE kind = 'REMINDER' DO NOTHING
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		notification.UserID,
		notification.CompanyID,
		notification.PersonalID,
		notification.TaskID,
		domain.KindReminder,
		notification.Message,
		notification.IsRead,
		time.Now(),
	)
	return err
}

const notificationColumns = `id, user_id, company_id, personal_id, task_id, kind, message, is_read, created_at`

func (r *notificationRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1 AND user_id = $2`

	notification := &domain.Notification{}
	err := r.executor.QueryRowContext(ctx, query, id, userID).Scan(
		&notification.ID,
		&notification.UserID,
		&notification.CompanyID,
		&notification.PersonalID,
		&notification.TaskID,
		&notification.Kind,
		&notification.Message,
		&notification.IsRead,
		&notification.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("notification")
		}
		return nil, err
	}
	return notification, nil
}

func (r *notificationRepository) list(ctx context.Context, query string, arg int64) ([]*domain.Notification, error) {
	rows, err := r.executor.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		notification := &domain.Notification{}
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.CompanyID,
			&notification.PersonalID,
			&notification.TaskID,
			&notification.Kind,
			&notification.Message,
			&notification.IsRead,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *notificationRepository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE company_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, companyID)
}

func (r *notificationRepository) ExistsForTask(ctx context.Context, taskID int64) (bool, error) {
	var exists bool
	err := r.executor.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM notifications WHERE task_id = $1)`,
		taskID,
	).Scan(&exists)
	return exists, err
}

func (r *notificationRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.executor.ExecContext(
		ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("notification")
	}

	return nil
}

func (r *notificationRepository) DeleteInvite(ctx context.Context, userID, companyID int64) error {
	query := `DELETE FROM notifications WHERE user_id = $1 AND company_id = $2 AND kind = $3`
	_, err := r.executor.ExecContext(ctx, query, userID, companyID, domain.KindInvite)
	return err
}

func (r *notificationRepository) DeleteByUserAndKind(ctx context.Context, userID int64, kind domain.NotificationKind) error {
	query := `DELETE FROM notifications WHERE user_id = $1 AND kind = $2`
	_, err := r.executor.ExecContext(ctx, query, userID, kind)
	return err
}

func (r *notificationRepository) DeleteAllByUser(ctx context.Context, userID int64) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM notifications WHERE user_id = $1`, userID)
	return err
}
