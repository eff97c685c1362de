package repository

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	// CreateReminder вставляет напоминание, молча пропуская дубликат по задаче
	CreateReminder(ctx context.Context, notification *domain.Notification) error
	GetByID(ctx context.Context, id, userID int64) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.Notification, error)
	ExistsForTask(ctx context.Context, taskID int64) (bool, error)
	Delete(ctx context.Context, id, userID int64) error
	DeleteInvite(ctx context.Context, userID, companyID int64) error
	DeleteByUserAndKind(ctx context.Context, userID int64, kind domain.NotificationKind) error
	DeleteAllByUser(ctx context.Context, userID int64) error
}
