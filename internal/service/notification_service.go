package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type NotificationService interface {
	// CreateNotification проверяет все ссылки; INVITE с компанией и получателем
	// дополнительно регистрирует пользователя в invited_users
	CreateNotification(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)

	GetNotification(ctx context.Context, userID, notificationID int64) (*domain.Notification, error)
	ListNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error)
	DeleteNotification(ctx context.Context, userID, notificationID int64) error
}
