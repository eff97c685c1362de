package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

// InviteService - жизненный цикл приглашения в компанию.
// Состояние "приглашен" хранится как уведомление типа INVITE
// плюс членство в invited_users, отдельной таблицы приглашений нет.
type InviteService interface {
	Invite(ctx context.Context, companyID, userID int64, message string) (*domain.Notification, error)
	AcceptInvite(ctx context.Context, userID, companyID int64) error
	DeclineInvite(ctx context.Context, userID, companyID int64) error
}
