package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type MembershipService interface {
	// ListMembers возвращает участников компании
	ListMembers(ctx context.Context, companyID int64) ([]domain.Member, error)

	// AddMember добавляет пользователя в компанию, повторный вызов - no-op
	AddMember(ctx context.Context, companyID, userID int64) error

	// RemoveMember убирает участника и снимает его со всех задач;
	// администратора удалить нельзя
	RemoveMember(ctx context.Context, companyID, userID int64) error

	// IsWithinUserLimit проверяет лимит участников для бесплатного плана
	IsWithinUserLimit(ctx context.Context, companyID int64) (bool, error)
}
