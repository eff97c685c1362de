package repository

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.Task, error)
	ListByPersonal(ctx context.Context, personalID int64) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID int64) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	SetAssignees(ctx context.Context, taskID int64, userIDs []int64) error
	RemoveUserAssignments(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id int64) error
}
