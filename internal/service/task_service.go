package service

import (
	"context"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

// TaskUpdate - частичное обновление, nil-поля не трогаются
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *domain.Status
	CategoryID  *int64
	AssignedTo  *[]int64
}

type TaskService interface {
	// CreateTask создает задачу и рассылает уведомления назначенным
	CreateTask(ctx context.Context, actor *domain.User, task *domain.Task) (*domain.Task, error)

	GetTask(ctx context.Context, owner domain.TaskOwner, taskID int64) (*domain.Task, error)

	// ListTasks возвращает задачи владельца, попутно создавая напоминания
	// для задач с дедлайном завтра
	ListTasks(ctx context.Context, owner domain.TaskOwner) ([]*domain.Task, error)

	UpdateTask(ctx context.Context, owner domain.TaskOwner, taskID int64, update TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, owner domain.TaskOwner, taskID int64) error
	ListAssignedTo(ctx context.Context, userID int64) ([]*domain.Task, error)
}
