package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type taskService struct {
	taskRepo         repository.TaskRepository
	companyRepo      repository.CompanyRepository
	personalRepo     repository.PersonalAccountRepository
	userRepo         repository.UserRepository
	categoryRepo     repository.CategoryRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	companyRepo repository.CompanyRepository,
	personalRepo repository.PersonalAccountRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) TaskService {
	return &taskService{
		taskRepo:         taskRepo,
		companyRepo:      companyRepo,
		personalRepo:     personalRepo,
		userRepo:         userRepo,
		categoryRepo:     categoryRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *taskService) checkOwner(ctx context.Context, owner domain.TaskOwner) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if owner.CompanyID != nil {
		_, err := s.companyRepo.GetByID(ctx, *owner.CompanyID)
		return err
	}
	_, err := s.personalRepo.GetByID(ctx, *owner.PersonalID)
	return err
}

func (s *taskService) CreateTask(ctx context.Context, actor *domain.User, task *domain.Task) (*domain.Task, error) {
	if err := s.checkOwner(ctx, task.Owner); err != nil {
		return nil, err
	}

	if task.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *task.CategoryID); err != nil {
			return nil, err
		}
	}

	if task.Status == "" {
		task.Status = domain.StatusTodo
	}
	if !task.Status.Valid() {
		return nil, domain.NewBadRequestError("invalid task status")
	}
	if task.DueDate.IsZero() {
		task.DueDate = domain.DefaultDueDate(time.Now())
	}

	task.CreatedBy = actor.ID

	assignees, err := s.existingUsers(ctx, task.AssignedTo)
	if err != nil {
		return nil, err
	}
	task.AssignedTo = assignees

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.notifyAssignees(ctx, task)

	return task, nil
}

// existingUsers отбрасывает несуществующие ID без ошибки
func (s *taskService) existingUsers(ctx context.Context, userIDs []int64) ([]int64, error) {
	existing := make([]int64, 0, len(userIDs))
	for _, userID := range userIDs {
		_, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		existing = append(existing, userID)
	}
	return existing, nil
}

// notifyAssignees рассылает уведомления о назначении.
// Каждая попытка изолирована: сбой одного уведомления не отменяет
// ни остальные уведомления, ни создание задачи.
// Уведомление не ссылается на задачу, чтобы не гасить будущее напоминание о дедлайне.
func (s *taskService) notifyAssignees(ctx context.Context, task *domain.Task) {
	for _, assigneeID := range task.AssignedTo {
		userID := assigneeID
		notification := &domain.Notification{
			UserID:  &userID,
			Kind:    domain.KindAssignment,
			Message: fmt.Sprintf("You have been assigned the task %q", task.Title),
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			s.logger.Error("assignment notification failed",
				"task_id", task.ID,
				"user_id", assigneeID,
				"error", err,
			)
		}
	}
}

func (s *taskService) GetTask(ctx context.Context, owner domain.TaskOwner, taskID int64) (*domain.Task, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !sameOwner(task.Owner, owner) {
		return nil, domain.NewNotFoundError("task")
	}

	return task, nil
}

func sameOwner(a, b domain.TaskOwner) bool {
	if a.CompanyID != nil && b.CompanyID != nil {
		return *a.CompanyID == *b.CompanyID
	}
	if a.PersonalID != nil && b.PersonalID != nil {
		return *a.PersonalID == *b.PersonalID
	}
	return false
}

func (s *taskService) ListTasks(ctx context.Context, owner domain.TaskOwner) ([]*domain.Task, error) {
	if err := s.checkOwner(ctx, owner); err != nil {
		return nil, err
	}

	var tasks []*domain.Task
	var err error
	if owner.CompanyID != nil {
		tasks, err = s.taskRepo.ListByCompany(ctx, *owner.CompanyID)
	} else {
		tasks, err = s.taskRepo.ListByPersonal(ctx, *owner.PersonalID)
	}
	if err != nil {
		return nil, err
	}

	generateDueReminders(ctx, s.notificationRepo, s.logger, tasks, nil)

	return tasks, nil
}

func (s *taskService) UpdateTask(ctx context.Context, owner domain.TaskOwner, taskID int64, update TaskUpdate) (*domain.Task, error) {
	task, err := s.GetTask(ctx, owner, taskID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.DueDate != nil {
		task.DueDate = *update.DueDate
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, domain.NewBadRequestError("invalid task status")
		}
		task.Status = *update.Status
	}
	if update.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *update.CategoryID); err != nil {
			return nil, err
		}
		task.CategoryID = update.CategoryID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	if update.AssignedTo != nil {
		assignees, err := s.existingUsers(ctx, *update.AssignedTo)
		if err != nil {
			return nil, err
		}
		if err := s.taskRepo.SetAssignees(ctx, taskID, assignees); err != nil {
			return nil, err
		}
		task.AssignedTo = assignees
	}

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, owner domain.TaskOwner, taskID int64) error {
	if _, err := s.GetTask(ctx, owner, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}

func (s *taskService) ListAssignedTo(ctx context.Context, userID int64) ([]*domain.Task, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByAssignee(ctx, userID)
}
