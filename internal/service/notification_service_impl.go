package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	companyRepo      repository.CompanyRepository
	personalRepo     repository.PersonalAccountRepository
	taskRepo         repository.TaskRepository
}

// NewNotificationService создает новый экземпляр NotificationService
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	personalRepo repository.PersonalAccountRepository,
	taskRepo repository.TaskRepository,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		companyRepo:      companyRepo,
		personalRepo:     personalRepo,
		taskRepo:         taskRepo,
	}
}

func (s *notificationService) CreateNotification(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	if notification.Kind == "" {
		notification.Kind = domain.KindGeneric
	}
	if !notification.Kind.Valid() {
		return nil, domain.NewBadRequestError("invalid notification kind")
	}

	if notification.UserID != nil {
		if _, err := s.userRepo.GetByID(ctx, *notification.UserID); err != nil {
			return nil, err
		}
	}
	if notification.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *notification.CompanyID); err != nil {
			return nil, err
		}
	}
	if notification.PersonalID != nil {
		if _, err := s.personalRepo.GetByID(ctx, *notification.PersonalID); err != nil {
			return nil, err
		}
	}
	if notification.TaskID != nil {
		if _, err := s.taskRepo.GetByID(ctx, *notification.TaskID); err != nil {
			return nil, err
		}
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	// ручное приглашение через API уведомлений
	if notification.Kind == domain.KindInvite && notification.CompanyID != nil && notification.UserID != nil {
		if err := s.companyRepo.AddInvitedUser(ctx, *notification.CompanyID, *notification.UserID); err != nil {
			return nil, err
		}
	}

	return notification, nil
}

func (s *notificationService) GetNotification(ctx context.Context, userID, notificationID int64) (*domain.Notification, error) {
	return s.notificationRepo.GetByID(ctx, notificationID, userID)
}

func (s *notificationService) ListNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.notificationRepo.ListByUser(ctx, userID)
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.Delete(ctx, notificationID, userID)
}
