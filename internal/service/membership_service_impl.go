package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type membershipService struct {
	companyRepo      repository.CompanyRepository
	userRepo         repository.UserRepository
	taskRepo         repository.TaskRepository
	notificationRepo repository.NotificationRepository
}

// NewMembershipService создает новый экземпляр MembershipService
func NewMembershipService(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	notificationRepo repository.NotificationRepository,
) MembershipService {
	return &membershipService{
		companyRepo:      companyRepo,
		userRepo:         userRepo,
		taskRepo:         taskRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *membershipService) ListMembers(ctx context.Context, companyID int64) ([]domain.Member, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return company.Users, nil
}

func (s *membershipService) AddMember(ctx context.Context, companyID, userID int64) error {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// админ и так всегда авторизован, в списке участников он не хранится
	if user.ID == company.AdminID {
		return nil
	}

	return s.companyRepo.AddMember(ctx, companyID, userID)
}

func (s *membershipService) RemoveMember(ctx context.Context, companyID, userID int64) error {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.ID == company.AdminID {
		return domain.ErrAdminRemoval
	}

	if err := s.companyRepo.RemoveMember(ctx, companyID, userID); err != nil {
		return err
	}

	// задачи остаются, ушедший участник снимается с назначений
	if err := s.taskRepo.RemoveUserAssignments(ctx, userID); err != nil {
		return err
	}

	notification := &domain.Notification{
		UserID:    &company.AdminID,
		CompanyID: &company.ID,
		Kind:      domain.KindMembership,
		Message:   fmt.Sprintf("%s left or was removed from company", user.Username),
	}
	return s.notificationRepo.Create(ctx, notification)
}

func (s *membershipService) IsWithinUserLimit(ctx context.Context, companyID int64) (bool, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return false, err
	}

	if company.Plan {
		return true, nil
	}

	count, err := s.companyRepo.CountMembers(ctx, companyID)
	if err != nil {
		return false, err
	}

	return count <= domain.FreePlanUserLimit, nil
}
