package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type inviteService struct {
	companyRepo      repository.CompanyRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewInviteService создает новый экземпляр InviteService
func NewInviteService(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) InviteService {
	return &inviteService{
		companyRepo:      companyRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *inviteService) Invite(ctx context.Context, companyID, userID int64, message string) (*domain.Notification, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// админ никогда не попадает в invited_users
	if user.ID == company.AdminID {
		return nil, domain.NewInvalidStateError("cannot invite the company admin")
	}

	if message == "" {
		message = fmt.Sprintf("You have been invited to join %s", company.Name)
	}

	notification := &domain.Notification{
		UserID:    &user.ID,
		CompanyID: &company.ID,
		Kind:      domain.KindInvite,
		Message:   message,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	if err := s.companyRepo.AddInvitedUser(ctx, companyID, userID); err != nil {
		return nil, err
	}

	return notification, nil
}

func (s *inviteService) AcceptInvite(ctx context.Context, userID, companyID int64) error {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// принятие намеренно стирает ВСЕ приглашения пользователя,
	// включая приглашения других компаний: устаревшие офферы не копятся
	if err := s.notificationRepo.DeleteByUserAndKind(ctx, userID, domain.KindInvite); err != nil {
		return err
	}

	if err := s.companyRepo.AddMember(ctx, companyID, userID); err != nil {
		return err
	}

	if err := s.companyRepo.RemoveInvitedUser(ctx, companyID, userID); err != nil {
		return err
	}

	notification := &domain.Notification{
		UserID:    &company.AdminID,
		CompanyID: &company.ID,
		Kind:      domain.KindMembership,
		Message:   fmt.Sprintf("User: %s approved offer to join", user.Username),
	}
	return s.notificationRepo.Create(ctx, notification)
}

func (s *inviteService) DeclineInvite(ctx context.Context, userID, companyID int64) error {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// отказ без существующего приглашения тоже успешен
	if err := s.notificationRepo.DeleteInvite(ctx, userID, companyID); err != nil {
		return err
	}

	if err := s.companyRepo.RemoveInvitedUser(ctx, companyID, userID); err != nil {
		return err
	}

	notification := &domain.Notification{
		UserID:    &company.AdminID,
		CompanyID: &company.ID,
		Kind:      domain.KindMembership,
		Message:   fmt.Sprintf("User: %s declined offer to join", user.Username),
	}
	return s.notificationRepo.Create(ctx, notification)
}
