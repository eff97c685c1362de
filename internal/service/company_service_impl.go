package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type companyService struct {
	companyRepo      repository.CompanyRepository
	personalRepo     repository.PersonalAccountRepository
	userRepo         repository.UserRepository
	taskRepo         repository.TaskRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewCompanyService создает новый экземпляр CompanyService
func NewCompanyService(
	companyRepo repository.CompanyRepository,
	personalRepo repository.PersonalAccountRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) CompanyService {
	return &companyService{
		companyRepo:      companyRepo,
		personalRepo:     personalRepo,
		userRepo:         userRepo,
		taskRepo:         taskRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, actor *domain.User, name string, plan bool, adminID *int64) (*domain.Company, error) {
	existing, err := s.companyRepo.GetByName(ctx, name)
	if err == nil && existing != nil {
		return nil, domain.NewConflictError("company with name " + name)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	admin := actor
	if adminID != nil {
		admin, err = s.userRepo.GetByID(ctx, *adminID)
		if err != nil {
			return nil, err
		}
	}

	company := &domain.Company{
		Name:    name,
		Plan:    plan,
		AdminID: admin.ID,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	// устаревшие уведомления админа (старые приглашения и т.п.) вычищаются
	if err := s.notificationRepo.DeleteAllByUser(ctx, admin.ID); err != nil {
		return nil, err
	}

	return company, nil
}

func (s *companyService) companyDetails(ctx context.Context, company *domain.Company, reminderRecipient *int64) (*CompanyDetails, error) {
	tasks, err := s.taskRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	generateDueReminders(ctx, s.notificationRepo, s.logger, tasks, reminderRecipient)

	notifications, err := s.notificationRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	nonMembers, err := s.userRepo.ListNonMembers(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	return &CompanyDetails{
		Company:       company,
		Tasks:         tasks,
		Notifications: notifications,
		NonMembers:    nonMembers,
	}, nil
}

func (s *companyService) GetCompanyDetails(ctx context.Context, companyID int64) (*CompanyDetails, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return s.companyDetails(ctx, company, nil)
}

func (s *companyService) RenameCompany(ctx context.Context, companyID int64, name string) (*domain.Company, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	if err := s.companyRepo.UpdateName(ctx, companyID, name); err != nil {
		return nil, err
	}

	return s.companyRepo.GetByID(ctx, companyID)
}

func (s *companyService) DeleteCompany(ctx context.Context, companyID int64) error {
	return s.companyRepo.Delete(ctx, companyID)
}

func (s *companyService) CreatePersonalAccount(ctx context.Context, actor *domain.User, name string, adminID *int64) (*domain.PersonalAccount, error) {
	existing, err := s.personalRepo.GetByName(ctx, name)
	if err == nil && existing != nil {
		return nil, domain.NewConflictError("personal account with name " + name)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	admin := actor
	if adminID != nil {
		admin, err = s.userRepo.GetByID(ctx, *adminID)
		if err != nil {
			return nil, err
		}
	}

	account := &domain.PersonalAccount{
		Name:    name,
		AdminID: admin.ID,
	}
	if err := s.personalRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *companyService) DeletePersonalAccount(ctx context.Context, actor *domain.User) error {
	account, err := s.personalRepo.GetByAdminID(ctx, actor.ID)
	if err != nil {
		return err
	}
	return s.personalRepo.Delete(ctx, account.ID)
}

func (s *companyService) GetUserCompanies(ctx context.Context, actor *domain.User) (*UserCompanies, error) {
	result := &UserCompanies{}

	adminOf, err := s.companyRepo.GetByAdminID(ctx, actor.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	result.AdminOf = adminOf

	if result.AdminOf == nil {
		memberOf, err := s.companyRepo.GetByMemberID(ctx, actor.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		result.MemberOf = memberOf
	}

	personal, err := s.personalRepo.GetByAdminID(ctx, actor.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	result.Personal = personal

	return result, nil
}

func (s *companyService) ListAllCompanies(ctx context.Context, actor *domain.User) ([]*CompanyDetails, error) {
	if !actor.IsSuperuser {
		return nil, domain.ErrUnauthorized
	}

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*CompanyDetails, 0, len(companies))
	for _, company := range companies {
		d, err := s.companyDetails(ctx, company, &company.AdminID)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, nil
}
