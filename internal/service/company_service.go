package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

// CompanyDetails - компания вместе с задачами и уведомлениями,
// как её отдает детальный endpoint
type CompanyDetails struct {
	Company       *domain.Company
	Tasks         []*domain.Task
	Notifications []*domain.Notification
	NonMembers    []*domain.User
}

// UserCompanies - рабочие пространства пользователя
type UserCompanies struct {
	AdminOf  *domain.Company
	MemberOf *domain.Company
	Personal *domain.PersonalAccount
}

type CompanyService interface {
	CreateCompany(ctx context.Context, actor *domain.User, name string, plan bool, adminID *int64) (*domain.Company, error)

	// GetCompanyDetails возвращает компанию с задачами; листинг задач
	// попутно создает напоминания о дедлайнах
	GetCompanyDetails(ctx context.Context, companyID int64) (*CompanyDetails, error)

	RenameCompany(ctx context.Context, companyID int64, name string) (*domain.Company, error)
	DeleteCompany(ctx context.Context, companyID int64) error

	CreatePersonalAccount(ctx context.Context, actor *domain.User, name string, adminID *int64) (*domain.PersonalAccount, error)
	DeletePersonalAccount(ctx context.Context, actor *domain.User) error

	GetUserCompanies(ctx context.Context, actor *domain.User) (*UserCompanies, error)

	// ListAllCompanies - сводка по всем компаниям для суперпользователя;
	// напоминания из этого обхода адресуются админу компании
	ListAllCompanies(ctx context.Context, actor *domain.User) ([]*CompanyDetails, error)
}
