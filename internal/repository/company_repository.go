package repository

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	GetByName(ctx context.Context, name string) (*domain.Company, error)
	GetByAdminID(ctx context.Context, adminID int64) (*domain.Company, error)
	GetByMemberID(ctx context.Context, userID int64) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	UpdateName(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error

	AddMember(ctx context.Context, companyID, userID int64) error
	RemoveMember(ctx context.Context, companyID, userID int64) error
	CountMembers(ctx context.Context, companyID int64) (int, error)
	AddInvitedUser(ctx context.Context, companyID, userID int64) error
	RemoveInvitedUser(ctx context.Context, companyID, userID int64) error
}
