package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/taskhub/internal/domain"
)

func newCompanyServiceForTest() (
	CompanyService,
	*MockCompanyRepository,
	*MockPersonalAccountRepository,
	*MockUserRepository,
	*MockTaskRepository,
	*MockNotificationRepository,
) {
	mockCompanyRepo := new(MockCompanyRepository)
	mockPersonalRepo := new(MockPersonalAccountRepository)
	mockUserRepo := new(MockUserRepository)
	mockTaskRepo := new(MockTaskRepository)
	mockNotificationRepo := new(MockNotificationRepository)

	service := NewCompanyService(
		mockCompanyRepo, mockPersonalRepo, mockUserRepo,
		mockTaskRepo, mockNotificationRepo,
		discardLogger(),
	)
	return service, mockCompanyRepo, mockPersonalRepo, mockUserRepo, mockTaskRepo, mockNotificationRepo
}

func TestCompanyService_CreateCompany(t *testing.T) {
	t.Run("создание вычищает старые уведомления админа", func(t *testing.T) {
		service, mockCompanyRepo, _, _, _, mockNotificationRepo := newCompanyServiceForTest()
		ctx := context.Background()

		actor := &domain.User{ID: 10, Username: "boss"}

		mockCompanyRepo.On("GetByName", mock.Anything, "acme").
			Return(nil, domain.NewNotFoundError("company")).Once()
		mockCompanyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Company).ID = 1
			}).Return(nil).Once()
		mockNotificationRepo.On("DeleteAllByUser", mock.Anything, int64(10)).Return(nil).Once()

		company, err := service.CreateCompany(ctx, actor, "acme", false, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(1), company.ID)
		assert.Equal(t, int64(10), company.AdminID)
		mockNotificationRepo.AssertExpectations(t)
	})

	t.Run("ошибка: имя уже занято", func(t *testing.T) {
		service, mockCompanyRepo, _, _, _, _ := newCompanyServiceForTest()
		ctx := context.Background()

		mockCompanyRepo.On("GetByName", mock.Anything, "acme").
			Return(&domain.Company{ID: 1, Name: "acme"}, nil).Once()

		_, err := service.CreateCompany(ctx, &domain.User{ID: 10}, "acme", false, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
		mockCompanyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCompanyService_ListAllCompanies(t *testing.T) {
	t.Run("обход доступен только суперпользователю", func(t *testing.T) {
		service, mockCompanyRepo, _, _, _, _ := newCompanyServiceForTest()
		ctx := context.Background()

		_, err := service.ListAllCompanies(ctx, &domain.User{ID: 10, IsSuperuser: false})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
		mockCompanyRepo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("напоминания из обхода адресуются админу компании", func(t *testing.T) {
		service, mockCompanyRepo, _, mockUserRepo, mockTaskRepo, mockNotificationRepo := newCompanyServiceForTest()
		ctx := context.Background()

		company := &domain.Company{ID: 1, Name: "acme", AdminID: 10}
		tomorrow := time.Now().AddDate(0, 0, 1)
		tasks := []*domain.Task{
			{ID: 100, Title: "Ship v1", Owner: domain.CompanyOwner(1), DueDate: tomorrow, Status: domain.StatusTodo},
		}

		mockCompanyRepo.On("List", mock.Anything).Return([]*domain.Company{company}, nil).Once()
		mockTaskRepo.On("ListByCompany", mock.Anything, int64(1)).Return(tasks, nil).Once()
		mockNotificationRepo.On("ExistsForTask", mock.Anything, int64(100)).Return(false, nil).Once()

		var reminder *domain.Notification
		mockNotificationRepo.On("CreateReminder", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Run(func(args mock.Arguments) {
				reminder = args.Get(1).(*domain.Notification)
			}).Return(nil).Once()
		mockNotificationRepo.On("ListByCompany", mock.Anything, int64(1)).
			Return([]*domain.Notification{}, nil).Once()
		mockUserRepo.On("ListNonMembers", mock.Anything, int64(1)).
			Return([]*domain.User{}, nil).Once()

		details, err := service.ListAllCompanies(ctx, &domain.User{ID: 99, IsSuperuser: true})

		require.NoError(t, err)
		require.Len(t, details, 1)
		require.NotNil(t, reminder)
		require.NotNil(t, reminder.UserID)
		assert.Equal(t, int64(10), *reminder.UserID)
	})
}

func TestCompanyService_GetUserCompanies(t *testing.T) {
	t.Run("админство перекрывает участие", func(t *testing.T) {
		service, mockCompanyRepo, mockPersonalRepo, _, _, _ := newCompanyServiceForTest()
		ctx := context.Background()

		adminOf := &domain.Company{ID: 1, Name: "acme", AdminID: 10}
		mockCompanyRepo.On("GetByAdminID", mock.Anything, int64(10)).Return(adminOf, nil).Once()
		mockPersonalRepo.On("GetByAdminID", mock.Anything, int64(10)).
			Return(nil, domain.NewNotFoundError("personal account")).Once()

		result, err := service.GetUserCompanies(ctx, &domain.User{ID: 10})

		require.NoError(t, err)
		assert.Equal(t, adminOf, result.AdminOf)
		assert.Nil(t, result.MemberOf)
		assert.Nil(t, result.Personal)
		mockCompanyRepo.AssertNotCalled(t, "GetByMemberID", mock.Anything, mock.Anything)
	})
}
