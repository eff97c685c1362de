package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/taskhub/internal/domain"
)

func TestInviteService_Invite(t *testing.T) {
	t.Run("успешное приглашение", func(t *testing.T) {
		mockCompanyRepo := new(MockCompanyRepository)
		mockUserRepo := new(MockUserRepository)
		mockNotificationRepo := new(MockNotificationRepository)

		service := NewInviteService(mockCompanyRepo, mockUserRepo, mockNotificationRepo)
		ctx := context.Background()

		company := &domain.Company{ID: 1, Name: "acme", AdminID: 10}
		user := &domain.User{ID: 20, Username: "alice"}

		mockCompanyRepo.On("GetByID", mock.Anything, int64(1)).Return(company, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(20)).Return(user, nil).Once()
		mockNotificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil).Once()
		mockCompanyRepo.On("AddInvitedUser", mock.Anything, int64(1), int64(20)).Return(nil).Once()

		notification, err := service.Invite(ctx, 1, 20, "")

		require.NoError(t, err)
		assert.Equal(t, domain.KindInvite, notification.Kind)
		assert.Equal(t, "You have been invited to join acme", notification.Message)
		require.NotNil(t, notification.UserID)
		assert.Equal(t, int64(20), *notification.UserID)
		require.NotNil(t, notification.CompanyID)
		assert.Equal(t, int64(1), *notification.CompanyID)
		mockCompanyRepo.AssertExpectations(t)
		mockNotificationRepo.AssertExpectations(t)
	})

	t.Run("ошибка: нельзя пригласить админа", func(t *testing.T) {
		mockCompanyRepo := new(MockCompanyRepository)
		mockUserRepo := new(MockUserRepository)
		mockNotificationRepo := new(MockNotificationRepository)

		service := NewInviteService(mockCompanyRepo, mockUserRepo, mockNotificationRepo)
		ctx := context.Background()

		company := &domain.Company{ID: 1, Name: "acme", AdminID: 10}
		admin := &domain.User{ID: 10, Username: "boss"}

		mockCompanyRepo.On("GetByID", mock.Anything, int64(1)).Return(company, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(10)).Return(admin, nil).Once()

		notification, err := service.Invite(ctx, 1, 10, "")

		require.Error(t, err)
		assert.Nil(t, notification)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
		mockNotificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockCompanyRepo.AssertNotCalled(t, "AddInvitedUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestInviteService_AcceptInvite(t *testing.T) {
	t.Run("принятие переводит в участники и уведомляет админа", func(t *testing.T) {
		mockCompanyRepo := new(MockCompanyRepository)
		mockUserRepo := new(MockUserRepository)
		mockNotificationRepo := new(MockNotificationRepository)

		service := NewInviteService(mockCompanyRepo, mockUserRepo, mockNotificationRepo)
		ctx := context.Background()

		company := &domain.Company{ID: 1, Name: "acme", AdminID: 10}
		user := &domain.User{ID: 20, Username: "alice"}

		mockCompanyRepo.On("GetByID", mock.Anything, int64(1)).Return(company, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(20)).Return(user, nil).Once()
		mockNotificationRepo.On("DeleteByUserAndKind", mock.Anything, int64(20), domain.KindInvite).Return(nil).Once()
		mockCompanyRepo.On("AddMember", mock.Anything, int64(1), int64(20)).Return(nil).Once()
		mockCompanyRepo.On("RemoveInvitedUser", mock.Anything, int64(1), int64(20)).Return(nil).Once()

		var notification *domain.Notification
		mockNotificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Run(func(args mock.Arguments) {
				notification = args.Get(1).(*domain.Notification)
			}).Return(nil).Once()

		err := service.AcceptInvite(ctx, 20, 1)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, "User: alice approved offer to join", notification.Message)
		assert.Equal(t, domain.KindMembership, notification.Kind)
		require.NotNil(t, notification.UserID)
		assert.Equal(t, int64(10), *notification.UserID)
		mockCompanyRepo.AssertExpectations(t)
		mockNotificationRepo.AssertExpectations(t)
	})

	// принятие стирает приглашения пользователя во все компании, не только в эту
	t.Run("принятие стирает все приглашения пользователя", func(t *testing.T) {
		mockCompanyRepo := new(MockCompanyRepository)
		mockUserRepo := new(MockUserRepository)
		mockNotificationRepo := new(MockNotificationRepository)

		service := NewInviteService(mockCompanyRepo, mockUserRepo, mockNotificationRepo)
		ctx := context.Background()

		company := &domain.Company{ID: 1, Name: "acme", AdminID: 10}
		user := &domain.User{ID: 20, Username: "alice"}

		mockCompanyRepo.On("GetByID", mock.Anything, int64(1)).Return(company, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(20)).Return(user, nil).Once()
		mockNotificationRepo.On("DeleteByUserAndKind", mock.Anything, int64(20), domain.KindInvite).Return(nil).Once()
		mockCompanyRepo.On("AddMember", mock.Anything, int64(1), int64(20)).Return(nil).Once()
		mockCompanyRepo.On("RemoveInvitedUser", mock.Anything, int64(1), int64(20)).Return(nil).Once()
		mockNotificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil).Once()

		err := service.AcceptInvite(ctx, 20, 1)

		require.NoError(t, err)
		mockNotificationRepo.AssertCalled(t, "DeleteByUserAndKind", mock.Anything, int64(20), domain.KindInvite)
		mockNotificationRepo.AssertNotCalled(t, "DeleteInvite", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("принятие без существующего приглашения тоже успешно", func(t *testing.T) {
		mockCompanyRepo := new(MockCompanyRepository)
		mockUserRepo := new(MockUserRepository)
		mockNotificationRepo := new(MockNotificationRepository)

		service := NewInviteService(mockCompanyRepo, mockUserRepo, mockNotificationRepo)
		ctx := context.Background()

		company := &domain.Company{ID: 1, Name: "acme", AdminID: 10}
		user := &domain.User{ID: 20, Username: "alice"}

		mockCompanyRepo.On("GetByID", mock.Anything, int64(1)).Return(company, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(20)).Return(user, nil).Once()
		// уведомлений с приглашениями нет, удаление проходит вхолостую
		mockNotificationRepo.On("DeleteByUserAndKind", mock.Anything, int64(20), domain.KindInvite).Return(nil).Once()
		mockCompanyRepo.On("AddMember", mock.Anything, int64(1), int64(20)).Return(nil).Once()
		mockCompanyRepo.On("RemoveInvitedUser", mock.Anything, int64(1), int64(20)).Return(nil).Once()
		mockNotificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil).Once()

		err := service.AcceptInvite(ctx, 20, 1)

		require.NoError(t, err)
	})
}

func TestInviteService_DeclineInvite(t *testing.T) {
	t.Run("отказ убирает из приглашенных и уведомляет админа", func(t *testing.T) {
		mockCompanyRepo := new(MockCompanyRepository)
		mockUserRepo := new(MockUserRepository)
		mockNotificationRepo := new(MockNotificationRepository)

		service := NewInviteService(mockCompanyRepo, mockUserRepo, mockNotificationRepo)
		ctx := context.Background()

		company := &domain.Company{ID: 1, Name: "acme", AdminID: 10}
		user := &domain.User{ID: 20, Username: "alice"}

		mockCompanyRepo.On("GetByID", mock.Anything, int64(1)).Return(company, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(20)).Return(user, nil).Once()
		mockNotificationRepo.On("DeleteInvite", mock.Anything, int64(20), int64(1)).Return(nil).Once()
		mockCompanyRepo.On("RemoveInvitedUser", mock.Anything, int64(1), int64(20)).Return(nil).Once()

		var notification *domain.Notification
		mockNotificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Run(func(args mock.Arguments) {
				notification = args.Get(1).(*domain.Notification)
			}).Return(nil).Once()

		err := service.DeclineInvite(ctx, 20, 1)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, "User: alice declined offer to join", notification.Message)
		mockCompanyRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
	})
}
