//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository/postgres"
	"github.com/bagdasarian/taskhub/internal/service"
)

func createUser(t *testing.T, ctx context.Context, db *sql.DB, email, username string) *domain.User {
	t.Helper()
	userRepo := postgres.NewUserRepository(db)
	user := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: "x",
	}
	require.NoError(t, userRepo.Create(ctx, user))
	return user
}

func TestInviteRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	companyRepo := postgres.NewCompanyRepository(db)
	userRepo := postgres.NewUserRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	inviteService := service.NewInviteService(companyRepo, userRepo, notificationRepo)

	// Админ, компания и приглашаемый пользователь
	admin := createUser(t, ctx, db, "admin@example.com", "admin")
	invitee := createUser(t, ctx, db, "alice@example.com", "alice")

	company := &domain.Company{Name: "acme", AdminID: admin.ID}
	require.NoError(t, companyRepo.Create(ctx, company))

	// 1. Приглашение: уведомление + попадание в invited_users
	notification, err := inviteService.Invite(ctx, company.ID, invitee.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.KindInvite, notification.Kind)
	assert.Equal(t, "You have been invited to join acme", notification.Message)

	invited, err := companyRepo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.True(t, invited.IsInvited(invitee.ID))
	assert.False(t, invited.IsMember(invitee.ID))

	// 2. Принятие: участник, invited_users пуст, приглашение стерто, админ уведомлен
	require.NoError(t, inviteService.AcceptInvite(ctx, invitee.ID, company.ID))

	accepted, err := companyRepo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.True(t, accepted.IsMember(invitee.ID))
	assert.False(t, accepted.IsInvited(invitee.ID))

	inviteeNotifications, err := notificationRepo.ListByUser(ctx, invitee.ID)
	require.NoError(t, err)
	assert.Empty(t, inviteeNotifications, "приглашение должно быть стерто")

	adminNotifications, err := notificationRepo.ListByUser(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, adminNotifications, 1)
	assert.Equal(t, "User: alice approved offer to join", adminNotifications[0].Message)

	// 3. Повторное принятие идемпотентно
	require.NoError(t, inviteService.AcceptInvite(ctx, invitee.ID, company.ID))

	again, err := companyRepo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, again.Users, 1)
}

func TestAcceptInviteClearsAllPendingInvites(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	companyRepo := postgres.NewCompanyRepository(db)
	userRepo := postgres.NewUserRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	inviteService := service.NewInviteService(companyRepo, userRepo, notificationRepo)

	adminOne := createUser(t, ctx, db, "admin1@example.com", "admin1")
	adminTwo := createUser(t, ctx, db, "admin2@example.com", "admin2")
	invitee := createUser(t, ctx, db, "alice@example.com", "alice")

	first := &domain.Company{Name: "acme", AdminID: adminOne.ID}
	require.NoError(t, companyRepo.Create(ctx, first))
	second := &domain.Company{Name: "globex", AdminID: adminTwo.ID}
	require.NoError(t, companyRepo.Create(ctx, second))

	_, err := inviteService.Invite(ctx, first.ID, invitee.ID, "")
	require.NoError(t, err)
	_, err = inviteService.Invite(ctx, second.ID, invitee.ID, "")
	require.NoError(t, err)

	// Принятие одного приглашения стирает оба, участие только в принятой компании
	require.NoError(t, inviteService.AcceptInvite(ctx, invitee.ID, first.ID))

	inviteeNotifications, err := notificationRepo.ListByUser(ctx, invitee.ID)
	require.NoError(t, err)
	assert.Empty(t, inviteeNotifications)

	firstCompany, err := companyRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, firstCompany.IsMember(invitee.ID))

	secondCompany, err := companyRepo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, secondCompany.IsMember(invitee.ID))
	// запись в invited_users второй компании остается до явного отказа
	assert.True(t, secondCompany.IsInvited(invitee.ID))
}

func TestDeclineInvite(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	companyRepo := postgres.NewCompanyRepository(db)
	userRepo := postgres.NewUserRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	inviteService := service.NewInviteService(companyRepo, userRepo, notificationRepo)

	admin := createUser(t, ctx, db, "admin@example.com", "admin")
	invitee := createUser(t, ctx, db, "bob@example.com", "bob")

	company := &domain.Company{Name: "acme", AdminID: admin.ID}
	require.NoError(t, companyRepo.Create(ctx, company))

	_, err := inviteService.Invite(ctx, company.ID, invitee.ID, "")
	require.NoError(t, err)

	require.NoError(t, inviteService.DeclineInvite(ctx, invitee.ID, company.ID))

	declined, err := companyRepo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.False(t, declined.IsInvited(invitee.ID))
	assert.False(t, declined.IsMember(invitee.ID))

	adminNotifications, err := notificationRepo.ListByUser(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, adminNotifications, 1)
	assert.Equal(t, "User: bob declined offer to join", adminNotifications[0].Message)

	// Отказ без приглашения тоже успешен
	require.NoError(t, inviteService.DeclineInvite(ctx, invitee.ID, company.ID))
}
