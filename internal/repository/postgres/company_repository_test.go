package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/taskhub/internal/domain"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// setupCompanyRepo создает мок БД и репозиторий для Company
func setupCompanyRepo(t *testing.T) (*companyRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewCompanyRepository(db), mock
}

func TestCompanyRepository_GetByID(t *testing.T) {
	t.Run("успешное получение компании с участниками", func(t *testing.T) {
		repo, mock := setupCompanyRepo(t)
		now := time.Now()

		companyRows := sqlmock.NewRows([]string{"id", "name", "plan", "admin_id", "payment_due_date", "created_at"}).
			AddRow(1, "acme", false, 10, nil, now)
		mock.ExpectQuery("SELECT (.+) FROM companies WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(companyRows)

		memberRows := sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(20, "alice", "alice@example.com")
		mock.ExpectQuery("SELECT (.+) FROM company_users").
			WithArgs(int64(1)).
			WillReturnRows(memberRows)

		invitedRows := sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(21, "bob", "bob@example.com")
		mock.ExpectQuery("SELECT (.+) FROM company_invited_users").
			WithArgs(int64(1)).
			WillReturnRows(invitedRows)

		company, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "acme", company.Name)
		assert.Nil(t, company.PaymentDueDate)
		require.Len(t, company.Users, 1)
		assert.Equal(t, "alice", company.Users[0].Username)
		require.Len(t, company.InvitedUsers, 1)
		assert.Equal(t, "bob", company.InvitedUsers[0].Username)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: компания не найдена", func(t *testing.T) {
		repo, mock := setupCompanyRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM companies WHERE id").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		company, err := repo.GetByID(context.Background(), 99)

		require.Error(t, err)
		assert.Nil(t, company)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompanyRepository_AddMember(t *testing.T) {
	t.Run("успешное добавление участника", func(t *testing.T) {
		repo, mock := setupCompanyRepo(t)

		mock.ExpectExec("INSERT INTO company_users").
			WithArgs(int64(1), int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddMember(context.Background(), 1, 20)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("повторное добавление проходит без ошибки", func(t *testing.T) {
		// ON CONFLICT DO NOTHING: вставка не затрагивает строк
		repo, mock := setupCompanyRepo(t)

		mock.ExpectExec("INSERT INTO company_users").
			WithArgs(int64(1), int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AddMember(context.Background(), 1, 20)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompanyRepository_RemoveMember(t *testing.T) {
	t.Run("успешное удаление участника", func(t *testing.T) {
		repo, mock := setupCompanyRepo(t)

		mock.ExpectExec("DELETE FROM company_users").
			WithArgs(int64(1), int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RemoveMember(context.Background(), 1, 20)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompanyRepository_CountMembers(t *testing.T) {
	t.Run("подсчет участников", func(t *testing.T) {
		repo, mock := setupCompanyRepo(t)

		mock.ExpectQuery("SELECT COUNT").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(50))

		count, err := repo.CountMembers(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 50, count)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
