package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type personalRepository struct {
	executor DBExecutor
}

func NewPersonalAccountRepository(db *sql.DB) *personalRepository {
	return &personalRepository{executor: db}
}

func (r *personalRepository) Create(ctx context.Context, account *domain.PersonalAccount) error {
	query := `
		INSERT INTO personal_accounts (name, admin_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		account.Name,
		account.AdminID,
		time.Now(),
	).Scan(&account.ID, &account.CreatedAt)
}

func scanPersonal(row *sql.Row) (*domain.PersonalAccount, error) {
	account := &domain.PersonalAccount{}
	err := row.Scan(&account.ID, &account.Name, &account.AdminID, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("personal account")
		}
		return nil, err
	}
	return account, nil
}

func (r *personalRepository) GetByID(ctx context.Context, id int64) (*domain.PersonalAccount, error) {
	query := `SELECT id, name, admin_id, created_at FROM personal_accounts WHERE id = $1`
	return scanPersonal(r.executor.QueryRowContext(ctx, query, id))
}

func (r *personalRepository) GetByName(ctx context.Context, name string) (*domain.PersonalAccount, error) {
	query := `SELECT id, name, admin_id, created_at FROM personal_accounts WHERE name = $1`
	return scanPersonal(r.executor.QueryRowContext(ctx, query, name))
}

func (r *personalRepository) GetByAdminID(ctx context.Context, adminID int64) (*domain.PersonalAccount, error) {
	query := `SELECT id, name, admin_id, created_at FROM personal_accounts WHERE admin_id = $1`
	return scanPersonal(r.executor.QueryRowContext(ctx, query, adminID))
}

func (r *personalRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM personal_accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("personal account")
	}

	return nil
}
