package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type companyRepository struct {
	executor DBExecutor
}

func NewCompanyRepository(db *sql.DB) *companyRepository {
	return &companyRepository{executor: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (name, plan, admin_id, payment_due_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		company.Name,
		company.Plan,
		company.AdminID,
		company.PaymentDueDate,
		time.Now(),
	).Scan(&company.ID, &company.CreatedAt)
}

const companyColumns = `id, name, plan, admin_id, payment_due_date, created_at`

func (r *companyRepository) scanCompany(ctx context.Context, row *sql.Row) (*domain.Company, error) {
	company := &domain.Company{}
	var paymentDueDate sql.NullTime
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Plan,
		&company.AdminID,
		&paymentDueDate,
		&company.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("company")
		}
		return nil, err
	}
	if paymentDueDate.Valid {
		company.PaymentDueDate = &paymentDueDate.Time
	}

	if err := r.loadMembers(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (r *companyRepository) loadMembers(ctx context.Context, company *domain.Company) error {
	var err error
	company.Users, err = r.members(ctx, `
		SELECT u.id, u.username, u.email
		FROM company_users cu
		JOIN users u ON u.id = cu.user_id
		WHERE cu.company_id = $1
		ORDER BY u.username
	`, company.ID)
	if err != nil {
		return err
	}

	company.InvitedUsers, err = r.members(ctx, `
		SELECT u.id, u.username, u.email
		FROM company_invited_users ciu
		JOIN users u ON u.id = ciu.user_id
		WHERE ciu.company_id = $1
		ORDER BY u.username
	`, company.ID)
	return err
}

func (r *companyRepository) members(ctx context.Context, query string, companyID int64) ([]domain.Member, error) {
	rows, err := r.executor.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.UserID, &m.Username, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanCompany(ctx, r.executor.QueryRowContext(ctx, query, id))
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1`
	return r.scanCompany(ctx, r.executor.QueryRowContext(ctx, query, name))
}

func (r *companyRepository) GetByAdminID(ctx context.Context, adminID int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE admin_id = $1`
	return r.scanCompany(ctx, r.executor.QueryRowContext(ctx, query, adminID))
}

func (r *companyRepository) GetByMemberID(ctx context.Context, userID int64) (*domain.Company, error) {
	query := `
		SELECT c.id, c.name, c.plan, c.admin_id, c.payment_due_date, c.created_at
		FROM companies c
		JOIN company_users cu ON cu.company_id = c.id
		WHERE cu.user_id = $1
	`
	return r.scanCompany(ctx, r.executor.QueryRowContext(ctx, query, userID))
}

func (r *companyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY id`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		company := &domain.Company{}
		var paymentDueDate sql.NullTime
		err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Plan,
			&company.AdminID,
			&paymentDueDate,
			&company.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if paymentDueDate.Valid {
			company.PaymentDueDate = &paymentDueDate.Time
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, company := range companies {
		if err := r.loadMembers(ctx, company); err != nil {
			return nil, err
		}
	}

	return companies, nil
}

func (r *companyRepository) UpdateName(ctx context.Context, id int64, name string) error {
	result, err := r.executor.ExecContext(ctx, `UPDATE companies SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("company")
	}

	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("company")
	}

	return nil
}

func (r *companyRepository) AddMember(ctx context.Context, companyID, userID int64) error {
	query := `
		INSERT INTO company_users (company_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.executor.ExecContext(ctx, query, companyID, userID)
	return err
}

func (r *companyRepository) RemoveMember(ctx context.Context, companyID, userID int64) error {
	query := `DELETE FROM company_users WHERE company_id = $1 AND user_id = $2`
	_, err := r.executor.ExecContext(ctx, query, companyID, userID)
	return err
}

func (r *companyRepository) CountMembers(ctx context.Context, companyID int64) (int, error) {
	var count int
	err := r.executor.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM company_users WHERE company_id = $1`,
		companyID,
	).Scan(&count)
	return count, err
}

func (r *companyRepository) AddInvitedUser(ctx context.Context, companyID, userID int64) error {
	query := `
		INSERT INTO company_invited_users (company_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.executor.ExecContext(ctx, query, companyID, userID)
	return err
}

func (r *companyRepository) RemoveInvitedUser(ctx context.Context, companyID, userID int64) error {
	query := `DELETE FROM company_invited_users WHERE company_id = $1 AND user_id = $2`
	_, err := r.executor.ExecContext(ctx, query, companyID, userID)
	return err
}
