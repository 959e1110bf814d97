package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/crm-records/internal/entity"
)

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountColumns = `id, name, industry, billing_city, number_of_employees, description, created_at, updated_at`

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return account, err
}

func (r *AccountRepository) FindByName(ctx context.Context, name string) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE name = $1 ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*entity.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *AccountRepository) Insert(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, name, industry, billing_city, number_of_employees, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Industry,
		account.BillingCity,
		account.NumberOfEmployees,
		account.Description,
		account.CreatedAt,
		account.UpdatedAt,
	)
	return err
}

func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, industry = $3, billing_city = $4, number_of_employees = $5, description = $6, updated_at = $7
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Industry,
		account.BillingCity,
		account.NumberOfEmployees,
		account.Description,
		account.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return requireRows(res)
}

func (r *AccountRepository) UpsertBatch(ctx context.Context, accounts []*entity.Account) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO accounts (id, name, industry, billing_city, number_of_employees, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			industry = EXCLUDED.industry,
			billing_city = EXCLUDED.billing_city,
			number_of_employees = EXCLUDED.number_of_employees,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
	`

	for _, account := range accounts {
		_, err := tx.ExecContext(ctx, query,
			account.ID,
			account.Name,
			account.Industry,
			account.BillingCity,
			account.NumberOfEmployees,
			account.Description,
			account.CreatedAt,
			account.UpdatedAt,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*entity.Account, error) {
	var account entity.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Industry,
		&account.BillingCity,
		&account.NumberOfEmployees,
		&account.Description,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// requireRows maps "zero rows touched" to entity.ErrNotFound so update-by-id
// paths surface missing records the same way lookups do.
func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
