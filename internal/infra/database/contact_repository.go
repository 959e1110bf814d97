package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/crm-records/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	query := `
		SELECT id, first_name, last_name, email, COALESCE(account_id::text, ''), created_at, updated_at
		FROM contacts WHERE id = $1
	`

	var contact entity.Contact
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.AccountID,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &contact, nil
}

func (r *ContactRepository) Insert(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, first_name, last_name, email, account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		contact.ID,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		nullString(contact.AccountID),
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	return err
}

func (r *ContactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET first_name = $2, last_name = $3, email = $4, account_id = $5, updated_at = $6
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		contact.ID,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		nullString(contact.AccountID),
		contact.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return requireRows(res)
}

func (r *ContactRepository) UpsertBatch(ctx context.Context, contacts []*entity.Contact) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO contacts (id, first_name, last_name, email, account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			account_id = EXCLUDED.account_id,
			updated_at = EXCLUDED.updated_at
	`

	for _, contact := range contacts {
		_, err := tx.ExecContext(ctx, query,
			contact.ID,
			contact.FirstName,
			contact.LastName,
			contact.Email,
			nullString(contact.AccountID),
			contact.CreatedAt,
			contact.UpdatedAt,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
