package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/xavierca1/crm-records/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) FindByLastNames(ctx context.Context, lastNames []string) ([]*entity.Lead, error) {
	query := `
		SELECT id, last_name, company, created_at, updated_at
		FROM leads WHERE last_name = ANY($1) ORDER BY created_at, id
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(lastNames))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var lead entity.Lead
		err := rows.Scan(&lead.ID, &lead.LastName, &lead.Company, &lead.CreatedAt, &lead.UpdatedAt)
		if err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) InsertBatch(ctx context.Context, leads []*entity.Lead) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leads (id, last_name, company, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, lead := range leads {
		_, err := tx.ExecContext(ctx, query,
			lead.ID,
			lead.LastName,
			lead.Company,
			lead.CreatedAt,
			lead.UpdatedAt,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *LeadRepository) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return entity.ErrNotFound
	}
	return nil
}
