package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/xavierca1/crm-records/internal/entity"
)

type CaseRepository struct {
	DB *sql.DB
}

func NewCaseRepository(db *sql.DB) *CaseRepository {
	return &CaseRepository{DB: db}
}

func (r *CaseRepository) InsertBatch(ctx context.Context, cases []*entity.Case) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cases (id, account_id, status, origin, subject, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, kase := range cases {
		_, err := tx.ExecContext(ctx, query,
			kase.ID,
			kase.AccountID,
			kase.Status,
			kase.Origin,
			kase.Subject,
			kase.Description,
			kase.CreatedAt,
			kase.UpdatedAt,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *CaseRepository) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM cases WHERE id = ANY($1)`, pq.Array(ids))
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
