package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/crm-records/internal/entity"
)

type OpportunityRepository struct {
	DB *sql.DB
}

func NewOpportunityRepository(db *sql.DB) *OpportunityRepository {
	return &OpportunityRepository{DB: db}
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id string) (*entity.Opportunity, error) {
	query := `
		SELECT id, name, COALESCE(account_id::text, ''), stage_name, close_date, amount, created_at, updated_at
		FROM opportunities WHERE id = $1
	`

	var opp entity.Opportunity
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&opp.ID,
		&opp.Name,
		&opp.AccountID,
		&opp.StageName,
		&opp.CloseDate,
		&opp.Amount,
		&opp.CreatedAt,
		&opp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &opp, nil
}

func (r *OpportunityRepository) Update(ctx context.Context, opp *entity.Opportunity) error {
	query := `
		UPDATE opportunities
		SET name = $2, account_id = $3, stage_name = $4, close_date = $5, amount = $6, updated_at = $7
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		opp.ID,
		opp.Name,
		nullString(opp.AccountID),
		opp.StageName,
		opp.CloseDate,
		opp.Amount,
		opp.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return requireRows(res)
}

func (r *OpportunityRepository) UpsertBatch(ctx context.Context, opps []*entity.Opportunity) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO opportunities (id, name, account_id, stage_name, close_date, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			account_id = EXCLUDED.account_id,
			stage_name = EXCLUDED.stage_name,
			close_date = EXCLUDED.close_date,
			amount = EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at
	`

	for _, opp := range opps {
		_, err := tx.ExecContext(ctx, query,
			opp.ID,
			opp.Name,
			nullString(opp.AccountID),
			opp.StageName,
			opp.CloseDate,
			opp.Amount,
			opp.CreatedAt,
			opp.UpdatedAt,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
