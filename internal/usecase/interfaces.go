package usecase

import (
	"context"

	"github.com/xavierca1/crm-records/internal/entity"
)

// Repository interfaces are thin projections of the platform primitives:
// find-by-filter, insert, update, upsert-batch, delete-batch. Implemented by
// infra/database (Postgres) and infra/memory (in-memory store).

type AccountRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	FindByName(ctx context.Context, name string) ([]*entity.Account, error)
	Insert(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	UpsertBatch(ctx context.Context, accounts []*entity.Account) error
}

type ContactRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	Insert(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, contact *entity.Contact) error
	UpsertBatch(ctx context.Context, contacts []*entity.Contact) error
}

type OpportunityRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Opportunity, error)
	Update(ctx context.Context, opp *entity.Opportunity) error
	UpsertBatch(ctx context.Context, opps []*entity.Opportunity) error
}

type LeadRepositoryInterface interface {
	FindByLastNames(ctx context.Context, lastNames []string) ([]*entity.Lead, error)
	InsertBatch(ctx context.Context, leads []*entity.Lead) error
	DeleteBatch(ctx context.Context, ids []string) error
}

type CaseRepositoryInterface interface {
	InsertBatch(ctx context.Context, cases []*entity.Case) error
	DeleteBatch(ctx context.Context, ids []string) error
}

type RecordEventPublisherInterface interface {
	PublishRecordEvent(ctx context.Context, event RecordEvent) error
}
