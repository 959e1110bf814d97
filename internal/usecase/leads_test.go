package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/crm-records/internal/entity"
	"github.com/xavierca1/crm-records/internal/infra/memory"
)

func TestInsertAndDeleteLeads(t *testing.T) {
	repo := new(MockLeadRepository)

	var inserted []*entity.Lead
	repo.On("InsertBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).([]*entity.Lead)
		}).
		Return(nil)

	var deleted []string
	repo.On("DeleteBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			deleted = args.Get(1).([]string)
		}).
		Return(nil)

	uc := NewLeadUseCase(repo, nil)
	err := uc.InsertAndDeleteLeads(context.Background(), []string{"Garcia", "Okafor"})

	assert.NoError(t, err)
	assert.Len(t, inserted, 2)
	for _, lead := range inserted {
		assert.Equal(t, "Test Lead", lead.Company)
	}

	// The deleted batch is exactly the inserted one.
	assert.Len(t, deleted, 2)
	for i, lead := range inserted {
		assert.Equal(t, lead.ID, deleted[i])
	}
}

func TestInsertAndDeleteLeadsEmptyInput(t *testing.T) {
	repo := new(MockLeadRepository)

	uc := NewLeadUseCase(repo, nil)
	err := uc.InsertAndDeleteLeads(context.Background(), nil)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteBatch", mock.Anything, mock.Anything)
}

func TestFindLeadsByLastNames(t *testing.T) {
	store := memory.NewStore()
	uc := NewLeadUseCase(store.Leads(), nil)
	ctx := context.Background()

	garcia, err := entity.NewLead("Garcia", "Test Lead")
	assert.NoError(t, err)
	okafor, err := entity.NewLead("Okafor", "Test Lead")
	assert.NoError(t, err)
	assert.NoError(t, store.Leads().InsertBatch(ctx, []*entity.Lead{garcia, okafor}))

	found, err := uc.FindLeadsByLastNames(ctx, []string{"Garcia"})
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, garcia.ID, found[0].ID)
}

func TestFindLeadsByLastNamesEmptyInput(t *testing.T) {
	repo := new(MockLeadRepository)

	uc := NewLeadUseCase(repo, nil)
	found, err := uc.FindLeadsByLastNames(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, found)
	repo.AssertNotCalled(t, "FindByLastNames", mock.Anything, mock.Anything)
}

func TestInsertAndDeleteLeadsLeavesNothingBehind(t *testing.T) {
	store := memory.NewStore()
	uc := NewLeadUseCase(store.Leads(), nil)
	ctx := context.Background()

	names := []string{"Garcia", "Okafor"}
	err := uc.InsertAndDeleteLeads(ctx, names)
	assert.NoError(t, err)

	remaining, err := store.Leads().FindByLastNames(ctx, names)
	assert.NoError(t, err)
	assert.Empty(t, remaining)
}
