package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/crm-records/internal/entity"
	"github.com/xavierca1/crm-records/internal/infra/memory"
)

func TestCreateAndDeleteCases(t *testing.T) {
	account, err := entity.NewAccount("Acme", "Manufacturing")
	assert.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	accountRepo.On("FindByID", mock.Anything, account.ID).Return(account, nil)

	repo := new(MockCaseRepository)

	var inserted []*entity.Case
	repo.On("InsertBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).([]*entity.Case)
		}).
		Return(nil)

	var deleted []string
	repo.On("DeleteBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			deleted = args.Get(1).([]string)
		}).
		Return(nil)

	uc := NewCaseUseCase(repo, accountRepo, nil)
	err = uc.CreateAndDeleteCases(context.Background(), account.ID, 3)

	assert.NoError(t, err)
	assert.Len(t, inserted, 3)
	assert.Len(t, deleted, 3)
	for i, kase := range inserted {
		assert.Equal(t, account.ID, kase.AccountID)
		assert.Equal(t, "New", kase.Status)
		assert.Equal(t, kase.ID, deleted[i])
	}
}

// A zero count must not touch the store at all.
func TestCreateAndDeleteCasesZeroCount(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	repo := new(MockCaseRepository)

	uc := NewCaseUseCase(repo, accountRepo, nil)
	err := uc.CreateAndDeleteCases(context.Background(), "acc-1", 0)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteBatch", mock.Anything, mock.Anything)
	accountRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreateAndDeleteCasesNegativeCount(t *testing.T) {
	repo := new(MockCaseRepository)

	uc := NewCaseUseCase(repo, new(MockAccountRepository), nil)
	err := uc.CreateAndDeleteCases(context.Background(), "acc-1", -4)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestCreateAndDeleteCasesUnknownAccount(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	accountRepo.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	repo := new(MockCaseRepository)

	uc := NewCaseUseCase(repo, accountRepo, nil)
	err := uc.CreateAndDeleteCases(context.Background(), "missing", 2)

	assert.ErrorIs(t, err, entity.ErrNotFound)
	repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestCreateAndDeleteCasesAgainstStore(t *testing.T) {
	store := memory.NewStore()
	accountUC := NewAccountUseCase(store.Accounts(), nil)
	ctx := context.Background()

	accountID, err := accountUC.InsertNewAccount(ctx)
	assert.NoError(t, err)

	uc := NewCaseUseCase(store.Cases(), store.Accounts(), nil)
	err = uc.CreateAndDeleteCases(ctx, accountID, 3)

	assert.NoError(t, err)
	assert.Equal(t, 0, store.Cases().Count())
}
