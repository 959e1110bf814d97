package usecase

import (
	"context"

	"github.com/xavierca1/crm-records/internal/entity"
)

type CaseUseCase struct {
	Repo        CaseRepositoryInterface
	AccountRepo AccountRepositoryInterface
	Events      RecordEventPublisherInterface
}

func NewCaseUseCase(repo CaseRepositoryInterface, accountRepo AccountRepositoryInterface, events RecordEventPublisherInterface) *CaseUseCase {
	return &CaseUseCase{
		Repo:        repo,
		AccountRepo: accountRepo,
		Events:      events,
	}
}

// CreateAndDeleteCases creates numOfCases cases linked to the given account,
// inserts the batch and deletes it again. A non-positive count is a no-op and
// touches the store not at all.
func (uc *CaseUseCase) CreateAndDeleteCases(ctx context.Context, accountID string, numOfCases int) error {
	if numOfCases <= 0 {
		return nil
	}

	if _, err := uc.AccountRepo.FindByID(ctx, accountID); err != nil {
		return err
	}

	cases := make([]*entity.Case, 0, numOfCases)
	for i := 0; i < numOfCases; i++ {
		kase, err := entity.NewCase(accountID, "New", "Phone", "Demo case", "Created by the record operations demo")
		if err != nil {
			return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
		}
		cases = append(cases, kase)
	}

	if err := uc.Repo.InsertBatch(ctx, cases); err != nil {
		return err
	}

	ids := make([]string, 0, len(cases))
	for _, kase := range cases {
		ids = append(ids, kase.ID)
	}
	publishRecordEvent(ctx, uc.Events, "Case", OpInsert, ids...)

	if err := uc.Repo.DeleteBatch(ctx, ids); err != nil {
		return err
	}

	publishRecordEvent(ctx, uc.Events, "Case", OpDelete, ids...)
	return nil
}
