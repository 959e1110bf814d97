package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/crm-records/internal/entity"
)

type AccountUseCase struct {
	Repo   AccountRepositoryInterface
	Events RecordEventPublisherInterface
}

func NewAccountUseCase(repo AccountRepositoryInterface, events RecordEventPublisherInterface) *AccountUseCase {
	return &AccountUseCase{
		Repo:   repo,
		Events: events,
	}
}

// InsertNewAccount creates one account with fixed demo field values and
// returns its identifier.
func (uc *AccountUseCase) InsertNewAccount(ctx context.Context) (string, error) {
	account, err := entity.NewAccount("Test Account", "Technology")
	if err != nil {
		return "", err
	}

	account.BillingCity = "Chattanooga"
	account.NumberOfEmployees = 10
	account.Description = "Demo account"

	if err := uc.Repo.Insert(ctx, account); err != nil {
		return "", err
	}

	publishRecordEvent(ctx, uc.Events, "Account", OpInsert, account.ID)
	return account.ID, nil
}

func (uc *AccountUseCase) CreateAccount(ctx context.Context, name, industry string) (*entity.Account, error) {
	account, err := entity.NewAccount(name, industry)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Insert(ctx, account); err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, uc.Events, "Account", OpInsert, account.ID)
	return account, nil
}

// UpdateAccountFields fetches the account by identifier, mutates name and
// industry and persists. A missing row surfaces as entity.ErrNotFound.
func (uc *AccountUseCase) UpdateAccountFields(ctx context.Context, id, newName, newIndustry string) error {
	account, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	account.Name = newName
	account.Industry = newIndustry
	account.UpdatedAt = time.Now()

	if err := account.Validate(); err != nil {
		return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Update(ctx, account); err != nil {
		return err
	}

	publishRecordEvent(ctx, uc.Events, "Account", OpUpdate, account.ID)
	return nil
}

// UpsertAccount resolves an account by exact name. When at least one match
// exists the first one gets Description "Updated Account" and is returned;
// otherwise a new account is created with Description "New Account".
func (uc *AccountUseCase) UpsertAccount(ctx context.Context, name string) (*entity.Account, error) {
	matches, err := uc.Repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(matches) > 0 {
		account := matches[0]
		account.Description = "Updated Account"
		account.UpdatedAt = time.Now()

		if err := uc.Repo.Update(ctx, account); err != nil {
			return nil, err
		}

		publishRecordEvent(ctx, uc.Events, "Account", OpUpdate, account.ID)
		return account, nil
	}

	account, err := entity.NewAccount(name, "")
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	account.Description = "New Account"

	if err := uc.Repo.Insert(ctx, account); err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, uc.Events, "Account", OpInsert, account.ID)
	return account, nil
}
