package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/crm-records/internal/entity"
)

type ContactUseCase struct {
	Repo     ContactRepositoryInterface
	Accounts *AccountUseCase
	Events   RecordEventPublisherInterface
}

func NewContactUseCase(repo ContactRepositoryInterface, accounts *AccountUseCase, events RecordEventPublisherInterface) *ContactUseCase {
	return &ContactUseCase{
		Repo:     repo,
		Accounts: accounts,
		Events:   events,
	}
}

// InsertNewContact creates one demo contact linked to the given account and
// returns its identifier. The referenced account must exist.
func (uc *ContactUseCase) InsertNewContact(ctx context.Context, accountID string) (string, error) {
	if _, err := uc.Accounts.Repo.FindByID(ctx, accountID); err != nil {
		return "", err
	}

	contact, err := entity.NewContact("Test", "Contact", "test.contact@example.com", accountID)
	if err != nil {
		return "", err
	}

	if err := uc.Repo.Insert(ctx, contact); err != nil {
		return "", err
	}

	publishRecordEvent(ctx, uc.Events, "Contact", OpInsert, contact.ID)
	return contact.ID, nil
}

func (uc *ContactUseCase) UpdateContactLastName(ctx context.Context, id, newLastName string) error {
	contact, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	contact.LastName = newLastName
	contact.UpdatedAt = time.Now()

	if err := contact.Validate(); err != nil {
		return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Update(ctx, contact); err != nil {
		return err
	}

	publishRecordEvent(ctx, uc.Events, "Contact", OpUpdate, contact.ID)
	return nil
}

// UpsertAccountsWithContacts resolves (or creates) one account per contact,
// named after the contact's last name, links the contact to it and upserts
// the whole batch in one call.
func (uc *ContactUseCase) UpsertAccountsWithContacts(ctx context.Context, contacts []*entity.Contact) error {
	if errs := ValidateContactBatch(contacts); len(errs) > 0 {
		return &DomainError{Code: "VALIDATION_ERROR", Message: joinValidationErrors(errs)}
	}

	now := time.Now()
	for _, contact := range contacts {
		account, err := uc.Accounts.UpsertAccount(ctx, contact.LastName)
		if err != nil {
			return err
		}
		contact.AccountID = account.ID

		if contact.ID == "" {
			contact.ID = uuid.New().String()
			contact.CreatedAt = now
		}
		contact.UpdatedAt = now
	}

	if len(contacts) == 0 {
		return nil
	}

	if err := uc.Repo.UpsertBatch(ctx, contacts); err != nil {
		return err
	}

	publishRecordEvent(ctx, uc.Events, "Contact", OpUpsert, contactIDs(contacts)...)
	return nil
}

func contactIDs(contacts []*entity.Contact) []string {
	ids := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		ids = append(ids, contact.ID)
	}
	return ids
}
