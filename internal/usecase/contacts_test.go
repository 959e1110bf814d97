package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/crm-records/internal/entity"
	"github.com/xavierca1/crm-records/internal/infra/memory"
)

func newMemoryContactUseCase() (*ContactUseCase, *memory.Store) {
	store := memory.NewStore()
	accountUC := NewAccountUseCase(store.Accounts(), nil)
	return NewContactUseCase(store.Contacts(), accountUC, nil), store
}

func TestInsertNewContact(t *testing.T) {
	uc, store := newMemoryContactUseCase()
	ctx := context.Background()

	accountID, err := uc.Accounts.InsertNewAccount(ctx)
	assert.NoError(t, err)

	id, err := uc.InsertNewContact(ctx, accountID)
	assert.NoError(t, err)

	contact, err := store.Contacts().FindByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, accountID, contact.AccountID)
}

func TestInsertNewContactUnknownAccount(t *testing.T) {
	uc, _ := newMemoryContactUseCase()

	_, err := uc.InsertNewContact(context.Background(), "does-not-exist")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateContactLastName(t *testing.T) {
	uc, store := newMemoryContactUseCase()
	ctx := context.Background()

	accountID, err := uc.Accounts.InsertNewAccount(ctx)
	assert.NoError(t, err)

	id, err := uc.InsertNewContact(ctx, accountID)
	assert.NoError(t, err)

	err = uc.UpdateContactLastName(ctx, id, "Nagappan")
	assert.NoError(t, err)

	contact, err := store.Contacts().FindByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Nagappan", contact.LastName)
}

func TestUpdateContactLastNameMissingRecord(t *testing.T) {
	uc, _ := newMemoryContactUseCase()

	err := uc.UpdateContactLastName(context.Background(), "missing", "Doe")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpsertAccountsWithContacts(t *testing.T) {
	uc, store := newMemoryContactUseCase()
	ctx := context.Background()

	contacts := []*entity.Contact{
		{FirstName: "Jane", LastName: "Doe"},
		{FirstName: "Ram", LastName: "Kumar"},
	}

	err := uc.UpsertAccountsWithContacts(ctx, contacts)
	assert.NoError(t, err)

	for _, contact := range contacts {
		assert.NotEmpty(t, contact.ID)
		assert.NotEmpty(t, contact.AccountID)

		// The linked account is named after the contact's last name.
		account, err := store.Accounts().FindByID(ctx, contact.AccountID)
		assert.NoError(t, err)
		assert.Equal(t, contact.LastName, account.Name)
		assert.Equal(t, "New Account", account.Description)

		persisted, err := store.Contacts().FindByID(ctx, contact.ID)
		assert.NoError(t, err)
		assert.Equal(t, contact.AccountID, persisted.AccountID)
	}
}

func TestUpsertAccountsWithContactsReusesAccount(t *testing.T) {
	uc, store := newMemoryContactUseCase()
	ctx := context.Background()

	first := []*entity.Contact{{LastName: "Doe"}}
	assert.NoError(t, uc.UpsertAccountsWithContacts(ctx, first))

	second := []*entity.Contact{{LastName: "Doe"}}
	assert.NoError(t, uc.UpsertAccountsWithContacts(ctx, second))

	assert.Equal(t, first[0].AccountID, second[0].AccountID)

	account, err := store.Accounts().FindByID(ctx, first[0].AccountID)
	assert.NoError(t, err)
	assert.Equal(t, "Updated Account", account.Description)
}

func TestUpsertAccountsWithContactsValidatesLastName(t *testing.T) {
	uc, _ := newMemoryContactUseCase()

	err := uc.UpsertAccountsWithContacts(context.Background(), []*entity.Contact{{FirstName: "NoLastName"}})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}
