// Package memory holds a mutex-guarded in-memory implementation of every
// repository interface. It backs tests and STORAGE=memory local runs with
// the same semantics the Postgres repositories have: not-found maps to
// entity.ErrNotFound, upserts replace by identifier, batch deletes require
// every identifier to exist.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/xavierca1/crm-records/internal/entity"
)

type Store struct {
	mu            sync.RWMutex
	accounts      map[string]entity.Account
	contacts      map[string]entity.Contact
	opportunities map[string]entity.Opportunity
	leads         map[string]entity.Lead
	cases         map[string]entity.Case
}

func NewStore() *Store {
	return &Store{
		accounts:      make(map[string]entity.Account),
		contacts:      make(map[string]entity.Contact),
		opportunities: make(map[string]entity.Opportunity),
		leads:         make(map[string]entity.Lead),
		cases:         make(map[string]entity.Case),
	}
}

// Per-entity views. Each satisfies the matching repository interface in
// internal/usecase.

func (s *Store) Accounts() *AccountStore          { return &AccountStore{store: s} }
func (s *Store) Contacts() *ContactStore          { return &ContactStore{store: s} }
func (s *Store) Opportunities() *OpportunityStore { return &OpportunityStore{store: s} }
func (s *Store) Leads() *LeadStore                { return &LeadStore{store: s} }
func (s *Store) Cases() *CaseStore                { return &CaseStore{store: s} }

type AccountStore struct {
	store *Store
}

func (r *AccountStore) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &account, nil
}

func (r *AccountStore) FindByName(ctx context.Context, name string) ([]*entity.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matches []*entity.Account
	for _, account := range r.store.accounts {
		if account.Name == name {
			copied := account
			matches = append(matches, &copied)
		}
	}

	// Stable order so "first match" means the oldest record, as the SQL
	// repositories return it.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	return matches, nil
}

func (r *AccountStore) Insert(ctx context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.accounts[account.ID]; exists {
		return errors.New("duplicate account id")
	}
	r.store.accounts[account.ID] = *account
	return nil
}

func (r *AccountStore) Update(ctx context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.accounts[account.ID]; !exists {
		return entity.ErrNotFound
	}
	r.store.accounts[account.ID] = *account
	return nil
}

func (r *AccountStore) UpsertBatch(ctx context.Context, accounts []*entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, account := range accounts {
		r.store.accounts[account.ID] = *account
	}
	return nil
}

type ContactStore struct {
	store *Store
}

func (r *ContactStore) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	contact, ok := r.store.contacts[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &contact, nil
}

func (r *ContactStore) Insert(ctx context.Context, contact *entity.Contact) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.contacts[contact.ID]; exists {
		return errors.New("duplicate contact id")
	}
	r.store.contacts[contact.ID] = *contact
	return nil
}

func (r *ContactStore) Update(ctx context.Context, contact *entity.Contact) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.contacts[contact.ID]; !exists {
		return entity.ErrNotFound
	}
	r.store.contacts[contact.ID] = *contact
	return nil
}

func (r *ContactStore) UpsertBatch(ctx context.Context, contacts []*entity.Contact) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, contact := range contacts {
		r.store.contacts[contact.ID] = *contact
	}
	return nil
}

type OpportunityStore struct {
	store *Store
}

func (r *OpportunityStore) FindByID(ctx context.Context, id string) (*entity.Opportunity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	opp, ok := r.store.opportunities[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &opp, nil
}

func (r *OpportunityStore) Update(ctx context.Context, opp *entity.Opportunity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.opportunities[opp.ID]; !exists {
		return entity.ErrNotFound
	}
	r.store.opportunities[opp.ID] = *opp
	return nil
}

func (r *OpportunityStore) UpsertBatch(ctx context.Context, opps []*entity.Opportunity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, opp := range opps {
		r.store.opportunities[opp.ID] = *opp
	}
	return nil
}

type LeadStore struct {
	store *Store
}

func (r *LeadStore) FindByLastNames(ctx context.Context, lastNames []string) ([]*entity.Lead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]bool, len(lastNames))
	for _, lastName := range lastNames {
		wanted[lastName] = true
	}

	var matches []*entity.Lead
	for _, lead := range r.store.leads {
		if wanted[lead.LastName] {
			copied := lead
			matches = append(matches, &copied)
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *LeadStore) InsertBatch(ctx context.Context, leads []*entity.Lead) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, lead := range leads {
		if _, exists := r.store.leads[lead.ID]; exists {
			return errors.New("duplicate lead id")
		}
	}
	for _, lead := range leads {
		r.store.leads[lead.ID] = *lead
	}
	return nil
}

func (r *LeadStore) DeleteBatch(ctx context.Context, ids []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range ids {
		if _, exists := r.store.leads[id]; !exists {
			return entity.ErrNotFound
		}
	}
	for _, id := range ids {
		delete(r.store.leads, id)
	}
	return nil
}

type CaseStore struct {
	store *Store
}

func (r *CaseStore) InsertBatch(ctx context.Context, cases []*entity.Case) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, kase := range cases {
		if _, exists := r.store.cases[kase.ID]; exists {
			return errors.New("duplicate case id")
		}
	}
	for _, kase := range cases {
		r.store.cases[kase.ID] = *kase
	}
	return nil
}

func (r *CaseStore) DeleteBatch(ctx context.Context, ids []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range ids {
		if _, exists := r.store.cases[id]; !exists {
			return entity.ErrNotFound
		}
	}
	for _, id := range ids {
		delete(r.store.cases, id)
	}
	return nil
}

// Count reports how many cases are persisted. Test support.
func (r *CaseStore) Count() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.cases)
}
