package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/crm-records/internal/entity"
)

// MockAccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByName(ctx context.Context, name string) ([]*entity.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpsertBatch(ctx context.Context, accounts []*entity.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Insert(ctx context.Context, contact *entity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) UpsertBatch(ctx context.Context, contacts []*entity.Contact) error {
	args := m.Called(ctx, contacts)
	return args.Error(0)
}

// MockOpportunityRepository
type MockOpportunityRepository struct {
	mock.Mock
}

func (m *MockOpportunityRepository) FindByID(ctx context.Context, id string) (*entity.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) Update(ctx context.Context, opp *entity.Opportunity) error {
	args := m.Called(ctx, opp)
	return args.Error(0)
}

func (m *MockOpportunityRepository) UpsertBatch(ctx context.Context, opps []*entity.Opportunity) error {
	args := m.Called(ctx, opps)
	return args.Error(0)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindByLastNames(ctx context.Context, lastNames []string) ([]*entity.Lead, error) {
	args := m.Called(ctx, lastNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) InsertBatch(ctx context.Context, leads []*entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteBatch(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockCaseRepository
type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) InsertBatch(ctx context.Context, cases []*entity.Case) error {
	args := m.Called(ctx, cases)
	return args.Error(0)
}

func (m *MockCaseRepository) DeleteBatch(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishRecordEvent(ctx context.Context, event RecordEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
