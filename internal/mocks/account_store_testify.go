package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/accounts-api/internal/domain"
	"github.com/phrazzld/accounts-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockAccountStore is a mock of store.AccountStore interface for use with testify/mock
type TestifyMockAccountStore struct {
	mock.Mock
}

var _ store.AccountStore = (*TestifyMockAccountStore)(nil)

// Create is a mock implementation of store.AccountStore.Create
func (m *TestifyMockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// GetByID is a mock implementation of store.AccountStore.GetByID
func (m *TestifyMockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.AccountStore.List
func (m *TestifyMockAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if accounts, ok := args.Get(0).([]*domain.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.AccountStore.Update
func (m *TestifyMockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// Modify is a mock implementation of store.AccountStore.Modify
func (m *TestifyMockAccountStore) Modify(
	ctx context.Context,
	id int64,
	mutate func(*domain.Account) error,
) (*domain.Account, error) {
	args := m.Called(ctx, id, mutate)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.AccountStore.Delete
func (m *TestifyMockAccountStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx is a mock implementation of store.AccountStore.WithTx
func (m *TestifyMockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	args := m.Called(tx)
	if ret, ok := args.Get(0).(store.AccountStore); ok {
		return ret
	}
	return m
}
