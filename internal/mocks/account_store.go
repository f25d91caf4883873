package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/phrazzld/accounts-api/internal/domain"
	"github.com/phrazzld/accounts-api/internal/store"
)

// MockAccountStore is an in-memory store.AccountStore. Any non-nil function
// field replaces the in-memory behaviour of the corresponding method.
type MockAccountStore struct {
	CreateFn  func(ctx context.Context, account *domain.Account) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Account, error)
	ListFn    func(ctx context.Context) ([]*domain.Account, error)
	UpdateFn  func(ctx context.Context, account *domain.Account) error
	ModifyFn  func(ctx context.Context, id int64, mutate func(*domain.Account) error) (*domain.Account, error)
	DeleteFn  func(ctx context.Context, id int64) error

	mu       sync.Mutex
	accounts map[int64]domain.Account
	nextID   int64
}

var _ store.AccountStore = (*MockAccountStore)(nil)

// NewMockAccountStore creates an empty in-memory account store.
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		accounts: make(map[int64]domain.Account),
		nextID:   1,
	}
}

// Create implements store.AccountStore.Create
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	if err := account.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()

	account.ID = m.nextID
	m.nextID++
	m.accounts[account.ID] = *account
	return nil
}

// GetByID implements store.AccountStore.GetByID
func (m *MockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return &account, nil
}

// List implements store.AccountStore.List
func (m *MockAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		account := account
		result = append(result, &account)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update implements store.AccountStore.Update
func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, account)
	}

	if err := account.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[account.ID]; !ok {
		return store.ErrAccountNotFound
	}
	m.accounts[account.ID] = *account
	return nil
}

// Modify implements store.AccountStore.Modify. The store lock is held while
// mutate runs, mirroring the row lock of the database implementation.
func (m *MockAccountStore) Modify(
	ctx context.Context,
	id int64,
	mutate func(*domain.Account) error,
) (*domain.Account, error) {
	if m.ModifyFn != nil {
		return m.ModifyFn(ctx, id, mutate)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.accounts[id]
	if !ok {
		return nil, store.ErrAccountNotFound
	}

	updated := current
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	updated.ID = id

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	m.accounts[id] = updated
	return &updated, nil
}

// Delete implements store.AccountStore.Delete
func (m *MockAccountStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.accounts, id)
	return nil
}

// WithTx implements store.AccountStore.WithTx. The in-memory store has no
// transactions, so it returns itself.
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}

// Len returns the number of stored accounts.
func (m *MockAccountStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.accounts)
}

func (m *MockAccountStore) init() {
	if m.accounts == nil {
		m.accounts = make(map[int64]domain.Account)
	}
	if m.nextID == 0 {
		m.nextID = 1
	}
}
