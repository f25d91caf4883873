package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/accounts-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create inserts a new account and sets its ID from the store.
	// Returns validation errors from the domain Account if data is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// List returns every account ordered by ID. The result is empty, not nil,
	// when no accounts exist.
	List(ctx context.Context) ([]*domain.Account, error)

	// Update replaces every stored field of the account except its ID.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// Modify loads the account with the given id, applies mutate to it, and
	// persists the result atomically. Returns ErrAccountNotFound if the account
	// does not exist; errors from mutate are returned unchanged and nothing is written.
	Modify(ctx context.Context, id int64, mutate func(*domain.Account) error) (*domain.Account, error)

	// Delete removes an account by ID. Deleting a missing account is not an error.
	Delete(ctx context.Context, id int64) error

	// WithTx returns an AccountStore that runs its statements on tx.
	WithTx(tx *sql.Tx) AccountStore
}
