package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/accounts-api/internal/domain"
	"github.com/phrazzld/accounts-api/internal/platform/logger"
	"github.com/phrazzld/accounts-api/internal/redact"
	"github.com/phrazzld/accounts-api/internal/store"
)

const accountColumns = `id, name, email, address, phone_number, date_joined`

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	conn   *sql.DB // nil when the store is bound to a transaction
	logger *slog.Logger
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// The connection pool is owned by the caller. If logger is nil, slog.Default() is used.
func NewPostgresAccountStore(db *sql.DB, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		conn:   db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AccountStore.Create
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create", slog.String("error", redact.Error(err)))
		return err
	}

	query := `
		INSERT INTO accounts (name, email, address, phone_number, date_joined)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(
		ctx,
		query,
		account.Name,
		account.Email,
		account.Address,
		nullString(account.PhoneNumber),
		account.DateJoined,
	).Scan(&id)
	if err != nil {
		log.Error("failed to create account", slog.String("error", redact.Error(err)))
		return store.NewStoreError("account", "create", "failed to insert account", MapError(err))
	}

	account.ID = id

	log.Info("account created successfully", slog.Int64("account_id", id))
	return nil
}

// GetByID implements store.AccountStore.GetByID
func (s *PostgresAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.get(ctx, id, false)
}

func (s *PostgresAccountStore) get(ctx context.Context, id int64, forUpdate bool) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.Int64("account_id", id))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("account_id", id))
		return nil, store.NewStoreError("account", "get", "failed to query account", MapError(err))
	}

	return account, nil
}

// List implements store.AccountStore.List
func (s *PostgresAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list accounts", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("account", "list", "failed to query accounts", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", redact.Error(closeErr)))
		}
	}()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Error("failed to scan account row", slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("account", "list", "failed to scan account", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating account rows", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("account", "list", "failed to iterate accounts", MapError(err))
	}

	log.Debug("accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

// Update implements store.AccountStore.Update
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", redact.Error(err)),
			slog.Int64("account_id", account.ID))
		return err
	}

	query := `
		UPDATE accounts
		SET name = $1, email = $2, address = $3, phone_number = $4, date_joined = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		account.Name,
		account.Email,
		account.Address,
		nullString(account.PhoneNumber),
		account.DateJoined,
		account.ID,
	)
	if err != nil {
		log.Error("failed to update account",
			slog.String("error", redact.Error(err)),
			slog.Int64("account_id", account.ID))
		return store.NewStoreError("account", "update", "failed to update account", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAccountNotFound); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("account not found for update", slog.Int64("account_id", account.ID))
		}
		return err
	}

	log.Info("account updated successfully", slog.Int64("account_id", account.ID))
	return nil
}

// Modify loads the account with the given id under a row lock, applies
// mutate, and writes the result back in the same transaction. Errors from
// mutate abort the transaction and are returned unchanged.
func (s *PostgresAccountStore) Modify(
	ctx context.Context,
	id int64,
	mutate func(*domain.Account) error,
) (*domain.Account, error) {
	var modified *domain.Account

	apply := func(ctx context.Context, txStore *PostgresAccountStore) error {
		account, err := txStore.get(ctx, id, true)
		if err != nil {
			return err
		}

		if err := mutate(account); err != nil {
			return err
		}
		// The id is the row being modified, whatever mutate did.
		account.ID = id

		if err := txStore.Update(ctx, account); err != nil {
			return err
		}

		modified = account
		return nil
	}

	// Already bound to a caller-managed transaction
	if s.conn == nil {
		if err := apply(ctx, s); err != nil {
			return nil, err
		}
		return modified, nil
	}

	err := store.RunInTransaction(ctx, s.conn, func(ctx context.Context, tx *sql.Tx) error {
		return apply(ctx, s.WithTx(tx).(*PostgresAccountStore))
	})
	if err != nil {
		return nil, err
	}

	return modified, nil
}

// Delete implements store.AccountStore.Delete
func (s *PostgresAccountStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", redact.Error(err)),
			slog.Int64("account_id", id))
		return store.NewStoreError("account", "delete", "failed to delete account", MapError(err))
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Debug("delete of missing account ignored", slog.Int64("account_id", id))
		return nil
	}

	log.Info("account deleted successfully", slog.Int64("account_id", id))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var (
		account domain.Account
		phone   sql.NullString
	)

	if err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Address,
		&phone,
		&account.DateJoined,
	); err != nil {
		return nil, err
	}

	if phone.Valid {
		account.PhoneNumber = &phone.String
	}
	account.DateJoined = domain.DateOf(account.DateJoined)

	return &account, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
