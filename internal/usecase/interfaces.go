package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/doubleentry/internal/domain"
)

// Storage-level sentinels. Repositories speak in these; the use case layer
// translates them into the domain error taxonomy.
var (
	// ErrNotFound is returned by lookups for an absent account or transaction.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned on a reference uniqueness conflict.
	ErrAlreadyExists = errors.New("already exists")
)

// BalanceUpdate is one (account reference, new balance) pair inside an atomic
// commit.
type BalanceUpdate struct {
	AccountRef string
	NewBalance domain.Money
}

// LedgerRepository is the persistence contract for accounts and transactions.
// Commit must apply every balance update together with the new transaction as
// one indivisible unit, or nothing at all.
type LedgerRepository interface {
	GetAccount(ctx context.Context, ref string) (*domain.Account, error)
	PutAccount(ctx context.Context, account *domain.Account) error
	GetTransaction(ctx context.Context, ref string) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountRef string) ([]*domain.Transaction, error)
	Commit(ctx context.Context, updates []BalanceUpdate, txn *domain.Transaction) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
