// Package memory provides an in-process LedgerRepository backed by guarded
// maps. It is the default backend and the one the test suites run against.
package memory

import (
	"context"
	"sync"

	"github.com/iho/doubleentry/internal/domain"
	"github.com/iho/doubleentry/internal/usecase"
)

// Repository implements usecase.LedgerRepository in memory. A single RWMutex
// makes Commit indivisible: readers either see the whole commit or none of
// it, never a transfer mid-flight.
type Repository struct {
	mu           sync.RWMutex
	accounts     map[string]*domain.Account
	transactions map[string]*domain.Transaction
	// byAccount holds transaction references per account in commit order.
	byAccount map[string][]string
}

// NewRepository creates an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		accounts:     make(map[string]*domain.Account),
		transactions: make(map[string]*domain.Transaction),
		byAccount:    make(map[string][]string),
	}
}

// GetAccount returns a copy of the account, or usecase.ErrNotFound.
func (r *Repository) GetAccount(ctx context.Context, ref string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[ref]
	if !ok {
		return nil, usecase.ErrNotFound
	}

	return account.Clone(), nil
}

// PutAccount stores a new account, or returns usecase.ErrAlreadyExists.
func (r *Repository) PutAccount(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Reference]; ok {
		return usecase.ErrAlreadyExists
	}

	r.accounts[account.Reference] = account.Clone()

	return nil
}

// GetTransaction returns a copy of the transaction, or usecase.ErrNotFound.
func (r *Repository) GetTransaction(ctx context.Context, ref string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txn, ok := r.transactions[ref]
	if !ok {
		return nil, usecase.ErrNotFound
	}

	return txn.Clone(), nil
}

// ListTransactionsByAccount returns copies of the transactions having a leg
// for the account, in commit order.
func (r *Repository) ListTransactionsByAccount(ctx context.Context, accountRef string) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs := r.byAccount[accountRef]

	txns := make([]*domain.Transaction, 0, len(refs))
	for _, ref := range refs {
		txns = append(txns, r.transactions[ref].Clone())
	}

	return txns, nil
}

// Commit applies all balance updates and stores the transaction under one
// write lock. Preconditions are checked before anything mutates, so a failed
// commit leaves no trace.
func (r *Repository) Commit(ctx context.Context, updates []usecase.BalanceUpdate, txn *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transactions[txn.Reference]; ok {
		return usecase.ErrAlreadyExists
	}

	for _, update := range updates {
		if _, ok := r.accounts[update.AccountRef]; !ok {
			return usecase.ErrNotFound
		}
	}

	for _, update := range updates {
		account := r.accounts[update.AccountRef]
		account.Balance = update.NewBalance
		account.UpdatedAt = txn.CreatedAt
	}

	stored := txn.Clone()
	r.transactions[stored.Reference] = stored

	for _, ref := range stored.AccountRefs() {
		r.byAccount[ref] = append(r.byAccount[ref], stored.Reference)
	}

	return nil
}
