package mocks

import (
	"context"
	"sync"

	"github.com/iho/doubleentry/internal/domain"
	"github.com/iho/doubleentry/internal/usecase"
)

// MockLedgerRepository is a mock implementation of LedgerRepository. Without
// overrides it behaves like a tiny in-memory store; set the Func fields to
// script individual calls.
type MockLedgerRepository struct {
	mu           sync.RWMutex
	accounts     map[string]*domain.Account
	transactions map[string]*domain.Transaction
	byAccount    map[string][]string

	GetAccountFunc                func(ctx context.Context, ref string) (*domain.Account, error)
	PutAccountFunc                func(ctx context.Context, account *domain.Account) error
	GetTransactionFunc            func(ctx context.Context, ref string) (*domain.Transaction, error)
	ListTransactionsByAccountFunc func(ctx context.Context, accountRef string) ([]*domain.Transaction, error)
	CommitFunc                    func(ctx context.Context, updates []usecase.BalanceUpdate, txn *domain.Transaction) error
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{
		accounts:     make(map[string]*domain.Account),
		transactions: make(map[string]*domain.Transaction),
		byAccount:    make(map[string][]string),
	}
}

// SeedAccount stores an account directly, bypassing any scripted PutAccount.
func (m *MockLedgerRepository) SeedAccount(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Reference] = account.Clone()
}

func (m *MockLedgerRepository) GetAccount(ctx context.Context, ref string) (*domain.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, ref)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[ref]; ok {
		return account.Clone(), nil
	}
	return nil, usecase.ErrNotFound
}

func (m *MockLedgerRepository) PutAccount(ctx context.Context, account *domain.Account) error {
	if m.PutAccountFunc != nil {
		return m.PutAccountFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Reference]; ok {
		return usecase.ErrAlreadyExists
	}
	m.accounts[account.Reference] = account.Clone()
	return nil
}

func (m *MockLedgerRepository) GetTransaction(ctx context.Context, ref string) (*domain.Transaction, error) {
	if m.GetTransactionFunc != nil {
		return m.GetTransactionFunc(ctx, ref)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if txn, ok := m.transactions[ref]; ok {
		return txn.Clone(), nil
	}
	return nil, usecase.ErrNotFound
}

func (m *MockLedgerRepository) ListTransactionsByAccount(ctx context.Context, accountRef string) ([]*domain.Transaction, error) {
	if m.ListTransactionsByAccountFunc != nil {
		return m.ListTransactionsByAccountFunc(ctx, accountRef)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	txns := make([]*domain.Transaction, 0, len(m.byAccount[accountRef]))
	for _, ref := range m.byAccount[accountRef] {
		txns = append(txns, m.transactions[ref].Clone())
	}
	return txns, nil
}

func (m *MockLedgerRepository) Commit(ctx context.Context, updates []usecase.BalanceUpdate, txn *domain.Transaction) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx, updates, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[txn.Reference]; ok {
		return usecase.ErrAlreadyExists
	}
	for _, update := range updates {
		if _, ok := m.accounts[update.AccountRef]; !ok {
			return usecase.ErrNotFound
		}
	}
	for _, update := range updates {
		m.accounts[update.AccountRef].Balance = update.NewBalance
	}
	stored := txn.Clone()
	m.transactions[stored.Reference] = stored
	for _, ref := range stored.AccountRefs() {
		m.byAccount[ref] = append(m.byAccount[ref], stored.Reference)
	}
	return nil
}
