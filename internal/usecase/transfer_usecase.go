package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/iho/doubleentry/internal/domain"
)

// TransferUseCase orchestrates the transfer pipeline: validate, resolve,
// check, atomically commit.
type TransferUseCase struct {
	repo      LedgerRepository
	validator *domain.TransferValidator
	locks     *accountLocker
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(repo LedgerRepository) *TransferUseCase {
	return &TransferUseCase{
		repo:      repo,
		validator: domain.NewTransferValidator(),
		locks:     newAccountLocker(),
	}
}

// TransferFunds validates the request, resolves every leg's account, checks
// currencies and funds, and commits all balance changes together with the new
// transaction as one unit. Any failure leaves the ledger untouched.
func (uc *TransferUseCase) TransferFunds(ctx context.Context, req *domain.TransferRequest) (*domain.Transaction, error) {
	// 1. Structural and content validation, before any account is touched.
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}

	// 2. Serialize against other transfers over an overlapping account set,
	// so no two can read the same stale balance and both pass the overdraft
	// check. Disjoint transfers proceed in parallel.
	refs := make([]string, 0, len(req.Legs))
	for _, leg := range req.Legs {
		refs = append(refs, leg.AccountRef)
	}

	unlock := uc.locks.lockAll(refs)
	defer unlock()

	// 3. Resolve each leg's account.
	accounts, err := uc.resolveAccounts(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Every leg's currency must match its account's currency.
	for i, leg := range req.Legs {
		account := accounts[leg.AccountRef]
		if leg.Amount.Currency() != account.Currency() {
			return nil, domain.NewTransferValidation(i,
				"currency "+leg.Amount.Currency()+" does not match account currency "+account.Currency())
		}
	}

	// 5. Prospective balances, summing legs per account, and the overdraft
	// check. Account refs are walked in sorted order so failures and updates
	// are deterministic.
	updates, err := uc.prospectiveBalances(req, accounts)
	if err != nil {
		return nil, err
	}

	// 6. Atomic commit: all new balances plus the transaction, or nothing.
	txn := &domain.Transaction{
		Reference: req.Reference,
		Type:      req.Type,
		Legs:      append([]domain.Leg(nil), req.Legs...),
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Commit(ctx, updates, txn); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, domain.NewInfrastructure("transaction "+req.Reference+" already exists", err)
		}

		return nil, domain.NewInfrastructure("failed to commit transfer "+req.Reference, err)
	}

	return txn, nil
}

// GetTransactionByRef returns the transaction for ref, or nil when no such
// transaction exists. Absence is a normal outcome, not an error.
func (uc *TransferUseCase) GetTransactionByRef(ctx context.Context, ref string) (*domain.Transaction, error) {
	txn, err := uc.repo.GetTransaction(ctx, ref)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}

		return nil, domain.NewInfrastructure("failed to load transaction "+ref, err)
	}

	return txn, nil
}

// FindTransactionsByAccountRef returns the committed transactions touching
// the account, in commit order. Unknown accounts are an error, unlike unknown
// transaction references.
func (uc *TransferUseCase) FindTransactionsByAccountRef(ctx context.Context, accountRef string) ([]*domain.Transaction, error) {
	if strings.TrimSpace(accountRef) == "" {
		return nil, domain.NewAccountNotFound(accountRef)
	}

	if _, err := uc.repo.GetAccount(ctx, accountRef); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, domain.NewAccountNotFound(accountRef)
		}

		return nil, domain.NewInfrastructure("failed to load account "+accountRef, err)
	}

	txns, err := uc.repo.ListTransactionsByAccount(ctx, accountRef)
	if err != nil {
		return nil, domain.NewInfrastructure("failed to list transactions for account "+accountRef, err)
	}

	return txns, nil
}

func (uc *TransferUseCase) resolveAccounts(ctx context.Context, req *domain.TransferRequest) (map[string]*domain.Account, error) {
	accounts := make(map[string]*domain.Account, len(req.Legs))

	for _, leg := range req.Legs {
		if _, ok := accounts[leg.AccountRef]; ok {
			continue
		}

		account, err := uc.repo.GetAccount(ctx, leg.AccountRef)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, domain.NewAccountNotFound(leg.AccountRef)
			}

			return nil, domain.NewInfrastructure("failed to load account "+leg.AccountRef, err)
		}

		accounts[leg.AccountRef] = account
	}

	return accounts, nil
}

func (uc *TransferUseCase) prospectiveBalances(req *domain.TransferRequest, accounts map[string]*domain.Account) ([]BalanceUpdate, error) {
	// An account may appear in more than one leg; its net effect is the sum
	// of all of them.
	nets := make(map[string]domain.Money, len(accounts))
	for _, leg := range req.Legs {
		net, ok := nets[leg.AccountRef]
		if !ok {
			nets[leg.AccountRef] = leg.Amount
			continue
		}

		sum, err := net.Add(leg.Amount)
		if err != nil {
			return nil, err
		}

		nets[leg.AccountRef] = sum
	}

	refs := make([]string, 0, len(nets))
	for ref := range nets {
		refs = append(refs, ref)
	}

	sort.Strings(refs)

	updates := make([]BalanceUpdate, 0, len(refs))

	for _, ref := range refs {
		prospective, err := accounts[ref].Balance.Add(nets[ref])
		if err != nil {
			return nil, err
		}

		if prospective.IsNegative() {
			return nil, domain.NewInsufficientFunds(ref, prospective.Neg())
		}

		updates = append(updates, BalanceUpdate{AccountRef: ref, NewBalance: prospective})
	}

	return updates, nil
}
