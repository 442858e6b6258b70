package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/iho/doubleentry/internal/domain"
)

// AccountUseCase handles account creation and balance queries.
type AccountUseCase struct {
	repo LedgerRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(repo LedgerRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// CreateAccount persists a new account under ref with the given opening
// balance. The reference and the opening money must both be present; a
// duplicate reference surfaces as an infrastructure error, since uniqueness
// is the repository's guarantee.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, ref string, openingBalance domain.Money) error {
	if strings.TrimSpace(ref) == "" {
		return domain.NewInvalidArgument("account reference is required")
	}

	if !openingBalance.IsSet() {
		return domain.NewInvalidArgument("opening balance is required")
	}

	now := time.Now().UTC()

	account := &domain.Account{
		Reference: ref,
		Balance:   openingBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.PutAccount(ctx, account); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return domain.NewInfrastructure("account "+ref+" already exists", err)
		}

		return domain.NewInfrastructure("failed to create account "+ref, err)
	}

	return nil
}

// GetAccountBalance returns the current committed balance of ref. A blank or
// unknown reference is an account-not-found error.
func (uc *AccountUseCase) GetAccountBalance(ctx context.Context, ref string) (domain.Money, error) {
	if strings.TrimSpace(ref) == "" {
		return domain.Money{}, domain.NewAccountNotFound(ref)
	}

	account, err := uc.repo.GetAccount(ctx, ref)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Money{}, domain.NewAccountNotFound(ref)
		}

		return domain.Money{}, domain.NewInfrastructure("failed to load account "+ref, err)
	}

	return account.Balance, nil
}
