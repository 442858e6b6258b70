package integration

import (
	"context"
	"testing"

	"github.com/iho/doubleentry/internal/adapter/repository/memory"
	"github.com/iho/doubleentry/internal/domain"
	"github.com/iho/doubleentry/internal/usecase"
)

type ledger struct {
	accounts  *usecase.AccountUseCase
	transfers *usecase.TransferUseCase
}

func newLedger() *ledger {
	repo := memory.NewRepository()

	return &ledger{
		accounts:  usecase.NewAccountUseCase(repo),
		transfers: usecase.NewTransferUseCase(repo),
	}
}

func (l *ledger) createAccount(t *testing.T, ref, amount string) {
	t.Helper()

	if err := l.accounts.CreateAccount(context.Background(), ref, domain.MustMoney(amount, "EUR")); err != nil {
		t.Fatalf("failed to create account %s: %v", ref, err)
	}
}

func (l *ledger) transfer(t *testing.T, txnRef, from, to, amount string) *domain.Transaction {
	t.Helper()

	txn, err := l.transfers.TransferFunds(context.Background(), twoLegRequest(txnRef, from, to, amount))
	if err != nil {
		t.Fatalf("transfer %s failed: %v", txnRef, err)
	}

	return txn
}

func (l *ledger) balance(t *testing.T, ref string) string {
	t.Helper()

	balance, err := l.accounts.GetAccountBalance(context.Background(), ref)
	if err != nil {
		t.Fatalf("failed to get balance of %s: %v", ref, err)
	}

	return balance.String()
}

func twoLegRequest(txnRef, from, to, amount string) *domain.TransferRequest {
	return domain.BuildTransferRequest().
		Reference(txnRef).
		Type("payment").
		Account(from).Amount(domain.MustMoney(amount, "EUR").Neg()).
		Account(to).Amount(domain.MustMoney(amount, "EUR")).
		Build()
}

func TestLedger_TransferMovesFunds(t *testing.T) {
	l := newLedger()
	l.createAccount(t, "alice", "100")
	l.createAccount(t, "bob", "20")

	txn := l.transfer(t, "txn-1", "alice", "bob", "60")

	if txn.Reference != "txn-1" {
		t.Errorf("expected reference txn-1, got %s", txn.Reference)
	}
	if got := l.balance(t, "alice"); got != "40 EUR" {
		t.Errorf("expected alice at 40 EUR, got %s", got)
	}
	if got := l.balance(t, "bob"); got != "80 EUR" {
		t.Errorf("expected bob at 80 EUR, got %s", got)
	}
}

func TestLedger_MultiLegSplit(t *testing.T) {
	l := newLedger()
	l.createAccount(t, "payroll", "1000")
	l.createAccount(t, "alice", "0")
	l.createAccount(t, "bob", "0")

	req := domain.BuildTransferRequest().
		Reference("salaries").
		Type("payroll").
		Account("payroll").Amount(domain.MustMoney("-500", "EUR")).
		Account("alice").Amount(domain.MustMoney("300", "EUR")).
		Account("bob").Amount(domain.MustMoney("200", "EUR")).
		Build()

	if _, err := l.transfers.TransferFunds(context.Background(), req); err != nil {
		t.Fatalf("split transfer failed: %v", err)
	}

	if got := l.balance(t, "payroll"); got != "500 EUR" {
		t.Errorf("expected payroll at 500 EUR, got %s", got)
	}
	if got := l.balance(t, "alice"); got != "300 EUR" {
		t.Errorf("expected alice at 300 EUR, got %s", got)
	}
	if got := l.balance(t, "bob"); got != "200 EUR" {
		t.Errorf("expected bob at 200 EUR, got %s", got)
	}
}

func TestLedger_RejectedTransfersLeaveNoTrace(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		request  *domain.TransferRequest
		wantKind domain.ErrorKind
	}{
		{
			name:     "insufficient funds",
			request:  twoLegRequest("txn-over", "alice", "bob", "150"),
			wantKind: domain.KindInsufficientFunds,
		},
		{
			name:     "unknown account",
			request:  twoLegRequest("txn-ghost", "alice", "ghost", "10"),
			wantKind: domain.KindAccountNotFound,
		},
		{
			name: "unbalanced legs",
			request: domain.BuildTransferRequest().
				Reference("txn-skew").
				Type("payment").
				Account("alice").Amount(domain.MustMoney("-10", "EUR")).
				Account("bob").Amount(domain.MustMoney("9.99", "EUR")).
				Build(),
			wantKind: domain.KindUnbalancedLegs,
		},
		{
			name: "single leg",
			request: domain.BuildTransferRequest().
				Reference("txn-lonely").
				Type("payment").
				Account("alice").Amount(domain.MustMoney("-10", "EUR")).
				Build(),
			wantKind: domain.KindIllegalState,
		},
		{
			name: "currency mismatch with account",
			request: domain.BuildTransferRequest().
				Reference("txn-usd").
				Type("payment").
				Account("alice").Amount(domain.MustMoney("-10", "USD")).
				Account("bob").Amount(domain.MustMoney("10", "USD")).
				Build(),
			wantKind: domain.KindTransferValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger()
			l.createAccount(t, "alice", "100")
			l.createAccount(t, "bob", "0")

			_, err := l.transfers.TransferFunds(ctx, tt.request)
			if !domain.IsKind(err, tt.wantKind) {
				t.Fatalf("expected kind %v, got %v", tt.wantKind, err)
			}

			// Balances stay untouched and nothing was committed.
			if got := l.balance(t, "alice"); got != "100 EUR" {
				t.Errorf("expected alice at 100 EUR, got %s", got)
			}
			if got := l.balance(t, "bob"); got != "0 EUR" {
				t.Errorf("expected bob at 0 EUR, got %s", got)
			}

			txns, err := l.transfers.FindTransactionsByAccountRef(ctx, "alice")
			if err != nil {
				t.Fatalf("failed to list transactions: %v", err)
			}
			if len(txns) != 0 {
				t.Errorf("expected no committed transactions, got %d", len(txns))
			}
		})
	}
}

func TestLedger_TransactionLookup(t *testing.T) {
	ctx := context.Background()

	l := newLedger()
	l.createAccount(t, "alice", "100")
	l.createAccount(t, "bob", "0")
	l.transfer(t, "txn-1", "alice", "bob", "25")

	t.Run("committed transaction is retrievable", func(t *testing.T) {
		txn, err := l.transfers.GetTransactionByRef(ctx, "txn-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if txn == nil {
			t.Fatal("expected a transaction")
		}
		if len(txn.Legs) != 2 {
			t.Errorf("expected 2 legs, got %d", len(txn.Legs))
		}
	})

	t.Run("unknown reference is nil, not an error", func(t *testing.T) {
		txn, err := l.transfers.GetTransactionByRef(ctx, "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if txn != nil {
			t.Errorf("expected nil, got %+v", txn)
		}
	})

	t.Run("repeated reads are stable", func(t *testing.T) {
		first, _ := l.transfers.GetTransactionByRef(ctx, "txn-1")
		second, _ := l.transfers.GetTransactionByRef(ctx, "txn-1")

		if first.Reference != second.Reference || len(first.Legs) != len(second.Legs) {
			t.Error("expected identical reads of an immutable transaction")
		}
	})
}

func TestLedger_TransactionHistory(t *testing.T) {
	ctx := context.Background()

	l := newLedger()
	l.createAccount(t, "alice", "100")
	l.createAccount(t, "bob", "50")
	l.createAccount(t, "carol", "0")

	l.transfer(t, "txn-1", "alice", "bob", "10")
	l.transfer(t, "txn-2", "bob", "carol", "5")
	l.transfer(t, "txn-3", "alice", "carol", "15")

	t.Run("history in commit order", func(t *testing.T) {
		txns, err := l.transfers.FindTransactionsByAccountRef(ctx, "carol")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txns) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txns))
		}
		if txns[0].Reference != "txn-2" || txns[1].Reference != "txn-3" {
			t.Errorf("expected txn-2 then txn-3, got %s then %s", txns[0].Reference, txns[1].Reference)
		}
	})

	t.Run("unknown account is an error", func(t *testing.T) {
		_, err := l.transfers.FindTransactionsByAccountRef(ctx, "ghost")
		if !domain.IsKind(err, domain.KindAccountNotFound) {
			t.Fatalf("expected account not found, got %v", err)
		}
	})
}

func TestLedger_DuplicateReferences(t *testing.T) {
	ctx := context.Background()

	l := newLedger()
	l.createAccount(t, "alice", "100")
	l.createAccount(t, "bob", "0")

	t.Run("duplicate account reference", func(t *testing.T) {
		err := l.accounts.CreateAccount(ctx, "alice", domain.MustMoney("5", "EUR"))
		if !domain.IsKind(err, domain.KindInfrastructure) {
			t.Fatalf("expected infrastructure error, got %v", err)
		}

		// The original account survives.
		if got := l.balance(t, "alice"); got != "100 EUR" {
			t.Errorf("expected alice at 100 EUR, got %s", got)
		}
	})

	t.Run("duplicate transaction reference", func(t *testing.T) {
		l.transfer(t, "txn-1", "alice", "bob", "10")

		_, err := l.transfers.TransferFunds(ctx, twoLegRequest("txn-1", "alice", "bob", "10"))
		if !domain.IsKind(err, domain.KindInfrastructure) {
			t.Fatalf("expected infrastructure error, got %v", err)
		}

		// The rejected duplicate moved no funds.
		if got := l.balance(t, "alice"); got != "90 EUR" {
			t.Errorf("expected alice at 90 EUR, got %s", got)
		}
	})
}
