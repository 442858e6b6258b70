package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	t.Run("transfer validation names the leg", func(t *testing.T) {
		err := NewTransferValidation(2, "amount is missing")
		if err.LegIndex != 2 {
			t.Errorf("expected leg index 2, got %d", err.LegIndex)
		}
		if err.Error() != "transfer_validation: leg 2: amount is missing" {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})

	t.Run("unbalanced legs carries imbalance", func(t *testing.T) {
		err := NewUnbalancedLegs(MustMoney("0.01", "EUR"))
		if err.Kind != KindUnbalancedLegs {
			t.Errorf("expected unbalanced legs kind, got %v", err.Kind)
		}
		if err.Imbalance.String() != "0.01 EUR" {
			t.Errorf("expected imbalance 0.01 EUR, got %s", err.Imbalance)
		}
	})

	t.Run("insufficient funds carries account and shortfall", func(t *testing.T) {
		err := NewInsufficientFunds("acc-1", MustMoney("5", "EUR"))
		if err.AccountRef != "acc-1" {
			t.Errorf("expected account acc-1, got %s", err.AccountRef)
		}
		if err.Shortfall.String() != "5 EUR" {
			t.Errorf("expected shortfall 5 EUR, got %s", err.Shortfall)
		}
	})

	t.Run("infrastructure wraps the cause", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := NewInfrastructure("failed to commit", cause)

		if !errors.Is(err, cause) {
			t.Error("expected errors.Is to reach the cause")
		}
	})
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(NewAccountNotFound("acc-1")); got != KindAccountNotFound {
		t.Errorf("expected account not found kind, got %v", got)
	}

	// Wrapping must not hide the kind.
	wrapped := fmt.Errorf("handler: %w", NewIllegalState("too few legs"))
	if !IsKind(wrapped, KindIllegalState) {
		t.Error("expected wrapped error to keep its kind")
	}

	if got := KindOf(errors.New("plain")); got != 0 {
		t.Errorf("expected 0 for a foreign error, got %v", got)
	}
}

func TestErrorKindString(t *testing.T) {
	t.Parallel()

	kinds := map[ErrorKind]string{
		KindInvalidArgument:    "invalid_argument",
		KindIllegalState:       "illegal_state",
		KindTransferValidation: "transfer_validation",
		KindUnbalancedLegs:     "unbalanced_legs",
		KindAccountNotFound:    "account_not_found",
		KindInsufficientFunds:  "insufficient_funds",
		KindInfrastructure:     "infrastructure",
	}

	for kind, want := range kinds {
		if kind.String() != want {
			t.Errorf("expected %s, got %s", want, kind.String())
		}
	}
}
