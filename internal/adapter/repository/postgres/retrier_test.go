package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

func TestRetrier(t *testing.T) {
	ctx := context.Background()

	t.Run("success on first attempt", func(t *testing.T) {
		retrier := NewRetrier(zerolog.Nop())

		calls := 0
		err := retrier.Retry(ctx, func() error {
			calls++
			return nil
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("retries deadlock until success", func(t *testing.T) {
		retrier := NewRetrier(zerolog.Nop())

		calls := 0
		err := retrier.Retry(ctx, func() error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: pgErrDeadlock}
			}
			return nil
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Errorf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		retrier := NewRetrier(zerolog.Nop())

		calls := 0
		permanent := errors.New("constraint violation")
		err := retrier.Retry(ctx, func() error {
			calls++
			return permanent
		})

		if !errors.Is(err, permanent) {
			t.Fatalf("expected the original error, got %v", err)
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		retrier := NewRetrier(zerolog.Nop())

		calls := 0
		err := retrier.Retry(ctx, func() error {
			calls++
			return &pgconn.PgError{Code: pgErrSerializationFailure}
		})

		if err == nil {
			t.Fatal("expected an error")
		}
		// 1 initial attempt plus maxRetries retries.
		if calls != 4 {
			t.Errorf("expected 4 calls, got %d", calls)
		}
	})
}

func TestIsRetryableError(t *testing.T) {
	if !isRetryableError(&pgconn.PgError{Code: pgErrDeadlock}) {
		t.Error("expected deadlock to be retryable")
	}
	if !isRetryableError(&pgconn.PgError{Code: pgErrSerializationFailure}) {
		t.Error("expected serialization failure to be retryable")
	}
	if isRetryableError(&pgconn.PgError{Code: "23505"}) {
		t.Error("expected unique violation to be permanent")
	}
	if isRetryableError(errors.New("plain")) {
		t.Error("expected a plain error to be permanent")
	}
}
