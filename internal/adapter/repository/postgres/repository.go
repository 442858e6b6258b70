// Package postgres implements the ledger repository on PostgreSQL. The
// Commit contract maps onto one database transaction, so atomicity rides on
// the database rather than on in-process locking.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/doubleentry/internal/domain"
	"github.com/iho/doubleentry/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// Repository implements usecase.LedgerRepository on a pgx pool.
type Repository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	idGen   usecase.IDGenerator
}

// NewRepository creates a new Repository.
func NewRepository(pool *pgxpool.Pool, retrier *Retrier, idGen usecase.IDGenerator) *Repository {
	return &Repository{
		pool:    pool,
		retrier: retrier,
		idGen:   idGen,
	}
}

// GetAccount retrieves an account by reference.
func (r *Repository) GetAccount(ctx context.Context, ref string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT reference, balance, currency, created_at, updated_at
		 FROM accounts WHERE reference = $1`, ref)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrNotFound
		}

		return nil, err
	}

	return account, nil
}

// PutAccount inserts a new account. A duplicate reference maps to
// usecase.ErrAlreadyExists.
func (r *Repository) PutAccount(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO accounts (reference, balance, currency, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		account.Reference,
		decimalToNumeric(account.Balance.Amount()),
		account.Balance.Currency(),
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return usecase.ErrAlreadyExists
	}

	return err
}

// GetTransaction retrieves a transaction with its legs in leg order.
func (r *Repository) GetTransaction(ctx context.Context, ref string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT reference, type, created_at FROM transactions WHERE reference = $1`, ref)

	txn := &domain.Transaction{}

	var createdAt pgtype.Timestamptz

	if err := row.Scan(&txn.Reference, &txn.Type, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrNotFound
		}

		return nil, err
	}

	txn.CreatedAt = createdAt.Time

	legs, err := r.legsFor(ctx, ref)
	if err != nil {
		return nil, err
	}

	txn.Legs = legs

	return txn, nil
}

// ListTransactionsByAccount lists transactions having a leg for the account,
// in commit order.
func (r *Repository) ListTransactionsByAccount(ctx context.Context, accountRef string) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.reference, t.type, t.created_at,
		        l.account_ref, l.amount, l.currency
		 FROM transactions t
		 JOIN transaction_legs l ON l.transaction_ref = t.reference
		 WHERE t.reference IN (
		     SELECT DISTINCT transaction_ref FROM transaction_legs WHERE account_ref = $1
		 )
		 ORDER BY t.commit_seq, l.leg_index`, accountRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		txns    []*domain.Transaction
		current *domain.Transaction
	)

	for rows.Next() {
		var (
			txnRef, txnType, legRef, legCurrency string
			createdAt                            pgtype.Timestamptz
			amount                               pgtype.Numeric
		)

		if err := rows.Scan(&txnRef, &txnType, &createdAt, &legRef, &amount, &legCurrency); err != nil {
			return nil, err
		}

		if current == nil || current.Reference != txnRef {
			current = &domain.Transaction{
				Reference: txnRef,
				Type:      txnType,
				CreatedAt: createdAt.Time,
			}
			txns = append(txns, current)
		}

		legAmount, err := domain.NewMoney(numericToDecimal(amount), legCurrency)
		if err != nil {
			return nil, err
		}

		current.Legs = append(current.Legs, domain.Leg{AccountRef: legRef, Amount: legAmount})
	}

	return txns, rows.Err()
}

// Commit applies every balance update and inserts the transaction with its
// legs inside one database transaction, retrying on deadlock and
// serialization failures.
func (r *Repository) Commit(ctx context.Context, updates []usecase.BalanceUpdate, txn *domain.Transaction) error {
	return r.retrier.Retry(ctx, func() error {
		return r.commitOnce(ctx, updates, txn)
	})
}

func (r *Repository) commitOnce(ctx context.Context, updates []usecase.BalanceUpdate, txn *domain.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, update := range updates {
		tag, err := tx.Exec(ctx,
			`UPDATE accounts SET balance = $2, updated_at = $3 WHERE reference = $1`,
			update.AccountRef,
			decimalToNumeric(update.NewBalance.Amount()),
			timeToPgTimestamptz(txn.CreatedAt),
		)
		if err != nil {
			return err
		}

		if tag.RowsAffected() != 1 {
			return usecase.ErrNotFound
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (reference, type, created_at) VALUES ($1, $2, $3)`,
		txn.Reference, txn.Type, timeToPgTimestamptz(txn.CreatedAt))
	if isUniqueViolation(err) {
		return usecase.ErrAlreadyExists
	}

	if err != nil {
		return err
	}

	for i, leg := range txn.Legs {
		_, err := tx.Exec(ctx,
			`INSERT INTO transaction_legs (id, transaction_ref, leg_index, account_ref, amount, currency)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			r.idGen.Generate(), txn.Reference, i, leg.AccountRef,
			decimalToNumeric(leg.Amount.Amount()), leg.Amount.Currency())
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *Repository) legsFor(ctx context.Context, txnRef string) ([]domain.Leg, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT account_ref, amount, currency
		 FROM transaction_legs WHERE transaction_ref = $1 ORDER BY leg_index`, txnRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var legs []domain.Leg

	for rows.Next() {
		var (
			ref, currency string
			amount        pgtype.Numeric
		)

		if err := rows.Scan(&ref, &amount, &currency); err != nil {
			return nil, err
		}

		legAmount, err := domain.NewMoney(numericToDecimal(amount), currency)
		if err != nil {
			return nil, err
		}

		legs = append(legs, domain.Leg{AccountRef: ref, Amount: legAmount})
	}

	return legs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var (
		ref, currency        string
		balance              pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&ref, &balance, &currency, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	money, err := domain.NewMoney(numericToDecimal(balance), currency)
	if err != nil {
		return nil, err
	}

	return &domain.Account{
		Reference: ref,
		Balance:   money,
		CreatedAt: createdAt.Time,
		UpdatedAt: updatedAt.Time,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
