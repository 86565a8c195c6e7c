package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Store is the query surface plus transactional execution. Every multi-row
// money movement runs inside ExecTx.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fq func(q Querier) error) error
}

type SQLStore struct {
	*Queries
	DB       *sql.DB
	maxTries uint
}

func NewStore(db *sql.DB, maxRetries int) *SQLStore {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &SQLStore{
		DB:       db,
		Queries:  New(db),
		maxTries: uint(maxRetries) + 1,
	}
}

// ExecTx runs fq in a read committed transaction. Serialization failures and
// deadlocks replay the whole closure; any other error is returned untouched.
func (s *SQLStore) ExecTx(ctx context.Context, fq func(q Querier) error) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := s.execTx(ctx, fq)
		if err != nil && !IsRetryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}, backoff.WithBackOff(txBackOff()), backoff.WithMaxTries(s.maxTries))
	return err
}

func (s *SQLStore) execTx(ctx context.Context, fq func(q Querier) error) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}

	q := New(tx)
	err = fq(q)
	if err != nil {
		if txErr := tx.Rollback(); txErr != nil {
			return fmt.Errorf("encountered rollback error: %v: %w", txErr, err)
		}
		return err
	}

	return tx.Commit()
}

func txBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	return b
}
