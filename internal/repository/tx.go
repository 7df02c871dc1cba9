package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Read-modify-write transactions run at repeatable read and retry a bounded
// number of times when Postgres aborts them with a serialization failure
// (40001) or a deadlock (40P01).
const maxTxAttempts = 3

var txOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead}

func withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if !retryableTxError(err) || attempt == maxTxAttempts {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}
}

func retryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01")
}

// txError keeps serialization failures and deadlocks unwrapped so withRetry
// can see the SQLSTATE; everything else gets the usual message prefix.
func txError(msg string, err error) error {
	if retryableTxError(err) {
		return err
	}
	return errors.New(msg + ": " + err.Error())
}
