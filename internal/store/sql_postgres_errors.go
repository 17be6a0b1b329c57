package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the journal whether a failed statement is worth
// one more attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not known to be transient.
	NonRetryable ErrorClassification = iota

	// Retryable marks connection loss, serialization failures, deadlocks
	// and a server that is still starting up.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	// the statement never reached the server
	if pgconn.SafeToRetry(err) {
		return Retryable
	}

	return NonRetryable
}

// ClassifyPgError maps a server error code: class 08 (connection), class 40
// (transaction rollback) and 57P03 (cannot connect now) are retryable,
// everything else is not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// pgCode returns the SQLSTATE of err, or "" for non-server errors.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
