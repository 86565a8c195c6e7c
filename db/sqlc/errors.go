package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const (
	DuplicateEntry       pq.ErrorCode = "23505"
	EntryTooLong         pq.ErrorCode = "22001"
	CheckViolation       pq.ErrorCode = "23514"
	SerializationFailure pq.ErrorCode = "40001"
	DeadlockDetected     pq.ErrorCode = "40P01"
)

// ErrorCode returns the postgres error code carried by err, or "" when err
// did not come from the server.
func ErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func IsDuplicate(err error) bool {
	return ErrorCode(err) == DuplicateEntry
}

func IsCheckViolation(err error) bool {
	return ErrorCode(err) == CheckViolation
}

// IsRetryable reports whether the transaction lost a serialization race and
// can be replayed from the start.
func IsRetryable(err error) bool {
	code := ErrorCode(err)
	return code == SerializationFailure || code == DeadlockDetected
}
