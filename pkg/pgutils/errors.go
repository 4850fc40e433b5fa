// Package pgutils classifies PostgreSQL errors by SQLSTATE code.
package pgutils

import (
	"context"
	"errors"
	"net"
	"strings"
)

// PostgreSQL error codes.
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	// Class 22 — Data Exception
	CodeStringDataRightTruncation = "22001"

	// Class 23 — Integrity Constraint Violation
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"

	// Class 08 — Connection Exception
	CodeConnectionException = "08000"
	CodeConnectionFailure   = "08006"
	CodeCannotConnectNow    = "57P03"

	// Class 57 — Operator Intervention
	CodeQueryCanceled = "57014"
	CodeAdminShutdown = "57P01"
)

// IsUniqueViolation checks if the error is a unique constraint violation (23505).
func IsUniqueViolation(err error) bool {
	return containsErrorCode(err, CodeUniqueViolation)
}

// IsForeignKeyViolation checks if the error is a foreign key violation (23503).
func IsForeignKeyViolation(err error) bool {
	return containsErrorCode(err, CodeForeignKeyViolation)
}

// IsNotNullViolation checks if the error is a not-null constraint violation (23502).
func IsNotNullViolation(err error) bool {
	return containsErrorCode(err, CodeNotNullViolation)
}

// IsCheckViolation checks if the error is a check constraint violation (23514).
func IsCheckViolation(err error) bool {
	return containsErrorCode(err, CodeCheckViolation)
}

// IsDataException reports whether the error is a data exception the client
// caused, such as a value exceeding a varchar column width (22001).
func IsDataException(err error) bool {
	return containsErrorCode(err, CodeStringDataRightTruncation)
}

// IsUnavailable reports whether the error indicates the store cannot be
// reached right now: connection failures, pool/dial timeouts, canceled
// statements, or server shutdown. These map to HTTP 503.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	for _, code := range []string{
		CodeConnectionException,
		CodeConnectionFailure,
		CodeCannotConnectNow,
		CodeQueryCanceled,
		CodeAdminShutdown,
	} {
		if containsErrorCode(err, code) {
			return true
		}
	}
	return strings.Contains(err.Error(), "connection refused")
}

// containsErrorCode checks if the error message contains a PostgreSQL error code.
func containsErrorCode(err error, code string) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return len(errStr) > 0 && (strings.Contains(errStr, code) || strings.Contains(errStr, "SQLSTATE "+code))
}
