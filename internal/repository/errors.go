// Package repository implements data access against the rental store.
// This file defines the sentinel errors shared across repositories and the
// booking service.  Higher layers compare against them with errors.Is to
// decide how a failure surfaces: handlers map them to HTTP statuses, the
// booking service uses them to decide rollback reasons.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Domain validation failures raised inside the booking transaction.
var (
	// ErrClientNotFound is returned when no client matches the given NIF.
	ErrClientNotFound = errors.New("client not found")

	// ErrVehicleNotFound is returned when no vehicle matches the given plate.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleUnavailable is returned when the requested day range
	// conflicts with an existing reservation for the vehicle.
	ErrVehicleUnavailable = errors.New("vehicle not available for the requested dates")

	// ErrConstraintViolation is returned when the store rejects a write
	// because of a referential or integrity constraint.  It is classified
	// from the raw driver error and surfaced to the caller rather than
	// swallowed.
	ErrConstraintViolation = errors.New("storage constraint violated")
)

// MySQL server error numbers the classifier cares about.
const (
	mysqlErrDupEntry      = 1062 // ER_DUP_ENTRY
	mysqlErrNoReferenced  = 1452 // ER_NO_REFERENCED_ROW_2
	mysqlErrRowReferenced = 1451 // ER_ROW_IS_REFERENCED_2
)

// IsDuplicateEntry reports whether err is a MySQL duplicate-key violation.
func IsDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDupEntry
}

// ClassifyWriteError translates a raw storage error from a write statement
// into the domain taxonomy.  Integrity violations (foreign keys, duplicate
// keys) become ErrConstraintViolation wrapping the original error so the
// driver detail stays available; anything else is returned unchanged and
// propagates as an unclassified storage failure.
func ClassifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlErrDupEntry, mysqlErrNoReferenced, mysqlErrRowReferenced:
			return errors.Join(ErrConstraintViolation, err)
		}
	}
	return err
}
