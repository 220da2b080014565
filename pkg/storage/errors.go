package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate value")
	// ErrReferenced is returned when a delete or write violates a foreign key,
	// either because the row is still referenced or because it references a
	// row that does not exist.
	ErrReferenced = errors.New("foreign key violation")
	// ErrUnknownReference is returned for a reference kind the backend does
	// not know how to store.
	ErrUnknownReference = errors.New("unknown reference kind")
)
