package catalog

import "errors"

// Sentinel errors returned by catalog operations. Callers match them with
// errors.Is; the wrapped message carries the entity and id involved.
var (
	// ErrNotFound indicates a lookup by id, name, or ISBN matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the operation would violate a consistency
	// guard: a duplicate book-author link, deleting a book with borrowed
	// copies, or deleting a student with active loans.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable indicates the requested copy is not on the shelf.
	ErrUnavailable = errors.New("not available")

	// ErrAlreadyReturned indicates the loan is already in its terminal
	// state; the return request is reported and nothing is mutated.
	ErrAlreadyReturned = errors.New("already returned")
)
