package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registering a login that is taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the requested login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrListNotFound is returned when a list does not exist or belongs to
	// another account.
	ErrListNotFound = errors.New("task list was not found")

	// ErrTaskNotFound is returned when a task does not exist or belongs to
	// another account.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrInvalidReference is returned when a parent or previous reference
	// points outside the task's list.
	ErrInvalidReference = errors.New("task reference outside of list")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client does not match the stored one.
	ErrVersionConflict = errors.New("task version conflict occurred")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)

// Errors of the client store seen by the sync run.
var (
	// ErrQueryFailed wraps every read failure of the local store.
	ErrQueryFailed = errors.New("local store query failed")

	// ErrCommitFailed wraps every failure of the write-back transaction.
	// Nothing was written when it is returned.
	ErrCommitFailed = errors.New("local store commit failed")
)
