package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRevisionConflict is returned when a conditional write fails: the
	// expected revision supplied by the caller does not match the revision
	// currently stored, meaning another writer has modified the record since
	// the caller last read it.
	ErrRevisionConflict = errors.New("revision conflict occurred")

	// ErrDocumentNotFound is returned when a query targets a document
	// (identified by doc_id) that does not exist in the database.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrMetaNotFound is returned when a meta record lookup by key produces
	// an empty result set.
	ErrMetaNotFound = errors.New("meta record was not found")

	// ErrDocumentNotSaved is returned when an INSERT of one or more documents
	// completes without error but the number of affected rows is zero,
	// indicating that no data was actually persisted.
	ErrDocumentNotSaved = errors.New("document was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")
)
