package service

import "errors"

var (
	// ErrPushConflict is returned when a pushed document's revision lags the
	// revision already stored, meaning the pushing replica has not yet seen
	// the latest state and must pull before pushing again.
	ErrPushConflict = errors.New("push rejected: stale revision")

	// ErrNoDocumentsProvided is returned when a push request carries an
	// empty document list.
	ErrNoDocumentsProvided = errors.New("no documents provided")

	// ErrInvalidPullCheckpoint is returned when a pull request carries a
	// checkpoint snapshot that cannot be decoded.
	ErrInvalidPullCheckpoint = errors.New("invalid pull checkpoint")

	// ErrUnknownCollection is returned when a request addresses a collection
	// this endpoint does not serve.
	ErrUnknownCollection = errors.New("unknown collection")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
