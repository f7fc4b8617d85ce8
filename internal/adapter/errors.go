package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("malformed replication request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("collection not found")
	ErrConflict            = errors.New("replication conflict")
	ErrInternalServerError = errors.New("remote internal error")
	ErrBadGateway          = errors.New("remote unreachable")
)
