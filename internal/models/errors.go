package models

import "errors"

// Application-wide standard errors
var (
	// ErrNotFound - referenced save, node, choice or character does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidChoice - the choice exists but does not belong to the save's
	// current node. Deliberately distinct from ErrNotFound so callers can tell
	// "no such choice" from "not your choice".
	ErrInvalidChoice = errors.New("choice does not belong to the current node")

	// ErrTransactionFailed - the store rejected begin or commit; the unit of
	// work was rolled back.
	ErrTransactionFailed = errors.New("transaction failed")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
)
