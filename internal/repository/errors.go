package repository

import "errors"

var (
	// ErrNotAuthenticated means an operation was attempted without a user
	// context.
	ErrNotAuthenticated = errors.New("user not authenticated")

	// ErrNotFound means the id does not exist in the caller's collection.
	ErrNotFound = errors.New("item not found")
)
