package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrItemNotFound indicates that address book item was not found
	ErrItemNotFound = errors.New("address book item not found")

	// ErrDuplicateResource indicates that another item is already bound to the resource name
	ErrDuplicateResource = errors.New("resource name already bound to another item")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
