package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrContactNotFound indicates that the contact does not exist for the user
	ErrContactNotFound = errors.New("contact not found")

	// ErrGroupNotFound indicates that the contact group does not exist for the user
	ErrGroupNotFound = errors.New("contact group not found")

	// ErrGroupNameTaken indicates that the user already has a group with this name
	ErrGroupNameTaken = errors.New("contact group name already taken")

	// ErrSystemGroup indicates an attempt to modify or delete a system group
	ErrSystemGroup = errors.New("system contact groups cannot be modified")

	// ErrETagMismatch indicates that the update was based on a stale etag
	ErrETagMismatch = errors.New("etag does not match current version")
)
