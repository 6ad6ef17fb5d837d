package store

import "errors"

var (
	// ErrIO wraps every failure to read, decode or write persisted lists.
	ErrIO = errors.New("list store i/o failure")
	// ErrUnknownList is returned by Lookup for a name that is not stored.
	ErrUnknownList = errors.New("unknown list")
)
