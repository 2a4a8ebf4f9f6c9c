package types

import "errors"

// Generation errors.
var (
	ErrUnknownType       = errors.New("unknown schema type")
	ErrInvalidJSON       = errors.New("invalid JSON format")
	ErrInvalidCustomJSON = errors.New("invalid JSON format in custom properties")
	ErrMalformedObject   = errors.New("object property is not valid JSON")
	ErrReservedKey       = errors.New("custom property overwrites a reserved key")
	ErrInvalidRow        = errors.New("row is not an object")
	ErrInvalidAssignment = errors.New("assignment must have the form key=value")
	ErrUnknownFormat     = errors.New("unknown output format")
)

// Store errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrNotFound        = errors.New("record not found")
)

// Config validation errors.
var (
	ErrDefaultTypeEmpty = errors.New("default_type must not be empty")
	ErrDataDirEmpty     = errors.New("data_dir must not be empty")
)
