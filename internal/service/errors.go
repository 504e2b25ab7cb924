package service

import "errors"

var (
	// ErrNotFound is returned when a meal or image does not exist or was deleted.
	ErrNotFound = errors.New("not found")
	// ErrInvalidImage wraps every image validation failure.
	ErrInvalidImage = errors.New("invalid image")
	// ErrInvalidVote is returned when a meal is voted against itself.
	ErrInvalidVote = errors.New("a meal cannot be ranked against itself")
)
