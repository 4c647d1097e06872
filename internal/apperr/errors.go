// Package apperr defines sentinel errors shared across sitekit layers.
package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUpstream      = errors.New("upstream failure")
)
