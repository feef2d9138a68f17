package jsonresource

import (
	"errors"

	"github.com/oarkflow/jsonresource/jsonmap"
)

var (
	ErrInvalidJSON  = jsonmap.ErrInvalid
	ErrScalarRoot   = jsonmap.ErrNotContainer
	ErrInvalidRoot  = errors.New("root must be an object or array")
	ErrRootExists   = errors.New("root already set")
	ErrNoDocument   = errors.New("no document loaded")
	ErrNotFound     = errors.New("node not found")
	ErrTypeMismatch = errors.New("type mismatch")
)
