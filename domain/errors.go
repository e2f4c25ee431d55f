package domain

import (
	"Groeneweide-Backend/pkg/patch"
	"errors"
)

// Rejection kinds. Every error returned by a service is, or wraps, one of
// these; the HTTP boundary and the metrics labels key off them.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidReference = errors.New("invalid reference")
	ErrDuplicatePair    = errors.New("duplicate pair")
	ErrNoFieldsProvided = patch.ErrNoFieldsProvided
	ErrNoRowsChanged    = errors.New("no rows changed")
	ErrNoDependents     = errors.New("no dependents")
	ErrHasDependents    = errors.New("has dependents")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidInput     = errors.New("invalid input")
)

const (
	KindNotFound         = "not_found"
	KindAlreadyExists    = "already_exists"
	KindInvalidReference = "invalid_reference"
	KindDuplicatePair    = "duplicate_pair"
	KindNoFieldsProvided = "no_fields_provided"
	KindNoRowsChanged    = "no_rows_changed"
	KindNoDependents     = "no_dependents"
	KindHasDependents    = "has_dependents"
	KindStoreUnavailable = "store_unavailable"
	KindInvalidInput     = "invalid_input"
	KindUnknown          = "unknown"
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrNotFound, KindNotFound},
	{ErrAlreadyExists, KindAlreadyExists},
	{ErrInvalidReference, KindInvalidReference},
	{ErrDuplicatePair, KindDuplicatePair},
	{ErrNoFieldsProvided, KindNoFieldsProvided},
	{ErrNoRowsChanged, KindNoRowsChanged},
	{ErrNoDependents, KindNoDependents},
	{ErrHasDependents, KindHasDependents},
	{ErrStoreUnavailable, KindStoreUnavailable},
	{ErrInvalidInput, KindInvalidInput},
}

// RuleError is a concrete rejection with a client-facing message. It unwraps
// to its kind so callers can match on either.
type RuleError struct {
	kind    error
	message string
}

func NewRuleError(kind error, message string) *RuleError {
	return &RuleError{kind: kind, message: message}
}

func (e *RuleError) Error() string {
	return e.message
}

func (e *RuleError) Unwrap() error {
	return e.kind
}

func (e *RuleError) Kind() error {
	return e.kind
}

// KindOf names the rejection kind of err, or KindUnknown.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return KindUnknown
}
