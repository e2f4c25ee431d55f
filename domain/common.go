package domain

import (
	"errors"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var (
	MessageSuccessPing          = "pong"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedValidation     = "request failed validation"
	MessageFailedInvalidID      = "invalid ID given"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedGetToken       = "failed to get token"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidID     = errors.New("ID must be a positive integer")
)
