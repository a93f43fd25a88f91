// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLeadNotFound signals missing lead.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken signals username conflict on registration.
	ErrUsernameTaken = errors.New("username taken")
	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden signals an authenticated identity without the required role.
	ErrForbidden = errors.New("forbidden")
)
