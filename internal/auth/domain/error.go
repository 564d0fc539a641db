package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")

	// Registration validation failures. These are client mistakes on an
	// unauthenticated endpoint, not authentication failures.
	ErrInvalidEmail = errors.New("invalid email address")
	ErrWeakPassword = errors.New("password too short")
)
