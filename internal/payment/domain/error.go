package domain

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
