package domain

import "context"

// JoinRequest collects an email for early access.
type JoinRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// JoinResult reports whether the email was new.
type JoinResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AlreadyExists bool   `json:"already_exists,omitempty"`
}

type Service interface {
	Join(ctx context.Context, req JoinRequest) (*JoinResult, error)
}
