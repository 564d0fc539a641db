package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

type LoginRequest struct {
	Email    string
	Password string
}

// AuthResult carries a freshly issued bearer token alongside the account.
type AuthResult struct {
	Token string
	User  *User
}

// Service manages account registration, login and profile operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	// Authenticate validates a bearer token and loads the account behind it.
	// A well-formed token whose user no longer exists fails the same way an
	// invalid one does.
	Authenticate(ctx context.Context, rawToken string) (*User, error)

	GetUser(ctx context.Context, id snowflake.ID) (*User, error)
	UpdateEmail(ctx context.Context, userID snowflake.ID, newEmail, password string) (*User, error)

	AddFavorite(ctx context.Context, userID snowflake.ID, fav Favorite) error
	ListFavorites(ctx context.Context, userID snowflake.ID) ([]Favorite, error)
	RemoveFavorite(ctx context.Context, userID snowflake.ID, fav Favorite) error
}
