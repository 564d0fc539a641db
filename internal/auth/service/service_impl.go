package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/crowlands/grimoire/internal/auth/domain"
	"github.com/crowlands/grimoire/internal/auth/password"
	"github.com/crowlands/grimoire/internal/auth/token"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const minPasswordLength = 8

// freeQuotaWindow is the bookkeeping window stamped on new accounts for the
// generation counter. The counter itself is not yet auto-reset; the stamp
// records when the window would roll over.
const freeQuotaWindow = 30 * 24 * time.Hour

type Service struct {
	log    *zap.Logger
	repo   domain.Repository
	tokens *token.Issuer
	genID  *snowflake.Node
}

func New(log *zap.Logger, repo domain.Repository, tokens *token.Issuer, genID *snowflake.Node) domain.Service {
	return &Service{
		log:    log.Named("auth.service"),
		repo:   repo,
		tokens: tokens,
		genID:  genID,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:                   s.genID.Generate(),
		Email:                email,
		Name:                 strings.TrimSpace(req.Name),
		PasswordHash:         hashed,
		Favorites:            datatypes.JSONSlice[domain.Favorite]{},
		SubscriptionTier:     domain.TierFree,
		SubscriptionStatus:   domain.SubscriptionActive,
		SpellGenerationCount: 0,
		SpellGenerationReset: now.Add(freeQuotaWindow),
		LastLoginAt:          &now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	raw, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return &domain.AuthResult{Token: raw, User: user}, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateFields(ctx, user.ID, map[string]any{"last_login_at": now}); err != nil {
		s.log.Warn("stamping last login failed", zap.Error(err))
	}
	user.LastLoginAt = &now

	raw, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{Token: raw, User: user}, nil
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	userID, err := s.tokens.Validate(rawToken)
	if err != nil {
		// expired vs malformed matters in logs, not to the client
		s.log.Debug("token rejected", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug("token user no longer exists", zap.String("user_id", userID.String()))
			return nil, token.ErrInvalid
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id snowflake.ID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateEmail(ctx context.Context, userID snowflake.ID, newEmail, pass string) (*domain.User, error) {
	email, err := normalizeEmail(newEmail)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !password.Verify(pass, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing.ID != userID {
		return nil, domain.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if err := s.repo.UpdateFields(ctx, userID, map[string]any{"email": email}); err != nil {
		return nil, err
	}
	user.Email = email
	return user, nil
}

func (s *Service) AddFavorite(ctx context.Context, userID snowflake.ID, fav domain.Favorite) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	for _, existing := range user.Favorites {
		if existing == fav {
			return nil
		}
	}
	updated := append(user.Favorites, fav)
	return s.repo.UpdateFields(ctx, userID, map[string]any{"favorites": datatypes.JSONSlice[domain.Favorite](updated)})
}

func (s *Service) ListFavorites(ctx context.Context, userID snowflake.ID) ([]domain.Favorite, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, userID snowflake.ID, fav domain.Favorite) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	kept := user.Favorites[:0:0]
	for _, existing := range user.Favorites {
		if existing != fav {
			kept = append(kept, existing)
		}
	}
	return s.repo.UpdateFields(ctx, userID, map[string]any{"favorites": datatypes.JSONSlice[domain.Favorite](kept)})
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(addr.Address)), nil
}
