package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// AuthService implements registration, login and self-service account calls.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
	cost   int
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log, cost: bcrypt.DefaultCost}
}

// Register creates an account with the user role and logs it in. A taken
// email surfaces as the store's duplicate-key error.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID.Hex()).Msg("user registered")
	return s.session(user)
}

// Login checks the password. Unknown emails and wrong passwords fail alike.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.session(user)
}

func (s *AuthService) Me(ctx context.Context, claim domain.Claim) (*domain.User, error) {
	return s.repo.FindByID(ctx, claim.Subject)
}

func (s *AuthService) ChangePassword(ctx context.Context, claim domain.Claim, current, next string) error {
	user, err := s.repo.FindByID(ctx, claim.Subject)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.BadRequest("Aktuelles Passwort ist falsch")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, claim.Subject, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("user_id", claim.Subject).Msg("password changed")
	return nil
}

func (s *AuthService) session(user *domain.User) (*ports.Session, error) {
	tok, exp, err := s.tokens.Issue(domain.Claim{
		Subject: user.ID.Hex(),
		Email:   user.Email,
		Role:    user.Role,
	})
	if err != nil {
		return nil, err
	}
	return &ports.Session{Token: tok, ExpiresAt: exp, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
