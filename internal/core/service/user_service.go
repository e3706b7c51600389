package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// UserService is the admin view on accounts.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context, page ports.Page) (*ports.List[domain.User], error) {
	return s.repo.List(ctx, page)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateRole changes the role of id. Nobody may change their own role,
// whatever the requested value.
func (s *UserService) UpdateRole(ctx context.Context, actor domain.Claim, id string, role domain.Role) (*domain.User, error) {
	self, err := actor.IsSelf(id)
	if err != nil {
		return nil, err
	}
	if self {
		return nil, domain.ErrOwnRole
	}
	if !role.Valid() {
		return nil, domain.ValidationFailed([]domain.FieldIssue{{Field: "role", Message: "role muss admin, member oder user sein"}})
	}

	user, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("actor", actor.Subject).Str("user_id", id).Str("role", string(role)).Msg("role updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor domain.Claim, id string) error {
	self, err := actor.IsSelf(id)
	if err != nil {
		return err
	}
	if self {
		return domain.ErrOwnAccount
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("actor", actor.Subject).Str("user_id", id).Msg("user deleted")
	return nil
}
