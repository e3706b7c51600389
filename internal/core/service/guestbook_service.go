package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// GuestbookService stores entries unapproved; moderators publish them.
type GuestbookService struct {
	repo ports.GuestbookRepository
	text *TextProcessor
	log  zerolog.Logger
}

func NewGuestbookService(repo ports.GuestbookRepository, text *TextProcessor, log zerolog.Logger) *GuestbookService {
	return &GuestbookService{repo: repo, text: text, log: log}
}

// Sign adds an entry for author. Without a name the author's email is shown.
func (s *GuestbookService) Sign(ctx context.Context, author domain.Claim, name, message string) (*domain.GuestbookEntry, error) {
	entry := &domain.GuestbookEntry{
		Name:    s.text.Plain(name),
		Message: s.text.Plain(message),
		UserID:  author.Subject,
	}
	if entry.Name == "" {
		entry.Name = author.Email
	}
	if entry.Message == "" {
		return nil, domain.ValidationFailed(emptyAfterCleanup(entry.Name, entry.Message))
	}

	now := time.Now().UTC()
	entry.CreatedAt, entry.UpdatedAt = now, now
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info().Str("entry_id", entry.ID.Hex()).Str("user_id", author.Subject).Msg("guestbook signed")
	return entry, nil
}

func (s *GuestbookService) List(ctx context.Context, approved bool, page ports.Page) (*ports.List[domain.GuestbookEntry], error) {
	return s.repo.List(ctx, approved, page)
}

func (s *GuestbookService) Approve(ctx context.Context, id string) (*domain.GuestbookEntry, error) {
	return s.repo.Approve(ctx, id)
}

func (s *GuestbookService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
