package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// ContactService stores contact form messages for the band's inbox.
type ContactService struct {
	repo ports.ContactRepository
	text *TextProcessor
	log  zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, text *TextProcessor, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, text: text, log: log}
}

func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    s.text.Plain(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Subject: s.text.Plain(in.Subject),
		Message: s.text.Plain(in.Message),
	}
	if msg.Name == "" || msg.Message == "" {
		return nil, domain.ValidationFailed(emptyAfterCleanup(msg.Name, msg.Message))
	}

	now := time.Now().UTC()
	msg.CreatedAt, msg.UpdatedAt = now, now
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info().Str("message_id", msg.ID.Hex()).Msg("contact message received")
	return msg, nil
}

func (s *ContactService) List(ctx context.Context, page ports.Page) (*ports.List[domain.ContactMessage], error) {
	return s.repo.List(ctx, page)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}

// emptyAfterCleanup reports the fields that held nothing but markup.
func emptyAfterCleanup(name, message string) []domain.FieldIssue {
	var issues []domain.FieldIssue
	if name == "" {
		issues = append(issues, domain.FieldIssue{Field: "name", Message: "name darf nicht leer sein"})
	}
	if message == "" {
		issues = append(issues, domain.FieldIssue{Field: "message", Message: "message darf nicht leer sein"})
	}
	return issues
}
