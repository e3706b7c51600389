package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

var errNewsNotFound = domain.NotFound("Beitrag nicht gefunden")

// NewsService keeps slug and rendered HTML in sync with title and content.
type NewsService struct {
	repo    ports.NewsRepository
	text    *TextProcessor
	cleaner ports.MediaCleaner
	log     zerolog.Logger
	now     func() time.Time
}

func NewNewsService(repo ports.NewsRepository, text *TextProcessor, cleaner ports.MediaCleaner, log zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, text: text, cleaner: cleaner, log: log, now: time.Now}
}

func (s *NewsService) Create(ctx context.Context, author domain.Claim, in ports.NewsInput) (*domain.NewsPost, error) {
	html, err := s.text.Markdown(in.Content)
	if err != nil {
		return nil, fmt.Errorf("render news content: %w", err)
	}

	now := s.now().UTC()
	post := &domain.NewsPost{
		Title:         in.Title,
		Slug:          Slugify(in.Title),
		Content:       in.Content,
		ContentHTML:   html,
		Excerpt:       s.text.Plain(in.Excerpt),
		ImageURL:      in.ImageURL,
		ImagePublicID: in.ImagePublicID,
		Published:     in.Published,
		AuthorID:      author.Subject,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.Published {
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", post.Slug).Bool("published", post.Published).Msg("news post created")
	return post, nil
}

func (s *NewsService) Update(ctx context.Context, id string, in ports.NewsUpdate) (*domain.NewsPost, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := domain.NewsPostPatch{
		Title:         in.Title,
		Content:       in.Content,
		ImageURL:      in.ImageURL,
		ImagePublicID: in.ImagePublicID,
		Published:     in.Published,
	}
	if in.Title != nil {
		slug := Slugify(*in.Title)
		patch.Slug = &slug
	}
	if in.Content != nil {
		html, err := s.text.Markdown(*in.Content)
		if err != nil {
			return nil, fmt.Errorf("render news content: %w", err)
		}
		patch.ContentHTML = &html
	}
	if in.Excerpt != nil {
		excerpt := s.text.Plain(*in.Excerpt)
		patch.Excerpt = &excerpt
	}
	if in.Published != nil && *in.Published && current.PublishedAt == nil {
		now := s.now().UTC()
		patch.PublishedAt = &now
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if in.ImagePublicID != nil && current.ImagePublicID != "" && current.ImagePublicID != *in.ImagePublicID {
		s.cleaner.Enqueue(current.ImagePublicID)
	}
	return updated, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	post, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if post.ImagePublicID != "" {
		s.cleaner.Enqueue(post.ImagePublicID)
	}

	s.log.Info().Str("slug", post.Slug).Msg("news post deleted")
	return nil
}

func (s *NewsService) Get(ctx context.Context, idOrSlug string, includeDrafts bool) (*domain.NewsPost, error) {
	var (
		post *domain.NewsPost
		err  error
	)
	if primitive.IsValidObjectID(idOrSlug) {
		post, err = s.repo.FindByID(ctx, idOrSlug)
	} else {
		post, err = s.repo.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}

	if !post.Published && !includeDrafts {
		return nil, errNewsNotFound
	}
	return post, nil
}

func (s *NewsService) List(ctx context.Context, publishedOnly bool, page ports.Page) (*ports.List[domain.NewsPost], error) {
	return s.repo.List(ctx, publishedOnly, page)
}
