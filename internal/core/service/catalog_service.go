package service

import (
	"context"
	"time"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// catalog implements ports.CatalogService over a store. The hooks reach
// into T and P, which generics cannot.
type catalog[T any, P any] struct {
	store   ports.Store[T, P]
	cleaner ports.MediaCleaner
	now     func() time.Time

	// stamp sets created_at and updated_at on a new document.
	stamp func(doc *T, now time.Time)
	// image returns the hosted image of doc, "" when it has none.
	image func(doc *T) string
	// replaces returns the image id a patch installs, nil when untouched.
	replaces func(patch P) *string
}

func (s *catalog[T, P]) Create(ctx context.Context, doc *T) (*T, error) {
	s.stamp(doc, s.now().UTC())
	if err := s.store.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *catalog[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return s.store.FindByID(ctx, id)
}

func (s *catalog[T, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	next := s.replaces(patch)
	if next == nil {
		return s.store.Update(ctx, id, patch)
	}

	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if old := s.image(current); old != "" && old != *next {
		s.cleaner.Enqueue(old)
	}
	return updated, nil
}

func (s *catalog[T, P]) Delete(ctx context.Context, id string) error {
	doc, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if img := s.image(doc); img != "" {
		s.cleaner.Enqueue(img)
	}
	return nil
}

func noImage[T any](*T) string { return "" }

func untouched[P any](P) *string { return nil }

type MemberService struct {
	catalog[domain.Member, domain.MemberPatch]
	repo ports.MemberRepository
}

func NewMemberService(repo ports.MemberRepository, cleaner ports.MediaCleaner) *MemberService {
	return &MemberService{
		catalog: catalog[domain.Member, domain.MemberPatch]{
			store:    repo,
			cleaner:  cleaner,
			now:      time.Now,
			stamp:    func(m *domain.Member, t time.Time) { m.CreatedAt, m.UpdatedAt = t, t },
			image:    func(m *domain.Member) string { return m.ImagePublicID },
			replaces: func(p domain.MemberPatch) *string { return p.ImagePublicID },
		},
		repo: repo,
	}
}

func (s *MemberService) List(ctx context.Context, page ports.Page) (*ports.List[domain.Member], error) {
	return s.repo.List(ctx, page)
}

type GigService struct {
	catalog[domain.Gig, domain.GigPatch]
	repo ports.GigRepository
}

func NewGigService(repo ports.GigRepository) *GigService {
	return &GigService{
		catalog: catalog[domain.Gig, domain.GigPatch]{
			store:    repo,
			now:      time.Now,
			stamp:    func(g *domain.Gig, t time.Time) { g.CreatedAt, g.UpdatedAt = t, t },
			image:    noImage[domain.Gig],
			replaces: untouched[domain.GigPatch],
		},
		repo: repo,
	}
}

// List selects gigs relative to the current time. An empty window means all.
func (s *GigService) List(ctx context.Context, window domain.GigWindow, page ports.Page) (*ports.List[domain.Gig], error) {
	if window == "" {
		window = domain.GigsAll
	}
	return s.repo.List(ctx, window, s.now().UTC(), page)
}

type SongService struct {
	catalog[domain.Song, domain.SongPatch]
	repo ports.SongRepository
}

func NewSongService(repo ports.SongRepository) *SongService {
	return &SongService{
		catalog: catalog[domain.Song, domain.SongPatch]{
			store:    repo,
			now:      time.Now,
			stamp:    func(s *domain.Song, t time.Time) { s.CreatedAt, s.UpdatedAt = t, t },
			image:    noImage[domain.Song],
			replaces: untouched[domain.SongPatch],
		},
		repo: repo,
	}
}

func (s *SongService) List(ctx context.Context, page ports.Page) (*ports.List[domain.Song], error) {
	return s.repo.List(ctx, page)
}

type GalleryService struct {
	catalog[domain.GalleryImage, domain.GalleryImagePatch]
	repo ports.GalleryRepository
}

func NewGalleryService(repo ports.GalleryRepository, cleaner ports.MediaCleaner) *GalleryService {
	return &GalleryService{
		catalog: catalog[domain.GalleryImage, domain.GalleryImagePatch]{
			store:    repo,
			cleaner:  cleaner,
			now:      time.Now,
			stamp:    func(g *domain.GalleryImage, t time.Time) { g.CreatedAt, g.UpdatedAt = t, t },
			image:    func(g *domain.GalleryImage) string { return g.PublicID },
			replaces: untouched[domain.GalleryImagePatch],
		},
		repo: repo,
	}
}

func (s *GalleryService) List(ctx context.Context, page ports.Page) (*ports.List[domain.GalleryImage], error) {
	return s.repo.List(ctx, page)
}
