package ports

import (
	"context"
	"time"

	"github.com/bandsite/cms-api/internal/core/domain"
)

// Store is the create/read/update/delete surface shared by the content
// collections. Update applies only the non-nil fields of patch.
type Store[T any, P any] interface {
	Create(ctx context.Context, doc *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) (*T, error)
}

// UserRepository persists accounts. Create fails with a duplicate-key error
// from the store when the email is taken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page Page) (*List[domain.User], error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type MemberRepository interface {
	Store[domain.Member, domain.MemberPatch]
	List(ctx context.Context, page Page) (*List[domain.Member], error)
}

type GigRepository interface {
	Store[domain.Gig, domain.GigPatch]
	// List returns gigs relative to now: upcoming ascending, past descending.
	List(ctx context.Context, window domain.GigWindow, now time.Time, page Page) (*List[domain.Gig], error)
}

type SongRepository interface {
	Store[domain.Song, domain.SongPatch]
	List(ctx context.Context, page Page) (*List[domain.Song], error)
}

type GalleryRepository interface {
	Store[domain.GalleryImage, domain.GalleryImagePatch]
	List(ctx context.Context, page Page) (*List[domain.GalleryImage], error)
}

type NewsRepository interface {
	Store[domain.NewsPost, domain.NewsPostPatch]
	FindBySlug(ctx context.Context, slug string) (*domain.NewsPost, error)
	List(ctx context.Context, publishedOnly bool, page Page) (*List[domain.NewsPost], error)
}

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context, page Page) (*List[domain.ContactMessage], error)
	MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) (*domain.ContactMessage, error)
}

type GuestbookRepository interface {
	Create(ctx context.Context, entry *domain.GuestbookEntry) error
	List(ctx context.Context, approved bool, page Page) (*List[domain.GuestbookEntry], error)
	Approve(ctx context.Context, id string) (*domain.GuestbookEntry, error)
	Delete(ctx context.Context, id string) (*domain.GuestbookEntry, error)
}
