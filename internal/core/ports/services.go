package ports

import (
	"context"
	"io"
	"time"

	"github.com/bandsite/cms-api/internal/core/domain"
)

// TokenIssuer is the issuing half of the credential codec.
type TokenIssuer interface {
	Issue(claim domain.Claim) (string, time.Time, error)
}

// TokenVerifier is the verifying half of the credential codec.
type TokenVerifier interface {
	Verify(raw string) (domain.Claim, error)
}

// Session is returned by register and login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Me(ctx context.Context, claim domain.Claim) (*domain.User, error)
	ChangePassword(ctx context.Context, claim domain.Claim, current, next string) error
}

// UserService holds account administration. Actor is the authenticated
// caller; the self guards compare it against the target id.
type UserService interface {
	List(ctx context.Context, page Page) (*List[domain.User], error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, actor domain.Claim, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Claim, id string) error
}

type NewsInput struct {
	Title         string
	Content       string
	Excerpt       string
	ImageURL      string
	ImagePublicID string
	Published     bool
}

type NewsUpdate struct {
	Title         *string
	Content       *string
	Excerpt       *string
	ImageURL      *string
	ImagePublicID *string
	Published     *bool
}

type NewsService interface {
	Create(ctx context.Context, author domain.Claim, in NewsInput) (*domain.NewsPost, error)
	Update(ctx context.Context, id string, in NewsUpdate) (*domain.NewsPost, error)
	Delete(ctx context.Context, id string) error
	// Get resolves idOrSlug; drafts are only visible with includeDrafts.
	Get(ctx context.Context, idOrSlug string, includeDrafts bool) (*domain.NewsPost, error)
	List(ctx context.Context, publishedOnly bool, page Page) (*List[domain.NewsPost], error)
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
	List(ctx context.Context, page Page) (*List[domain.ContactMessage], error)
	MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type GuestbookService interface {
	Sign(ctx context.Context, author domain.Claim, name, message string) (*domain.GuestbookEntry, error)
	List(ctx context.Context, approved bool, page Page) (*List[domain.GuestbookEntry], error)
	Approve(ctx context.Context, id string) (*domain.GuestbookEntry, error)
	Delete(ctx context.Context, id string) error
}

// MediaHost stores files with a third-party media provider.
type MediaHost interface {
	Upload(ctx context.Context, r io.Reader, filename string) (*domain.MediaAsset, error)
	Delete(ctx context.Context, publicID string) error
}

// MediaCleaner removes remote assets off the request path.
type MediaCleaner interface {
	Enqueue(publicID string)
}

// UploadInput is a file received from a client.
type UploadInput struct {
	Filename string
	Size     int64
	Body     io.ReadSeeker
}

type UploadService interface {
	Upload(ctx context.Context, in UploadInput) (*domain.MediaAsset, error)
}

// CatalogService is the CRUD surface shared by the band content
// collections. Deleting a document releases its hosted image.
type CatalogService[T any, P any] interface {
	Create(ctx context.Context, doc *T) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) error
}

type MemberService interface {
	CatalogService[domain.Member, domain.MemberPatch]
	List(ctx context.Context, page Page) (*List[domain.Member], error)
}

type GigService interface {
	CatalogService[domain.Gig, domain.GigPatch]
	List(ctx context.Context, window domain.GigWindow, page Page) (*List[domain.Gig], error)
}

type SongService interface {
	CatalogService[domain.Song, domain.SongPatch]
	List(ctx context.Context, page Page) (*List[domain.Song], error)
}

type GalleryService interface {
	CatalogService[domain.GalleryImage, domain.GalleryImagePatch]
	List(ctx context.Context, page Page) (*List[domain.GalleryImage], error)
}
