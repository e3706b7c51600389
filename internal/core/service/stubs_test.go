package service

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository keyed by hex id.
type stubUserRepo struct {
	byID      map[string]*domain.User
	createErr error
}

func newStubUserRepo() *stubUserRepo { return &stubUserRepo{byID: map[string]*domain.User{}} }

func (f *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = primitive.NewObjectID()
	cp := *u
	f.byID[u.ID.Hex()] = &cp
	return nil
}

func (f *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *stubUserRepo) List(context.Context, ports.Page) (*ports.List[domain.User], error) {
	return nil, nil
}

func (f *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (f *stubUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.byID, id)
	return nil
}

// stubIssuer signs nothing; the token is the subject.
type stubIssuer struct{}

func (stubIssuer) Issue(c domain.Claim) (string, time.Time, error) {
	return "token-" + c.Subject, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

// stubCleaner records enqueued public ids.
type stubCleaner struct {
	mu  sync.Mutex
	ids []string
}

func (f *stubCleaner) Enqueue(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, id)
}

// stubStore is an in-memory ports.Store. apply merges a patch into a doc.
type stubStore[T any, P any] struct {
	docs  map[string]*T
	setID func(*T, primitive.ObjectID)
	apply func(*T, P)
}

func (f *stubStore[T, P]) Create(_ context.Context, doc *T) error {
	id := primitive.NewObjectID()
	f.setID(doc, id)
	cp := *doc
	f.docs[id.Hex()] = &cp
	return nil
}

func (f *stubStore[T, P]) FindByID(_ context.Context, id string) (*T, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.NotFound("nicht gefunden")
	}
	cp := *doc
	return &cp, nil
}

func (f *stubStore[T, P]) Update(_ context.Context, id string, patch P) (*T, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.NotFound("nicht gefunden")
	}
	f.apply(doc, patch)
	cp := *doc
	return &cp, nil
}

func (f *stubStore[T, P]) Delete(_ context.Context, id string) (*T, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.NotFound("nicht gefunden")
	}
	delete(f.docs, id)
	return doc, nil
}

type stubMemberRepo struct {
	stubStore[domain.Member, domain.MemberPatch]
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{stubStore[domain.Member, domain.MemberPatch]{
		docs:  map[string]*domain.Member{},
		setID: func(m *domain.Member, id primitive.ObjectID) { m.ID = id },
		apply: func(m *domain.Member, p domain.MemberPatch) {
			if p.Name != nil {
				m.Name = *p.Name
			}
			if p.ImagePublicID != nil {
				m.ImagePublicID = *p.ImagePublicID
			}
		},
	}}
}

func (f *stubMemberRepo) List(context.Context, ports.Page) (*ports.List[domain.Member], error) {
	return nil, nil
}

type stubNewsRepo struct {
	stubStore[domain.NewsPost, domain.NewsPostPatch]
}

func newStubNewsRepo() *stubNewsRepo {
	return &stubNewsRepo{stubStore[domain.NewsPost, domain.NewsPostPatch]{
		docs:  map[string]*domain.NewsPost{},
		setID: func(p *domain.NewsPost, id primitive.ObjectID) { p.ID = id },
		apply: func(n *domain.NewsPost, p domain.NewsPostPatch) {
			if p.Title != nil {
				n.Title = *p.Title
			}
			if p.Slug != nil {
				n.Slug = *p.Slug
			}
			if p.Content != nil {
				n.Content = *p.Content
			}
			if p.ContentHTML != nil {
				n.ContentHTML = *p.ContentHTML
			}
			if p.Excerpt != nil {
				n.Excerpt = *p.Excerpt
			}
			if p.ImagePublicID != nil {
				n.ImagePublicID = *p.ImagePublicID
			}
			if p.Published != nil {
				n.Published = *p.Published
			}
			if p.PublishedAt != nil {
				n.PublishedAt = p.PublishedAt
			}
		},
	}}
}

func (f *stubNewsRepo) FindBySlug(_ context.Context, slug string) (*domain.NewsPost, error) {
	for _, p := range f.docs {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errNewsNotFound
}

func (f *stubNewsRepo) List(context.Context, bool, ports.Page) (*ports.List[domain.NewsPost], error) {
	return nil, nil
}

type stubGuestbookRepo struct {
	created []*domain.GuestbookEntry
}

func (f *stubGuestbookRepo) Create(_ context.Context, e *domain.GuestbookEntry) error {
	e.ID = primitive.NewObjectID()
	f.created = append(f.created, e)
	return nil
}

func (f *stubGuestbookRepo) List(context.Context, bool, ports.Page) (*ports.List[domain.GuestbookEntry], error) {
	return nil, nil
}

func (f *stubGuestbookRepo) Approve(context.Context, string) (*domain.GuestbookEntry, error) {
	return nil, nil
}

func (f *stubGuestbookRepo) Delete(context.Context, string) (*domain.GuestbookEntry, error) {
	return nil, nil
}

type stubContactRepo struct {
	created []*domain.ContactMessage
}

func (f *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) error {
	m.ID = primitive.NewObjectID()
	f.created = append(f.created, m)
	return nil
}

func (f *stubContactRepo) List(context.Context, ports.Page) (*ports.List[domain.ContactMessage], error) {
	return nil, nil
}

func (f *stubContactRepo) MarkRead(context.Context, string) (*domain.ContactMessage, error) {
	return nil, nil
}

func (f *stubContactRepo) Delete(context.Context, string) (*domain.ContactMessage, error) {
	return nil, nil
}
