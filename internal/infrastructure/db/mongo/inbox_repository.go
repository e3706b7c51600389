package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

const (
	collectionContact   = "contact_messages"
	collectionGuestbook = "guestbook"
)

type ContactRepository struct {
	messages collection[domain.ContactMessage]
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{messages: newCollection[domain.ContactMessage](db, collectionContact, domain.NotFound("Nachricht nicht gefunden"))}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	id, err := r.messages.insert(ctx, msg)
	if err != nil {
		return err
	}
	msg.ID = id
	return nil
}

// List puts unread messages first, newest first within each group.
func (r *ContactRepository) List(ctx context.Context, page ports.Page) (*ports.List[domain.ContactMessage], error) {
	return r.messages.page(ctx, bson.M{}, bson.D{{Key: "read", Value: 1}, {Key: "created_at", Value: -1}}, page)
}

func (r *ContactRepository) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return r.messages.updateByID(ctx, id, bson.D{{Key: "read", Value: true}})
}

func (r *ContactRepository) Delete(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return r.messages.deleteByID(ctx, id)
}

type GuestbookRepository struct {
	entries collection[domain.GuestbookEntry]
}

func NewGuestbookRepository(db *mongo.Database) *GuestbookRepository {
	return &GuestbookRepository{entries: newCollection[domain.GuestbookEntry](db, collectionGuestbook, domain.NotFound("Gästebucheintrag nicht gefunden"))}
}

func (r *GuestbookRepository) Create(ctx context.Context, entry *domain.GuestbookEntry) error {
	id, err := r.entries.insert(ctx, entry)
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

func (r *GuestbookRepository) List(ctx context.Context, approved bool, page ports.Page) (*ports.List[domain.GuestbookEntry], error) {
	return r.entries.page(ctx, bson.M{"approved": approved}, bson.D{{Key: "created_at", Value: -1}}, page)
}

func (r *GuestbookRepository) Approve(ctx context.Context, id string) (*domain.GuestbookEntry, error) {
	return r.entries.updateByID(ctx, id, bson.D{{Key: "approved", Value: true}})
}

func (r *GuestbookRepository) Delete(ctx context.Context, id string) (*domain.GuestbookEntry, error) {
	return r.entries.deleteByID(ctx, id)
}
