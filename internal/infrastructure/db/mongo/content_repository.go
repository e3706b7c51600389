package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

const (
	collectionMembers = "members"
	collectionGigs    = "gigs"
	collectionSongs   = "songs"
	collectionGallery = "gallery"
	collectionNews    = "news"
)

type MemberRepository struct {
	store[domain.Member, domain.MemberPatch]
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{store[domain.Member, domain.MemberPatch]{
		collection: newCollection[domain.Member](db, collectionMembers, domain.NotFound("Bandmitglied nicht gefunden")),
		setID:      func(m *domain.Member, id primitive.ObjectID) { m.ID = id },
	}}
}

func (r *MemberRepository) List(ctx context.Context, page ports.Page) (*ports.List[domain.Member], error) {
	return r.page(ctx, bson.M{}, bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}, page)
}

type GigRepository struct {
	store[domain.Gig, domain.GigPatch]
}

func NewGigRepository(db *mongo.Database) *GigRepository {
	return &GigRepository{store[domain.Gig, domain.GigPatch]{
		collection: newCollection[domain.Gig](db, collectionGigs, domain.NotFound("Konzert nicht gefunden")),
		setID:      func(g *domain.Gig, id primitive.ObjectID) { g.ID = id },
	}}
}

func (r *GigRepository) List(ctx context.Context, window domain.GigWindow, now time.Time, page ports.Page) (*ports.List[domain.Gig], error) {
	filter := bson.M{}
	sort := bson.D{{Key: "date", Value: 1}}
	switch window {
	case domain.GigsUpcoming:
		filter["date"] = bson.M{"$gte": now}
	case domain.GigsPast:
		filter["date"] = bson.M{"$lt": now}
		sort = bson.D{{Key: "date", Value: -1}}
	}
	return r.page(ctx, filter, sort, page)
}

type SongRepository struct {
	store[domain.Song, domain.SongPatch]
}

func NewSongRepository(db *mongo.Database) *SongRepository {
	return &SongRepository{store[domain.Song, domain.SongPatch]{
		collection: newCollection[domain.Song](db, collectionSongs, domain.NotFound("Song nicht gefunden")),
		setID:      func(s *domain.Song, id primitive.ObjectID) { s.ID = id },
	}}
}

func (r *SongRepository) List(ctx context.Context, page ports.Page) (*ports.List[domain.Song], error) {
	return r.page(ctx, bson.M{}, bson.D{{Key: "order", Value: 1}, {Key: "title", Value: 1}}, page)
}

type GalleryRepository struct {
	store[domain.GalleryImage, domain.GalleryImagePatch]
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{store[domain.GalleryImage, domain.GalleryImagePatch]{
		collection: newCollection[domain.GalleryImage](db, collectionGallery, domain.NotFound("Bild nicht gefunden")),
		setID:      func(g *domain.GalleryImage, id primitive.ObjectID) { g.ID = id },
	}}
}

func (r *GalleryRepository) List(ctx context.Context, page ports.Page) (*ports.List[domain.GalleryImage], error) {
	return r.page(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}}, page)
}

type NewsRepository struct {
	store[domain.NewsPost, domain.NewsPostPatch]
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{store[domain.NewsPost, domain.NewsPostPatch]{
		collection: newCollection[domain.NewsPost](db, collectionNews, domain.NotFound("Beitrag nicht gefunden")),
		setID:      func(n *domain.NewsPost, id primitive.ObjectID) { n.ID = id },
	}}
}

func (r *NewsRepository) FindBySlug(ctx context.Context, slug string) (*domain.NewsPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *NewsRepository) List(ctx context.Context, publishedOnly bool, page ports.Page) (*ports.List[domain.NewsPost], error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	return r.page(ctx, filter, bson.D{{Key: "published_at", Value: -1}, {Key: "created_at", Value: -1}}, page)
}
