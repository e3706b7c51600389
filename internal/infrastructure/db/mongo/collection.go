package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

var errEmptyUpdate = domain.BadRequest("Keine Felder zum Aktualisieren angegeben")

// collection is the typed CRUD helper behind every repository. IDs arrive as
// hex strings; a malformed one fails with primitive.ErrInvalidHex and is
// left for the error handler to translate, as are store errors.
type collection[T any] struct {
	col      *mongo.Collection
	notFound *domain.Error
}

func newCollection[T any](db *mongo.Database, name string, notFound *domain.Error) collection[T] {
	return collection[T]{col: db.Collection(name), notFound: notFound}
}

func (c collection[T]) insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", c.col.Name(), err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (c collection[T]) findOne(ctx context.Context, filter any) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := c.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("find in %s: %w", c.col.Name(), err)
	}
	return &doc, nil
}

// parseID converts a hex id. Every malformed input wraps
// primitive.ErrInvalidHex, including non-hex characters.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", primitive.ErrInvalidHex, id)
	}
	return oid, nil
}

func (c collection[T]) findByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return c.findOne(ctx, bson.M{"_id": oid})
}

// page returns the documents matching filter in sort order together with the
// total match count.
func (c collection[T]) page(ctx context.Context, filter any, sort bson.D, p ports.Page) (*ports.List[T], error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p = p.Normalize()
	total, err := c.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", c.col.Name(), err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
	cur, err := c.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.col.Name(), err)
	}

	items := make([]T, 0, p.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.col.Name(), err)
	}
	return ports.NewList(items, total, p), nil
}

// updateByID sets the fields of set and bumps updated_at. set may be a
// patch struct whose nil fields are omitted.
func (c collection[T]) updateByID(ctx context.Context, id string, set any) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	fields, err := toDocument(set)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errEmptyUpdate
	}
	fields = append(fields, bson.E{Key: "updated_at", Value: time.Now().UTC()})

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	err = c.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("update %s: %w", c.col.Name(), err)
	}
	return &doc, nil
}

// deleteByID removes the document and returns it.
func (c collection[T]) deleteByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := c.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("delete from %s: %w", c.col.Name(), err)
	}
	return &doc, nil
}

func toDocument(v any) (bson.D, error) {
	if d, ok := v.(bson.D); ok {
		return d, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal update: %w", err)
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("unmarshal update: %w", err)
	}
	return d, nil
}
