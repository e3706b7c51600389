package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// store implements ports.Store for one collection.
type store[T any, P any] struct {
	collection[T]
	setID func(*T, primitive.ObjectID)
}

func (s store[T, P]) Create(ctx context.Context, doc *T) error {
	id, err := s.insert(ctx, doc)
	if err != nil {
		return err
	}
	s.setID(doc, id)
	return nil
}

func (s store[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	return s.findByID(ctx, id)
}

func (s store[T, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	return s.updateByID(ctx, id, patch)
}

func (s store[T, P]) Delete(ctx context.Context, id string) (*T, error) {
	return s.deleteByID(ctx, id)
}
