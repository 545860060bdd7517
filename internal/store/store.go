// Package store holds the document-store adapter boundary. The query
// engines compose bson filter documents and a pagination window; the
// adapters only run find/count/insert/update/delete primitives against
// a collection. Relationship traversal (category joins, favorites
// population) stays out of this package.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"store-backend/internal/models"
)

var (
	// ErrNotFound means a referenced document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument means a caller-supplied value is malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict means a write would violate a uniqueness rule.
	ErrConflict = errors.New("conflict")
)

// FindOptions is the pagination/ordering window for a Find call.
// Limit <= 0 means no limit.
type FindOptions struct {
	Sort  bson.D
	Skip  int64
	Limit int64
}

// ProductStore is the product-collection capability set.
type ProductStore interface {
	Find(ctx context.Context, filter bson.M, opts FindOptions) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Insert(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CategoryStore is the category-collection capability set.
type CategoryStore interface {
	Find(ctx context.Context, filter bson.M, opts FindOptions) ([]models.Category, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Category, error)
}

// UserStore is the user-collection capability set used by the
// favorites manager.
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
}
