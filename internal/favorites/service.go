// Package favorites maintains the per-user ordered, deduplicated set
// of favorite products. Every operation is a single read-modify-write
// against one user document; concurrent mutations of the same user
// are last-write-wins at the store.
package favorites

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"store-backend/internal/models"
	"store-backend/internal/paging"
	"store-backend/internal/store"
)

// Result is a paginated slice of a user's favorites with product data
// joined in.
type Result struct {
	Items       []models.Product
	CurrentPage int
	TotalPages  int64
}

// Service manages favorites sequences. Pagination happens in memory
// over the already-loaded sequence, so the default limit is the only
// store-independent knob.
type Service struct {
	users        store.UserStore
	products     store.ProductStore
	defaultLimit int
}

func NewService(users store.UserStore, products store.ProductStore, defaultLimit int) *Service {
	return &Service{
		users:        users,
		products:     products,
		defaultLimit: defaultLimit,
	}
}

// Add appends a product to the user's favorites. The membership test
// runs before the write; a product already in the sequence is a
// conflict and leaves the sequence unchanged.
func (s *Service) Add(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if err == store.ErrNotFound {
			return nil, fmt.Errorf("product %w", store.ErrNotFound)
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, fmt.Errorf("user %w", store.ErrNotFound)
		}
		return nil, err
	}

	for _, id := range user.Favorites {
		if id == productID {
			return nil, fmt.Errorf("product already in favorites: %w", store.ErrConflict)
		}
	}

	favorites := append(user.Favorites, productID)
	if err := s.users.Update(ctx, userID, bson.M{"favorites": favorites}); err != nil {
		return nil, err
	}
	return favorites, nil
}

// List pages through the user's favorites in insertion order with
// product data joined. With all set the window is bypassed but
// TotalPages keeps the windowed arithmetic.
func (s *Service) List(ctx context.Context, userID primitive.ObjectID, page, limit int, all bool) (*Result, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, fmt.Errorf("user %w", store.ErrNotFound)
		}
		return nil, err
	}

	w := paging.NewWindow(page, limit, s.defaultLimit)
	total := int64(len(user.Favorites))

	sequence := user.Favorites
	if !all {
		from := w.Skip()
		to := from + int64(w.Limit)
		if from > total {
			from = total
		}
		if to > total {
			to = total
		}
		sequence = sequence[from:to]
	}

	items, err := s.joinProducts(ctx, sequence)
	if err != nil {
		return nil, err
	}

	return &Result{Items: items, CurrentPage: w.Page, TotalPages: w.TotalPages(total)}, nil
}

// Remove deletes a product from the sequence. Removing an absent
// product is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, fmt.Errorf("user %w", store.ErrNotFound)
		}
		return nil, err
	}

	favorites := make([]primitive.ObjectID, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if id != productID {
			favorites = append(favorites, id)
		}
	}

	if err := s.users.Update(ctx, userID, bson.M{"favorites": favorites}); err != nil {
		return nil, err
	}
	return favorites, nil
}

// Clear empties the user's favorites sequence.
func (s *Service) Clear(ctx context.Context, userID primitive.ObjectID) error {
	err := s.users.Update(ctx, userID, bson.M{"favorites": []primitive.ObjectID{}})
	if err == store.ErrNotFound {
		return fmt.Errorf("user %w", store.ErrNotFound)
	}
	return err
}

// joinProducts loads the referenced products and returns them in
// sequence order. References to since-deleted products are skipped.
func (s *Service) joinProducts(ctx context.Context, sequence []primitive.ObjectID) ([]models.Product, error) {
	if len(sequence) == 0 {
		return []models.Product{}, nil
	}

	ids := bson.A{}
	for _, id := range sequence {
		ids = append(ids, id)
	}
	products, err := s.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, store.FindOptions{})
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]models.Product, 0, len(sequence))
	for _, id := range sequence {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
