// Package catalog implements the product query engine: it composes
// search terms, filter criteria and a pagination window into store
// queries and joins category data into the results.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"store-backend/internal/models"
	"store-backend/internal/paging"
	"store-backend/internal/store"
)

// rankingSize caps the least-ordered and best-selling lists.
const rankingSize = 6

var sortNewestFirst = bson.D{{Key: "createdAt", Value: -1}}

// Result is a paginated slice of the catalog.
type Result struct {
	Items       []models.Product
	CurrentPage int
	TotalPages  int64
}

// Service runs catalog queries against the product and category
// stores. The default page limit is injected so tests can vary it.
type Service struct {
	products     store.ProductStore
	categories   store.CategoryStore
	defaultLimit int
}

func NewService(products store.ProductStore, categories store.CategoryStore, defaultLimit int) *Service {
	return &Service{
		products:     products,
		categories:   categories,
		defaultLimit: defaultLimit,
	}
}

// List returns the catalog newest-first. With all set the window is
// bypassed but TotalPages still reports the windowed arithmetic.
func (s *Service) List(ctx context.Context, page, limit int, all bool) (*Result, error) {
	w := paging.NewWindow(page, limit, s.defaultLimit)

	total, err := s.products.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	opts := store.FindOptions{Sort: sortNewestFirst}
	if !all {
		opts.Skip = w.Skip()
		opts.Limit = int64(w.Limit)
	}

	items, err := s.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	return &Result{Items: items, CurrentPage: w.Page, TotalPages: w.TotalPages(total)}, nil
}

// GetByID looks up one product by id. A missing product is an empty
// slice, not an error; the handler decides how to report it.
func (s *Service) GetByID(ctx context.Context, id string) ([]models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", store.ErrInvalidArgument)
	}

	product, err := s.products.FindByID(ctx, objID)
	if err == store.ErrNotFound {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []models.Product{*product}, nil
}

// ByCategory resolves a category by case-insensitive name (first match
// wins) and pages through its products with the category joined in.
func (s *Service) ByCategory(ctx context.Context, name string, page, limit int) (*Result, error) {
	category, err := s.categories.FindOne(ctx, bson.M{
		"name": primitive.Regex{Pattern: name, Options: "i"},
	})
	if err == store.ErrNotFound {
		return nil, fmt.Errorf("category %w", store.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	w := paging.NewWindow(page, limit, s.defaultLimit)
	filter := bson.M{"categoryID": category.ID}

	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.products.Find(ctx, filter, store.FindOptions{
		Sort:  sortNewestFirst,
		Skip:  w.Skip(),
		Limit: int64(w.Limit),
	})
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Category = category
	}

	return &Result{Items: items, CurrentPage: w.Page, TotalPages: w.TotalPages(total)}, nil
}

// ByLabel returns every product carrying the given label, newest
// first, unpaginated. Unknown labels are invalid, not empty.
func (s *Service) ByLabel(ctx context.Context, label string) ([]models.Product, error) {
	if !models.IsValidLabel(label) {
		return nil, fmt.Errorf("invalid label type: %w", store.ErrInvalidArgument)
	}
	return s.products.Find(ctx, bson.M{"label": label}, store.FindOptions{Sort: sortNewestFirst})
}

// Search tokenizes the query and matches any term against title or
// description, case-insensitively. No terms means no results.
func (s *Service) Search(ctx context.Context, query string, page, limit int) (*Result, error) {
	w := paging.NewWindow(page, limit, s.defaultLimit)

	terms := Tokenize(query)
	if len(terms) == 0 {
		return &Result{Items: []models.Product{}, CurrentPage: w.Page}, nil
	}

	clauses := make([]bson.M, 0, len(terms))
	for _, term := range terms {
		pattern := primitive.Regex{Pattern: term, Options: "i"}
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"title": pattern},
			{"description": pattern},
		}})
	}
	filter := bson.M{"$or": clauses}

	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.products.Find(ctx, filter, store.FindOptions{
		Sort:  sortNewestFirst,
		Skip:  w.Skip(),
		Limit: int64(w.Limit),
	})
	if err != nil {
		return nil, err
	}

	if err := s.joinCategories(ctx, items); err != nil {
		return nil, err
	}

	return &Result{Items: items, CurrentPage: w.Page, TotalPages: w.TotalPages(total)}, nil
}

// Filter combines an optional title constraint (comma-space-separated
// substrings, OR-matched against title or description) with an
// optional inclusive price ceiling. Present constraints AND together;
// absent ones impose nothing.
func (s *Service) Filter(ctx context.Context, title, price string, page, limit int) (*Result, error) {
	w := paging.NewWindow(page, limit, s.defaultLimit)
	filter := bson.M{}

	if title != "" {
		patterns := bson.A{}
		for _, part := range strings.Split(title, ", ") {
			patterns = append(patterns, primitive.Regex{Pattern: strings.ToLower(part), Options: "i"})
		}
		filter["$or"] = []bson.M{
			{"title": bson.M{"$in": patterns}},
			{"description": bson.M{"$in": patterns}},
		}
	}

	if price != "" {
		ceiling, err := strconv.ParseFloat(price, 64)
		if err != nil {
			// a malformed ceiling can never be satisfied
			return &Result{Items: []models.Product{}, CurrentPage: w.Page}, nil
		}
		filter["price"] = bson.M{"$lte": ceiling}
	}

	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.products.Find(ctx, filter, store.FindOptions{
		Sort:  sortNewestFirst,
		Skip:  w.Skip(),
		Limit: int64(w.Limit),
	})
	if err != nil {
		return nil, err
	}

	return &Result{Items: items, CurrentPage: w.Page, TotalPages: w.TotalPages(total)}, nil
}

// LeastOrdered returns the products with the smallest order counts,
// ascending, capped at the ranking size.
func (s *Service) LeastOrdered(ctx context.Context) ([]models.Product, error) {
	return s.products.Find(ctx, bson.M{}, store.FindOptions{
		Sort:  bson.D{{Key: "orderCount", Value: 1}},
		Limit: rankingSize,
	})
}

// BestSelling returns the products with the largest order counts,
// descending, capped at the ranking size, with categories joined.
func (s *Service) BestSelling(ctx context.Context) ([]models.Product, error) {
	items, err := s.products.Find(ctx, bson.M{}, store.FindOptions{
		Sort:  bson.D{{Key: "orderCount", Value: -1}},
		Limit: rankingSize,
	})
	if err != nil {
		return nil, err
	}
	if err := s.joinCategories(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new product.
func (s *Service) Create(ctx context.Context, product *models.Product) error {
	if product.Label != "" && !models.IsValidLabel(product.Label) {
		return fmt.Errorf("invalid label type: %w", store.ErrInvalidArgument)
	}
	return s.products.Insert(ctx, product)
}

// Update applies the provided fields to an existing product.
func (s *Service) Update(ctx context.Context, id string, update models.ProductUpdate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", store.ErrInvalidArgument)
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Label != nil {
		if *update.Label != "" && !models.IsValidLabel(*update.Label) {
			return fmt.Errorf("invalid label type: %w", store.ErrInvalidArgument)
		}
		set["label"] = *update.Label
	}
	if update.CategoryID != nil {
		set["categoryID"] = *update.CategoryID
	}
	if update.OrderCount != nil {
		set["orderCount"] = *update.OrderCount
	}
	if len(set) == 0 {
		return fmt.Errorf("no updatable fields: %w", store.ErrInvalidArgument)
	}

	err = s.products.Update(ctx, objID, set)
	if err == store.ErrNotFound {
		return fmt.Errorf("product %w", store.ErrNotFound)
	}
	return err
}

// Delete removes a product permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", store.ErrInvalidArgument)
	}
	err = s.products.Delete(ctx, objID)
	if err == store.ErrNotFound {
		return fmt.Errorf("product %w", store.ErrNotFound)
	}
	return err
}

// joinCategories resolves the distinct category references of a result
// page and embeds each category into its products. The join happens
// here so the store adapters stay free of relationship traversal.
func (s *Service) joinCategories(ctx context.Context, items []models.Product) error {
	seen := map[primitive.ObjectID]bool{}
	ids := bson.A{}
	for _, p := range items {
		if p.CategoryID != nil && !seen[*p.CategoryID] {
			seen[*p.CategoryID] = true
			ids = append(ids, *p.CategoryID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	categories, err := s.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, store.FindOptions{})
	if err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	for i := range items {
		if items[i].CategoryID == nil {
			continue
		}
		if c, ok := byID[*items[i].CategoryID]; ok {
			category := c
			items[i].Category = &category
		}
	}
	return nil
}
