package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"store-backend/internal/models"
	"store-backend/internal/store"
	"store-backend/internal/store/mocks"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserStore, *mocks.MockProductStore) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	products := mocks.NewMockProductStore(ctrl)
	return NewService(users, products, 8), users, products
}

func userWith(favorites ...primitive.ObjectID) *models.User {
	return &models.User{ID: primitive.NewObjectID(), Favorites: favorites}
}

func TestAddAppendsToSequence(t *testing.T) {
	svc, users, products := newTestService(t)
	ctx := context.Background()

	existing := primitive.NewObjectID()
	added := primitive.NewObjectID()
	user := userWith(existing)

	products.EXPECT().FindByID(ctx, added).Return(&models.Product{ID: added}, nil)
	users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	users.EXPECT().
		Update(ctx, user.ID, bson.M{"favorites": []primitive.ObjectID{existing, added}}).
		Return(nil)

	updated, err := svc.Add(ctx, user.ID, added)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{existing, added}, updated)
}

func TestAddDuplicateIsConflict(t *testing.T) {
	svc, users, products := newTestService(t)
	ctx := context.Background()

	productID := primitive.NewObjectID()
	user := userWith(productID)

	products.EXPECT().FindByID(ctx, productID).Return(&models.Product{ID: productID}, nil)
	users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	// no Update expectation: the sequence must stay untouched

	_, err := svc.Add(ctx, user.ID, productID)
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _, products := newTestService(t)
	ctx := context.Background()

	productID := primitive.NewObjectID()
	products.EXPECT().FindByID(ctx, productID).Return(nil, store.ErrNotFound)

	_, err := svc.Add(ctx, primitive.NewObjectID(), productID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddUnknownUser(t *testing.T) {
	svc, users, products := newTestService(t)
	ctx := context.Background()

	productID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	products.EXPECT().FindByID(ctx, productID).Return(&models.Product{ID: productID}, nil)
	users.EXPECT().FindByID(ctx, userID).Return(nil, store.ErrNotFound)

	_, err := svc.Add(ctx, userID, productID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	kept := primitive.NewObjectID()
	user := userWith(kept)

	users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	users.EXPECT().
		Update(ctx, user.ID, bson.M{"favorites": []primitive.ObjectID{kept}}).
		Return(nil)

	updated, err := svc.Remove(ctx, user.ID, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{kept}, updated)
}

func TestRemoveKeepsOrder(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	third := primitive.NewObjectID()
	user := userWith(first, second, third)

	users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	users.EXPECT().
		Update(ctx, user.ID, bson.M{"favorites": []primitive.ObjectID{first, third}}).
		Return(nil)

	updated, err := svc.Remove(ctx, user.ID, second)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{first, third}, updated)
}

func TestClearEmptiesSequence(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	users.EXPECT().
		Update(ctx, userID, bson.M{"favorites": []primitive.ObjectID{}}).
		Return(nil)

	assert.NoError(t, svc.Clear(ctx, userID))
}

func TestClearUnknownUser(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	users.EXPECT().Update(ctx, userID, gomock.Any()).Return(store.ErrNotFound)

	assert.ErrorIs(t, svc.Clear(ctx, userID), store.ErrNotFound)
}

func TestListJoinsProductsInSequenceOrder(t *testing.T) {
	svc, users, products := newTestService(t)
	ctx := context.Background()

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	user := userWith(first, second)

	users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	// the store returns documents in its own order; the sequence wins
	products.EXPECT().
		Find(ctx, bson.M{"_id": bson.M{"$in": bson.A{first, second}}}, store.FindOptions{}).
		Return([]models.Product{
			{ID: second, Title: "second"},
			{ID: first, Title: "first"},
		}, nil)

	result, err := svc.List(ctx, user.ID, 1, 8, false)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "first", result.Items[0].Title)
	assert.Equal(t, "second", result.Items[1].Title)
	assert.Equal(t, int64(1), result.TotalPages)
}

func TestListPaginatesInMemory(t *testing.T) {
	svc, users, products := newTestService(t)
	ctx := context.Background()

	sequence := make([]primitive.ObjectID, 10)
	for i := range sequence {
		sequence[i] = primitive.NewObjectID()
	}
	user := userWith(sequence...)

	// page 2 with limit 4: entries 4..7 only
	window := bson.A{sequence[4], sequence[5], sequence[6], sequence[7]}
	users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	products.EXPECT().
		Find(ctx, bson.M{"_id": bson.M{"$in": window}}, store.FindOptions{}).
		Return([]models.Product{{ID: sequence[4]}, {ID: sequence[5]}, {ID: sequence[6]}, {ID: sequence[7]}}, nil)

	result, err := svc.List(ctx, user.ID, 2, 4, false)
	require.NoError(t, err)
	assert.Len(t, result.Items, 4)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, int64(3), result.TotalPages)
}

func TestListAllBypassesWindowKeepsArithmetic(t *testing.T) {
	svc, users, products := newTestService(t)
	ctx := context.Background()

	sequence := make([]primitive.ObjectID, 10)
	ids := bson.A{}
	joined := make([]models.Product, 0, len(sequence))
	for i := range sequence {
		sequence[i] = primitive.NewObjectID()
		ids = append(ids, sequence[i])
		joined = append(joined, models.Product{ID: sequence[i]})
	}
	user := userWith(sequence...)

	users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	products.EXPECT().
		Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, store.FindOptions{}).
		Return(joined, nil)

	result, err := svc.List(ctx, user.ID, 1, 0, true)
	require.NoError(t, err)
	assert.Len(t, result.Items, 10)
	// totalPages still reports the windowed arithmetic (default limit 8)
	assert.Equal(t, int64(2), result.TotalPages)
}

func TestListPastLastPageIsEmpty(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	user := userWith(primitive.NewObjectID())
	users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	result, err := svc.List(ctx, user.ID, 5, 8, false)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(1), result.TotalPages)
}

func TestListUnknownUser(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	users.EXPECT().FindByID(ctx, userID).Return(nil, store.ErrNotFound)

	_, err := svc.List(ctx, userID, 1, 8, false)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// Full add → list → duplicate add → remove → clear flow against a
// stateful in-memory user document.
func TestFavoritesLifecycle(t *testing.T) {
	svc, users, products := newTestService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	state := &models.User{ID: userID, Favorites: []primitive.ObjectID{}}

	products.EXPECT().FindByID(ctx, p1).Return(&models.Product{ID: p1, Title: "p1"}, nil).AnyTimes()
	users.EXPECT().FindByID(ctx, userID).DoAndReturn(
		func(context.Context, primitive.ObjectID) (*models.User, error) {
			snapshot := *state
			snapshot.Favorites = append([]primitive.ObjectID{}, state.Favorites...)
			return &snapshot, nil
		}).AnyTimes()
	users.EXPECT().Update(ctx, userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ primitive.ObjectID, set bson.M) error {
			state.Favorites = set["favorites"].([]primitive.ObjectID)
			return nil
		}).AnyTimes()
	products.EXPECT().Find(ctx, gomock.Any(), store.FindOptions{}).DoAndReturn(
		func(_ context.Context, _ bson.M, _ store.FindOptions) ([]models.Product, error) {
			out := make([]models.Product, 0, len(state.Favorites))
			for _, id := range state.Favorites {
				out = append(out, models.Product{ID: id})
			}
			return out, nil
		}).AnyTimes()

	updated, err := svc.Add(ctx, userID, p1)
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{p1}, updated)

	listed, err := svc.List(ctx, userID, 1, 8, false)
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
	assert.Equal(t, p1, listed.Items[0].ID)

	_, err = svc.Add(ctx, userID, p1)
	assert.ErrorIs(t, err, store.ErrConflict)

	_, err = svc.Remove(ctx, userID, p1)
	require.NoError(t, err)
	assert.Empty(t, state.Favorites)

	require.NoError(t, svc.Clear(ctx, userID))
	assert.Empty(t, state.Favorites)
}
