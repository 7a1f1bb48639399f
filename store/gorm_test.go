package store

import (
	"context"
	"testing"
	"time"

	"bistro-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	s, err := OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGormStore_Menu(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	items, err := s.ListMenu(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items, "empty list must not be nil")
	assert.Empty(t, items)

	res, err := s.CreateMenuItem(ctx, &models.MenuItem{Name: "Roast Duck Breast", Category: "popular", Price: 14.5})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.NotEmpty(t, res.InsertedID)

	items, err = s.ListMenu(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, res.InsertedID, items[0].ID)
	assert.Equal(t, 14.5, items[0].Price)

	del, err := s.DeleteMenuItem(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, models.DeleteResult{Acknowledged: true, DeletedCount: 1}, del)

	del, err = s.DeleteMenuItem(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)
}

func TestGormStore_CartByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "a@example.com", "b@example.com"} {
		_, err := s.CreateCartItem(ctx, &models.CartItem{Email: email, Name: "Caesar Salad", Price: 9})
		require.NoError(t, err)
	}

	items, err := s.ListCartByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = s.ListCartByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGormStore_Users(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.FindUserByEmail(ctx, "chef@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	res, err := s.CreateUser(ctx, &models.User{Name: "Chef", Email: "chef@example.com"})
	require.NoError(t, err)

	user, err := s.FindUserByEmail(ctx, "chef@example.com")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin())

	upd, err := s.PromoteToAdmin(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.True(t, upd.Acknowledged)
	assert.Equal(t, int64(1), upd.MatchedCount)

	user, err = s.FindUserByEmail(ctx, "chef@example.com")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	upd, err = s.PromoteToAdmin(ctx, "missing-id")
	require.NoError(t, err)
	assert.Equal(t, int64(0), upd.MatchedCount)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGormStore_PaymentRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &models.Payment{
		Email:         "guest@example.com",
		Price:         23.75,
		TransactionID: "pi_3Nxyz",
		Date:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		CartIDs:       []string{"c1", "c2"},
		MenuItemIDs:   []string{"m1", "m2"},
		Status:        "pending",
	}
	res, err := s.CreatePayment(ctx, p)
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)

	var stored models.Payment
	require.NoError(t, s.DB().First(&stored, "id = ?", res.InsertedID).Error)
	assert.Equal(t, []string{"c1", "c2"}, stored.CartIDs)
	assert.Equal(t, []string{"m1", "m2"}, stored.MenuItemIDs)
	assert.Equal(t, "pi_3Nxyz", stored.TransactionID)
}

func TestGormStore_Reviews(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.DB().Create(&models.Review{ID: "r1", Name: "Jane", Details: "Lovely soup", Rating: 5}).Error)

	reviews, err := s.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Lovely soup", reviews[0].Details)
}
