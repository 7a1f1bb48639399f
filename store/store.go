// Package store is the persistence boundary. Each method performs exactly one
// datastore operation and returns the datastore's acknowledgement.
package store

import (
	"context"
	"errors"

	"bistro-api/models"
)

var (
	// ErrNotFound is returned by single-record lookups that match nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key (user email) already exists.
	ErrDuplicate = errors.New("duplicate key")
	// ErrInvalidID is returned when an identifier cannot address a record in
	// this backend, e.g. a non-hex ObjectID.
	ErrInvalidID = errors.New("invalid id")
)

// UserFinder looks up a single user by email.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Store is implemented by every backend. List methods return an empty,
// non-nil slice when nothing matches.
type Store interface {
	UserFinder

	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error)
	DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error)

	ListReviews(ctx context.Context) ([]models.Review, error)

	ListCartByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	CreateCartItem(ctx context.Context, item *models.CartItem) (models.InsertResult, error)
	DeleteCartItem(ctx context.Context, id string) (models.DeleteResult, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) (models.InsertResult, error)
	PromoteToAdmin(ctx context.Context, id string) (models.UpdateResult, error)

	CreatePayment(ctx context.Context, payment *models.Payment) (models.InsertResult, error)

	Close() error
}
