// Package cart manages shopping cart items per customer email.
package cart

import (
	"context"
	"errors"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
)

// ErrInvalidID is returned when a path id is not a valid object id hex.
var ErrInvalidID = errors.New("invalid id")

// Repository defines the interface for cart data operations.
type Repository interface {
	// AddItem inserts a cart document and returns the inserted id as hex.
	AddItem(ctx context.Context, item *domain.CartItem) (string, error)

	// ListByOwner returns all cart documents for the given owner email.
	ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error)

	// DeleteItem removes the document with the given hex id and reports how
	// many documents were deleted (0 or 1).
	DeleteItem(ctx context.Context, id string) (int64, error)
}
