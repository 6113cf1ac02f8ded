// Package mongo provides the MongoDB implementation of the cart repository.
package mongo

import (
	"context"
	"fmt"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/cart"
	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository implements cart.Repository on the cartItems collection.
type Repository struct {
	items *mongo.Collection
}

// NewRepository creates a new MongoDB repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{items: db.Collection("cartItems")}
}

// AddItem inserts a cart document.
func (r *Repository) AddItem(ctx context.Context, item *domain.CartItem) (string, error) {
	res, err := r.items.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert cart item: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListByOwner returns all cart documents for the given owner email.
func (r *Repository) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	cursor, err := r.items.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	items := make([]domain.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

// DeleteItem removes the document with the given hex id.
func (r *Repository) DeleteItem(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, cart.ErrInvalidID
	}

	res, err := r.items.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}
