// Package mongo provides the MongoDB implementation of the catalog repository.
package mongo

import (
	"context"
	"fmt"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository implements catalog.Repository on the menu and reviews collections.
type Repository struct {
	menu    *mongo.Collection
	reviews *mongo.Collection
}

// NewRepository creates a new MongoDB repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		menu:    db.Collection("menu"),
		reviews: db.Collection("reviews"),
	}
}

// ListMenu returns all menu documents.
func (r *Repository) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	cursor, err := r.menu.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}

	items := make([]domain.MenuItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return items, nil
}

// ListReviews returns all review documents.
func (r *Repository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews := make([]domain.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
