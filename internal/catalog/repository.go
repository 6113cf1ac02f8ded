// Package catalog serves the read-only menu and review collections.
package catalog

import (
	"context"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
)

// Repository defines the interface for catalog data operations. Both
// collections are maintained out of band; this server only reads them.
type Repository interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}
