package identity

import (
	"context"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
)

// Repository defines the interface for user data operations.
type Repository interface {
	// CreateUser inserts a user document and returns the inserted id as hex.
	// Returns ErrEmailTaken when the unique email index rejects the insert.
	CreateUser(ctx context.Context, user *domain.User) (string, error)

	// GetUserByEmail returns ErrUserNotFound when no document matches.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)

	// SetUserRole updates the role on the document with the given hex id.
	// A missing id is not an error; the result reports zero matched.
	SetUserRole(ctx context.Context, id string, role domain.Role) (UpdateResult, error)

	// DeleteUser removes the document with the given hex id and reports how
	// many documents were deleted (0 or 1).
	DeleteUser(ctx context.Context, id string) (int64, error)
}

// UpdateResult mirrors the store's update summary as exposed in responses.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
