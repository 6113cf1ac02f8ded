// Package identity provides user registration, admin role management and
// the data side of the admin gate.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/TrishonBaidaya7399/Bistro-Boss-Restaurant-server/internal/domain"
)

// Service implements user business logic on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user document for a first sign-in. Registration is
// idempotent on email: a second call with the same email returns
// ErrEmailTaken, which the HTTP layer reports as a no-op rather than a
// failure. The uniqueness guarantee lives in the store's unique index, so
// two concurrent registrations cannot both insert.
func (s *Service) Register(ctx context.Context, user *domain.User) (string, error) {
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("register user: %w", err)
	}
	return id, nil
}

// IsAdmin reports whether the user with the given email holds the admin
// role. An unknown email is non-admin, not an error.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up user: %w", err)
	}
	return user.Role.IsAdmin(), nil
}

// ListUsers returns all user documents.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

// PromoteToAdmin sets role=admin on the user with the given id. Promoting a
// missing id reports zero matched instead of failing.
func (s *Service) PromoteToAdmin(ctx context.Context, id string) (UpdateResult, error) {
	return s.repo.SetUserRole(ctx, id, domain.RoleAdmin)
}

// DeleteUser removes the user with the given id.
func (s *Service) DeleteUser(ctx context.Context, id string) (int64, error) {
	return s.repo.DeleteUser(ctx, id)
}
