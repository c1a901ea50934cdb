// Package repository defines the persistence contracts for users and status
// posts, with MySQL-backed and in-memory implementations.
package repository

import (
	"context"

	"github.com/statusfeed/statusfeed-go/internal/model"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// Create inserts a new user and sets the assigned ID on the struct.
	Create(ctx context.Context, user *model.User) error
	// GetByEmail returns ErrUserNotFound when no account has the email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByID returns ErrUserNotFound when no account has the id.
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// StatusRepository is the persistence contract for status posts.
type StatusRepository interface {
	// Create inserts a new status and sets the assigned ID on the struct.
	Create(ctx context.Context, status *model.Status) error
	// GetByID returns ErrStatusNotFound when no status has the id.
	GetByID(ctx context.Context, id int64) (*model.Status, error)
	// ListByUser returns the user's statuses in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]model.Status, error)
	// Update persists a content change. Owner and publication date are never
	// touched.
	Update(ctx context.Context, status *model.Status) error
	// Delete permanently removes the status. Returns ErrStatusNotFound when
	// no row was removed.
	Delete(ctx context.Context, id int64) error
}
