// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealhub/internal/domain/entity"
	"dealhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for admin grant persistence.
var (
	// ErrAdminNotFound is returned when an admin grant is not found.
	ErrAdminNotFound = errors.New("admin grant not found")
	// ErrDuplicateAdmin is returned when the user already holds a grant.
	ErrDuplicateAdmin = errors.New("admin grant already exists")
)

// AdminRepository defines the interface for back-office grant operations.
type AdminRepository interface {
	// FindAdminByUserID retrieves the grant held by a user, if any.
	FindAdminByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error)

	// FindAdminByID retrieves a grant record by its unique ID.
	FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)

	// ListAdmins retrieves all grant records, oldest first.
	ListAdmins(ctx context.Context) ([]*entity.AdminUser, error)

	// CreateAdmin persists a new grant. Returns ErrDuplicateAdmin when the
	// user already holds one.
	CreateAdmin(ctx context.Context, admin *entity.AdminUser) error

	// DeleteAdmin removes a grant record by its unique ID.
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
}
