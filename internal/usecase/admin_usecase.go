// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the operations around back-office access grants.
type AdminUsecase interface {
	// IsAdmin reports whether the user holds a grant. Any resolution error
	// yields false: access checks fail closed.
	IsAdmin(ctx context.Context, userID uuid.UUID) bool

	// GetAdminForUser returns the grant held by a user.
	GetAdminForUser(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error)

	// ListAdmins returns all grant records.
	ListAdmins(ctx context.Context) ([]*entity.AdminUser, error)

	// MakeAdmin grants back-office access to a user. Granting to an
	// existing admin is a conflict.
	MakeAdmin(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.AdminUser, error)

	// RemoveAdmin revokes a grant record. The acting user may not revoke
	// their own grant.
	RemoveAdmin(ctx context.Context, actorUserID, grantID uuid.UUID) error
}
