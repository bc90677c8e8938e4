// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser grants back-office access to a user. Existence of a record
// is what makes a user an administrator; deleting it revokes access.
type AdminUser struct {
	ID        uuid.UUID // The unique ID for this grant record itself.
	UserID    uuid.UUID // The user who holds back-office access.
	Role      Role      // The role held: editor, admin or super_admin.
	CreatedAt time.Time // Timestamp of when access was granted.
}
