// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the back-office role an administrator can hold.
// A regular shopper holds no role at all; the presence of an AdminUser
// record is what makes someone an administrator.
type Role string

const (
	// RoleEditor may manage catalog content (deals, stores, categories).
	RoleEditor Role = "editor"
	// RoleAdmin may additionally manage advertisements and grant editor roles.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin may manage other administrators.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEditor, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
