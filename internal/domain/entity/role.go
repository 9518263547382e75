// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin can do everything, including user management.
	RoleAdmin Role = "admin"
	// RoleMarketer manages store data.
	RoleMarketer Role = "marketer"
	// RoleViewer may only read store data.
	RoleViewer Role = "viewer"
)

// Permission is a single capability checked at the API boundary.
type Permission string

const (
	PermissionStoresCreate Permission = "stores:create"
	PermissionStoresRead   Permission = "stores:read"
	PermissionStoresUpdate Permission = "stores:update"
	PermissionStoresDelete Permission = "stores:delete"
	PermissionStoresImport Permission = "stores:import"
	PermissionUsersCreate  Permission = "users:create"
	PermissionUsersRead    Permission = "users:read"
	PermissionUsersUpdate  Permission = "users:update"
	PermissionUsersDelete  Permission = "users:delete"
)

var storePermissions = []Permission{
	PermissionStoresCreate,
	PermissionStoresRead,
	PermissionStoresUpdate,
	PermissionStoresDelete,
	PermissionStoresImport,
}

var rolePermissions = map[Role][]Permission{
	RoleAdmin: append(slices.Clone(storePermissions),
		PermissionUsersCreate,
		PermissionUsersRead,
		PermissionUsersUpdate,
		PermissionUsersDelete,
	),
	RoleMarketer: storePermissions,
	RoleViewer:   {PermissionStoresRead},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]

	return ok
}

// Permissions returns the capabilities granted to the role.
func (r Role) Permissions() []Permission {
	return slices.Clone(rolePermissions[r])
}

// Can reports whether the role grants the permission.
func (r Role) Can(permission Permission) bool {
	return slices.Contains(rolePermissions[r], permission)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Can reports whether any of the roles grants the permission.
func (rs Roles) Can(permission Permission) bool {
	return slices.ContainsFunc(rs, func(r Role) bool { return r.Can(permission) })
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
