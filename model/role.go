// Package model defines database models
package model

// Role decides what a user is allowed to do. Kept as a dedicated
// type so handlers can't pass arbitrary strings around.
type Role string

const (
	// RoleAdmin is the photographer. Only admins can create albums
	// and upload photos.
	RoleAdmin Role = "admin"
	// RoleUser is a regular visitor account.
	RoleUser Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
