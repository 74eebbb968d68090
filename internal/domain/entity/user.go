// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Customers and administrators share the same record
// and are told apart by their roles.
type User struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`     // The user's primary contact email, used as the login identifier.
	Name      string    `json:"name"`      // The user's display name, shown next to reviews.
	Roles     Roles     `json:"roles"`     // Granted roles, at least RoleCustomer.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of when this user account was created.
	UpdatedAt time.Time `json:"updatedAt"` // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user may use the back-office.
func (u *User) IsAdmin() bool {
	return u.Roles.Contains(RoleAdmin)
}
