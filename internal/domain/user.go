package domain

import "time"

type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleNGOAdmin  Role = "ngo_admin"
)

// Valid reports whether r is one of the closed set of roles. Role is
// immutable after user creation.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleRecipient, RoleNGOAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	City         string    `json:"city,omitempty"`
	Verified     bool      `json:"verified"`
	CreatedOn    time.Time `json:"created_on"`
}
