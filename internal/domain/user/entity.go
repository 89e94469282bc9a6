package user

import (
	"time"
)

// Roles. New registrations default to RoleCustomer.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is an account that can authenticate and place orders. PasswordHash
// is a bcrypt hash; the plain password never leaves the service layer.
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a customer account with the hash already computed.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
