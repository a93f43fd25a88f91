// Package entities contains core business entities.
package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Role is the flat two-value access level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAgent
}

// User is a domain representation of an operator account. PasswordHash never
// leaves the service layer.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Credentials carries a registration or login request.
type Credentials struct {
	Username string
	Password string
	Role     Role
}

// Validate checks that both username and password are present.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&c.Password, validation.Required, validation.Length(1, 200)),
	)
}

// Identity is the claim set carried by a verified token.
type Identity struct {
	UserID   string
	Username string
	Role     Role
}
