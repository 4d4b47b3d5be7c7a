package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "usuario"
)

// User models a storefront account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"rol"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller decoded from a verified token.
// It lives for a single request and is never persisted.
type Identity struct {
	ID    string
	Email string
	Role  string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
