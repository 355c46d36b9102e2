package domain

import "strings"

// RoleAdmin is the authority required by every administrative endpoint.
const RoleAdmin = "ADMIN"

// User models an account that can log in. The password is only ever held in
// its bcrypt-hashed form.
type User struct {
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-"        db:"password"`
}

// NormalizeRole returns the canonical storage form of a role label.
func NormalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}
