package domain

import "time"

// Role is the closed set of access levels a user can hold. The account
// schema used to keep this as free text; a typo there silently stripped
// admin rights, so it is an enumerated type here.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ParseRole maps a stored role string onto the enum. Unknown values fall
// back to member so a corrupted row can never grant admin access.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleMember
}

// User represents a registered forum user. Salt and PasswordDigest are the
// opaque pair produced by the password hasher; the plaintext is never stored.
type User struct {
	ID             int64
	UUID           string
	FirstName      string
	LastName       string
	Username       string
	Email          string
	Salt           []byte
	PasswordDigest []byte
	Role           Role
	DOB            string
	ContactNumber  string
	Country        string
	AboutMe        string
	CreatedAt      time.Time
}
