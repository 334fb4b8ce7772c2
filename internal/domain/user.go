package domain

import (
	"encoding/json"
	"strings"
)

// UserRole is the access level of a CRM user.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleUser    UserRole = "user"
	UserRoleManager UserRole = "manager"
)

var userRoles = []UserRole{UserRoleAdmin, UserRoleUser, UserRoleManager}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return contains(userRoles, r)
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(raw string) (UserRole, error) {
	return parseEnum("role", raw, userRoles)
}

// UnmarshalText rejects unknown roles during decoding.
func (r *UserRole) UnmarshalText(text []byte) error {
	parsed, err := ParseUserRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// User is a member of the CRM team.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
	Timestamps
}

// UserInput describes the values needed to create a User.
type UserInput struct {
	Name  string
	Email string
	Role  UserRole
}

// NewUser builds a User with a fresh id and timestamps.
func NewUser(input UserInput) (*User, error) {
	user := &User{
		ID:         newID(),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Role:       input.Role,
		Timestamps: newTimestamps(),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the declared invariants of u.
func (u *User) Validate() error {
	if !u.Role.Valid() {
		return &ValidationError{Field: "role", Value: string(u.Role), Allowed: enumStrings(userRoles)}
	}
	return u.Timestamps.Validate()
}

// UnmarshalJSON decodes u and rejects missing or null enum fields.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = User(decoded)
	return u.Validate()
}
