package entities

import (
	"errors"
	"strings"
)

var ErrEmptyEmail = errors.New("email must not be empty")

// User is a registered account. Email is the natural key; Id is
// assigned by storage and never trusted from callers.
type User struct {
	Id    uint
	Name  string
	Email string
}

func NewUser(name, email string) *User {
	return &User{
		Name:  name,
		Email: strings.TrimSpace(email),
	}
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	return nil
}

// Equals reports identity: both id and email must match.
func (u *User) Equals(other *User) bool {
	if other == nil {
		return false
	}
	return u.Id == other.Id && u.Email == other.Email
}
