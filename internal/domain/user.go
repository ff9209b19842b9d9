package domain

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered library member. Names are not required to be unique;
// lookups by name resolve ties to the earliest-created record.
type User struct {
	ID        int64
	Name      string
	Age       *int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser constructs a member record, rejecting blank names and negative ages.
func NewUser(name string, age *int32) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("user name must not be blank")
	}
	if age != nil && *age < 0 {
		return nil, fmt.Errorf("user age must not be negative")
	}
	return &User{Name: name, Age: age}, nil
}

// Rename changes the user's name in place.
func (u *User) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("user name must not be blank")
	}
	u.Name = name
	return nil
}
