package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrBadCredentials = errors.New("invalid username or password")
)

// User is a registered person. FamilyID is nil until the user creates or
// joins a family.
type User struct {
	ID          uuid.UUID
	Username    string
	Name        string
	Surname     string
	FamilyID    *uuid.UUID
	Password    string // bcrypt hash
	IsActive    bool
	IsSuperuser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InFamily reports whether the user belongs to the given family.
func (u *User) InFamily(familyID uuid.UUID) bool {
	return u.FamilyID != nil && *u.FamilyID == familyID
}
