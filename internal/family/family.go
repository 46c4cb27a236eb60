package family

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("family not found")
	ErrAlreadyInFamily  = errors.New("user is already a family member")
	ErrNotInFamily      = errors.New("user is not a family member")
	ErrAdminCannotLeave = errors.New("family admin cannot leave the family")
	ErrNotAdmin         = errors.New("user is not the family admin")
)

type Family struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	AdminID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Permissions is the per-member policy row. ShouldConfirmChoreCompletion
// decides whether the member reviews other members' completions.
type Permissions struct {
	ID                           uuid.UUID
	UserID                       uuid.UUID
	ShouldConfirmChoreCompletion bool
	CanInviteUsers               bool
}
