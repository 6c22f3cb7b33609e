package shared

import (
	"github.com/google/uuid"

	"wanderbook/internal/domain/user"
)

// Actor is the authenticated caller as seen by usecases. Handlers build it
// from the JWT claims; usecases never touch the token themselves.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
