package restaurant

import (
	"context"

	"github.com/foodfast/foodfast-backend/internal/models"
)

// OwnerInfo is the subset of a user the restaurant service needs when
// validating ownership.
type OwnerInfo struct {
	ID    uint        `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// UserLookup resolves a user's authoritative attributes from the user
// service at write time. Returns (nil, nil) when no such user exists;
// any transport failure surfaces as an error and propagates unchanged
// to the caller of the operation that needed the lookup.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*OwnerInfo, error)
}
