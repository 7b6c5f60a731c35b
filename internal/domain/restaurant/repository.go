package restaurant

import (
	"context"

	"github.com/foodfast/foodfast-backend/internal/models"
)

// Repository persists restaurants. The FindBy* methods return (nil, nil)
// on a miss; the usecase layer turns owner-keyed misses into a typed
// not-found failure.
type Repository interface {
	Save(ctx context.Context, r *models.Restaurant) error
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	FindByID(ctx context.Context, id uint) (*models.Restaurant, error)
	FindByOwnerID(ctx context.Context, ownerID uint) (*models.Restaurant, error)
	FindByOwnerEmail(ctx context.Context, ownerEmail string) (*models.Restaurant, error)
}
