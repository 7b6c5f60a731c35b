package product

import (
	"context"

	"github.com/foodfast/foodfast-backend/internal/models"
)

// Repository is the persistence contract for products. FindByID returns
// (nil, nil) when no row matches: absence is an empty result, not an
// error, and the caller decides how to treat it.
type Repository interface {
	Save(ctx context.Context, p *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error
}
