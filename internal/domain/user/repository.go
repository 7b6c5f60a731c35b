package user

import (
	"context"

	"github.com/foodfast/foodfast-backend/internal/models"
)

// Repository persists users. Email uniqueness is enforced by the storage
// layer; Save returns gorm.ErrDuplicatedKey (translated) on collision.
// FindByID / FindByEmail return (nil, nil) when no row matches.
type Repository interface {
	Save(ctx context.Context, u *models.User) error
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error
}
