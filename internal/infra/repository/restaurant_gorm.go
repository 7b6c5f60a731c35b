package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/foodfast/foodfast-backend/internal/domain/restaurant"
	"github.com/foodfast/foodfast-backend/internal/models"
)

type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

func (r *RestaurantGormRepository) Save(ctx context.Context, rest *models.Restaurant) error {
	return r.db.WithContext(ctx).Save(rest).Error
}

func (r *RestaurantGormRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RestaurantGormRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db.WithContext(ctx).First(&rest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantGormRepository) FindByOwnerID(ctx context.Context, ownerID uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&rest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantGormRepository) FindByOwnerEmail(ctx context.Context, ownerEmail string) (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db.WithContext(ctx).Where("owner_email = ?", ownerEmail).First(&rest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// Compile-time check
var _ domain.Repository = (*RestaurantGormRepository)(nil)
