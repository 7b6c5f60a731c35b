package product

import (
	"context"

	domain "github.com/foodfast/foodfast-backend/internal/domain/product"
	"github.com/foodfast/foodfast-backend/internal/httperr"
	"github.com/foodfast/foodfast-backend/internal/models"
)

type Service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

// Create persists the product as a new record. No validation beyond what
// the storage layer enforces.
func (s *Service) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns (nil, nil) when the product does not exist. The caller
// decides how to treat absence.
func (s *Service) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites the record's fields with data, preserving the id.
func (s *Service) Update(ctx context.Context, id uint, data *models.Product) (*models.Product, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrBusiness(httperr.CodeProductNotFound)
	}

	data.ID = id
	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Delete removes the product by id. Deleting an absent id is a no-op.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}
