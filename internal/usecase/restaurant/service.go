package restaurant

import (
	"context"

	domain "github.com/foodfast/foodfast-backend/internal/domain/restaurant"
	"github.com/foodfast/foodfast-backend/internal/httperr"
	"github.com/foodfast/foodfast-backend/internal/models"
)

type Service struct {
	repo  domain.Repository
	users domain.UserLookup
}

func NewService(repo domain.Repository, users domain.UserLookup) *Service {
	return &Service{repo: repo, users: users}
}

// Create validates ownership before persisting anything: the owner email
// must resolve to an existing user with the RESTAURANT_OWNER role. A
// lookup transport failure propagates unchanged; no retry, no fallback.
func (s *Service) Create(ctx context.Context, r *models.Restaurant) (*models.Restaurant, error) {
	owner, err := s.users.GetUserByEmail(ctx, r.OwnerEmail)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, httperr.ErrBusiness(httperr.CodeOwnerNotFound)
	}
	if owner.Role != models.RoleRestaurantOwner {
		return nil, httperr.ErrBusiness(httperr.CodeOwnerInvalidRole)
	}

	r.OwnerID = owner.ID
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetByOwner fails with a not-found error when no restaurant exists for
// the owner id. Unlike the plain by-id gets elsewhere, absence here is an
// error, not an empty result.
func (s *Service) GetByOwner(ctx context.Context, ownerID uint) (*models.Restaurant, error) {
	rest, err := s.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}
	return rest, nil
}

// GetByOwnerEmail has the same contract as GetByOwner, keyed by email.
func (s *Service) GetByOwnerEmail(ctx context.Context, ownerEmail string) (*models.Restaurant, error) {
	rest, err := s.repo.FindByOwnerEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}
	return rest, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	return s.repo.FindAll(ctx)
}
