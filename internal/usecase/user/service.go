package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/foodfast/foodfast-backend/internal/domain/user"
	"github.com/foodfast/foodfast-backend/internal/httperr"
	"github.com/foodfast/foodfast-backend/internal/models"
)

type Service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

// UpdateInput carries a sparse update: only non-nil fields are applied,
// fields left nil keep their prior values.
type UpdateInput struct {
	Fullname *string
	Email    *string
	Phone    *string
	Password *string
	Role     *models.Role
}

// Create hashes the plaintext password before persisting. A duplicate
// email is not pre-checked; the storage layer's uniqueness constraint
// rejects it and the error propagates unchanged.
func (s *Service) Create(ctx context.Context, u *models.User) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.Password = string(hashed)

	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns (nil, nil) when the user does not exist.
func (s *Service) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmail returns (nil, nil) when the user does not exist.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Update applies only the fields present in data. An email collision with
// another user surfaces as the storage layer's duplicate-key error.
func (s *Service) Update(ctx context.Context, id uint, data UpdateInput) (*models.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
	}

	if data.Fullname != nil {
		existing.Fullname = *data.Fullname
	}
	if data.Email != nil {
		existing.Email = *data.Email
	}
	if data.Phone != nil {
		existing.Phone = *data.Phone
	}
	if data.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.Password = string(hashed)
	}
	if data.Role != nil {
		existing.Role = *data.Role
	}

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}
