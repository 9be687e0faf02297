package service

import (
	"context"
	"errors"

	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrEmailTaken indicates a signup attempt with an already-registered email.
var ErrEmailTaken = errors.New("email already registered")

// Postgres unique_violation.
const uniqueViolationCode = "23505"

// AdminService handles admin account operations.
type AdminService struct {
	adminRepo *repository.AdminRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// Register creates a new admin account. The password hash must already be
// computed by the caller. Duplicate emails map to ErrEmailTaken; the
// database constraint guarantees no partial record persists.
func (s *AdminService) Register(ctx context.Context, admin *model.Admin) error {
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByEmail retrieves an admin by email.
func (s *AdminService) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return s.adminRepo.GetByEmail(ctx, email)
}

// GetByID retrieves an admin by ID.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}
