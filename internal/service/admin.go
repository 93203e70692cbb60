package service

import (
	"fmt"

	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

type AdminService interface {
	CreateAdmin(name, email, password string) (*models.User, error)
	ListAdmins() ([]*models.User, error)
	DeleteAdmin(id int64) error
	ListUsers() ([]*models.User, error)
}

type adminService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewAdminService(users repository.UserRepository, logger *zap.Logger) AdminService {
	return &adminService{users: users, logger: logger}
}

func (s *adminService) CreateAdmin(name, email, password string) (*models.User, error) {
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}
	if err := s.users.Create(admin); err != nil {
		s.logger.Error("Failed to create admin", zap.Error(err))
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("Admin created", zap.Int64("user_id", admin.ID))
	return admin, nil
}

func (s *adminService) ListAdmins() ([]*models.User, error) {
	admins, err := s.users.ListByRole(models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// DeleteAdmin removes an admin account. Ids that exist but belong to regular
// users are reported as not found rather than deleted.
func (s *adminService) DeleteAdmin(id int64) error {
	user, err := s.users.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil || user.Role != models.RoleAdmin {
		return ErrAdminNotFound
	}
	if err := s.users.Delete(id); err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	return nil
}

func (s *adminService) ListUsers() ([]*models.User, error) {
	users, err := s.users.ListByRole(models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
