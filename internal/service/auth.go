package service

import (
	"fmt"

	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

type AuthService interface {
	Register(name, email, password string, cpf, enrollment *string) (*models.User, error)
	Login(email, password string) (*models.User, error)
	BootstrapAdmin(name, email, password string) error
}

type authService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, logger *zap.Logger) AuthService {
	return &authService{users: users, logger: logger}
}

// Register creates a user with role "user". The duplicate-email pre-check is
// racy under concurrent requests; the unique index on users.email is the
// backstop, surfacing as a storage error from Create.
func (s *authService) Register(name, email, password string, cpf, enrollment *string) (*models.User, error) {
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		s.logger.Error("Failed to look up email", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		CPF:          cpf,
		Enrollment:   enrollment,
	}

	if err := s.users.Create(user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login returns the matching user. Unknown email and wrong password yield the
// same error so accounts cannot be enumerated.
func (s *authService) Login(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in", zap.Int64("user_id", user.ID))
	return user, nil
}

// BootstrapAdmin seeds the designated admin account at process start when it
// does not exist yet. Operational convenience, not part of the steady-state
// contract.
func (s *authService) BootstrapAdmin(name, email, password string) error {
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}
	if err := s.users.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	s.logger.Info("Bootstrap admin created", zap.String("email", email))
	return nil
}
