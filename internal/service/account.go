package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

type AccountService interface {
	Profile(userID int64) (*models.User, error)
	ChangeName(userID int64, newName string) (*models.User, error)
	ChangeEmail(userID int64, currentPassword, newEmail string) (*models.User, error)
	ChangePassword(userID int64, currentPassword, newPassword string) error
	DeleteAccount(userID int64, currentPassword string) error
}

type accountService struct {
	users         repository.UserRepository
	checkIns      repository.CheckInRepository
	ratings       repository.RatingRepository
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

func NewAccountService(users repository.UserRepository, checkIns repository.CheckInRepository,
	ratings repository.RatingRepository, notifications repository.NotificationRepository,
	logger *zap.Logger) AccountService {
	return &accountService{
		users:         users,
		checkIns:      checkIns,
		ratings:       ratings,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *accountService) Profile(userID int64) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *accountService) ChangeName(userID int64, newName string) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, ErrEmptyName
	}

	if err := s.users.UpdateName(userID, newName); err != nil {
		s.logger.Error("Failed to update name", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update name: %w", err)
	}
	user.Name = newName
	return user, nil
}

func (s *accountService) ChangeEmail(userID int64, currentPassword, newEmail string) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	existing, err := s.users.GetByEmail(newEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil && existing.ID != userID {
		return nil, ErrEmailTaken
	}

	if err := s.users.UpdateEmail(userID, newEmail); err != nil {
		s.logger.Error("Failed to update email", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update email: %w", err)
	}
	user.Email = newEmail
	return user, nil
}

func (s *accountService) ChangePassword(userID int64, currentPassword, newPassword string) error {
	user, err := s.Profile(userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(userID, hash); err != nil {
		s.logger.Error("Failed to update password", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// DeleteAccount removes the user and everything attached to them: check-ins,
// ratings and notifications.
func (s *accountService) DeleteAccount(userID int64, currentPassword string) error {
	user, err := s.Profile(userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	if err := s.checkIns.DeleteByUser(userID); err != nil {
		return fmt.Errorf("failed to delete check-ins: %w", err)
	}
	if err := s.ratings.DeleteByUser(userID); err != nil {
		return fmt.Errorf("failed to delete ratings: %w", err)
	}
	if err := s.notifications.DeleteByUser(userID); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	if err := s.users.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("Account deleted", zap.Int64("user_id", userID))
	return nil
}
