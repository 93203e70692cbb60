package service

import (
	"fmt"

	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

type NotificationService interface {
	Send(title, message string, userID *int64) error
	ListForUser(userID int64) ([]*models.Notification, error)
	MarkRead(notificationID, userID int64) error
}

type notificationService struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	logger        *zap.Logger
}

func NewNotificationService(notifications repository.NotificationRepository,
	users repository.UserRepository, logger *zap.Logger) NotificationService {
	return &notificationService{notifications: notifications, users: users, logger: logger}
}

// Send delivers to one user when userID is set, otherwise broadcasts to every
// non-admin account.
func (s *notificationService) Send(title, message string, userID *int64) error {
	if userID != nil {
		user, err := s.users.GetByID(*userID)
		if err != nil {
			return fmt.Errorf("failed to retrieve user: %w", err)
		}
		if user == nil {
			return ErrUserNotFound
		}
		notification := &models.Notification{UserID: *userID, Title: title, Message: message}
		if err := s.notifications.Create(notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		return nil
	}

	users, err := s.users.ListByRole(models.RoleUser)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, user := range users {
		notification := &models.Notification{UserID: user.ID, Title: title, Message: message}
		if err := s.notifications.Create(notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
	}

	s.logger.Info("Broadcast notification sent", zap.String("title", title), zap.Int("recipients", len(users)))
	return nil
}

func (s *notificationService) ListForUser(userID int64) ([]*models.Notification, error) {
	notifications, err := s.notifications.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags a notification as read. Notifications owned by someone else
// look the same as missing ones.
func (s *notificationService) MarkRead(notificationID, userID int64) error {
	notification, err := s.notifications.GetByID(notificationID)
	if err != nil {
		return fmt.Errorf("failed to retrieve notification: %w", err)
	}
	if notification == nil || notification.UserID != userID {
		return ErrNotificationNotFound
	}
	if err := s.notifications.MarkRead(notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
