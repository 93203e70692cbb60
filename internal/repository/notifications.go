package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"eventbackend/internal/models"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id int64) (*models.Notification, error)
	ListByUser(userID int64) ([]*models.Notification, error)
	MarkRead(id int64) error
	DeleteByUser(userID int64) error
}

type notificationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewNotificationRepository(db *sqlx.DB, logger *zap.Logger) NotificationRepository {
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	query := `INSERT INTO notifications (user_id, title, message, read) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowx(query, notification.UserID, notification.Title, notification.Message,
		notification.Read).Scan(&notification.ID)
}

func (r *notificationRepository) GetByID(id int64) (*models.Notification, error) {
	var notification models.Notification
	query := `SELECT id, user_id, title, message, read FROM notifications WHERE id = $1`
	err := r.db.Get(&notification, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) ListByUser(userID int64) ([]*models.Notification, error) {
	var notifications []*models.Notification
	query := `SELECT id, user_id, title, message, read FROM notifications WHERE user_id = $1 ORDER BY id DESC`
	err := r.db.Select(&notifications, query, userID)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(id int64) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *notificationRepository) DeleteByUser(userID int64) error {
	query := `DELETE FROM notifications WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
