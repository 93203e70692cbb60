package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"eventbackend/internal/models"
)

type CheckInRepository interface {
	Create(checkIn *models.CheckIn) error
	GetByUserAndTalk(userID, talkID int64) (*models.CheckIn, error)
	ListByUser(userID int64) ([]*models.CheckIn, error)
	DeleteByUser(userID int64) error
}

type checkInRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCheckInRepository(db *sqlx.DB, logger *zap.Logger) CheckInRepository {
	return &checkInRepository{db: db, logger: logger}
}

func (r *checkInRepository) Create(checkIn *models.CheckIn) error {
	query := `INSERT INTO check_ins (user_id, talk_id, checked_in_at) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowx(query, checkIn.UserID, checkIn.TalkID, checkIn.CheckedInAt).Scan(&checkIn.ID)
}

func (r *checkInRepository) GetByUserAndTalk(userID, talkID int64) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	query := `SELECT id, user_id, talk_id, checked_in_at FROM check_ins WHERE user_id = $1 AND talk_id = $2`
	err := r.db.Get(&checkIn, query, userID, talkID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &checkIn, nil
}

func (r *checkInRepository) ListByUser(userID int64) ([]*models.CheckIn, error) {
	var checkIns []*models.CheckIn
	query := `SELECT id, user_id, talk_id, checked_in_at FROM check_ins WHERE user_id = $1 ORDER BY id`
	err := r.db.Select(&checkIns, query, userID)
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) DeleteByUser(userID int64) error {
	query := `DELETE FROM check_ins WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
