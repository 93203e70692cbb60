package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"eventbackend/internal/models"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	GetByUserAndTalk(userID, talkID int64) (*models.Rating, error)
	ListByUser(userID int64) ([]*models.Rating, error)
	ListByTalk(talkID int64) ([]*models.Rating, error)
	DeleteByUser(userID int64) error
}

type ratingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRatingRepository(db *sqlx.DB, logger *zap.Logger) RatingRepository {
	return &ratingRepository{db: db, logger: logger}
}

func (r *ratingRepository) Create(rating *models.Rating) error {
	query := `INSERT INTO ratings (user_id, talk_id, score, comment) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowx(query, rating.UserID, rating.TalkID, rating.Score, rating.Comment).Scan(&rating.ID)
}

func (r *ratingRepository) GetByUserAndTalk(userID, talkID int64) (*models.Rating, error) {
	var rating models.Rating
	query := `SELECT id, user_id, talk_id, score, comment FROM ratings WHERE user_id = $1 AND talk_id = $2`
	err := r.db.Get(&rating, query, userID, talkID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) ListByUser(userID int64) ([]*models.Rating, error) {
	var ratings []*models.Rating
	query := `SELECT id, user_id, talk_id, score, comment FROM ratings WHERE user_id = $1 ORDER BY id`
	err := r.db.Select(&ratings, query, userID)
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) ListByTalk(talkID int64) ([]*models.Rating, error) {
	var ratings []*models.Rating
	query := `SELECT id, user_id, talk_id, score, comment FROM ratings WHERE talk_id = $1 ORDER BY id`
	err := r.db.Select(&ratings, query, talkID)
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) DeleteByUser(userID int64) error {
	query := `DELETE FROM ratings WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
