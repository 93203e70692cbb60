package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"eventbackend/internal/models"
)

type TalkRepository interface {
	Create(talk *models.Talk) error
	GetByID(id int64) (*models.Talk, error)
	List() ([]*models.Talk, error)
	Delete(id int64) (bool, error)
}

type talkRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTalkRepository(db *sqlx.DB, logger *zap.Logger) TalkRepository {
	return &talkRepository{db: db, logger: logger}
}

func (r *talkRepository) Create(talk *models.Talk) error {
	query := `INSERT INTO talks (title, description, date, start_time, end_time, location, speaker_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowx(query, talk.Title, talk.Description, talk.Date, talk.StartTime,
		talk.EndTime, talk.Location, talk.SpeakerID).Scan(&talk.ID)
}

func (r *talkRepository) GetByID(id int64) (*models.Talk, error) {
	var talk models.Talk
	query := `SELECT id, title, description, date, start_time, end_time, location, speaker_id FROM talks WHERE id = $1`
	err := r.db.Get(&talk, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &talk, nil
}

func (r *talkRepository) List() ([]*models.Talk, error) {
	var talks []*models.Talk
	query := `SELECT id, title, description, date, start_time, end_time, location, speaker_id
	          FROM talks ORDER BY date, start_time, id`
	err := r.db.Select(&talks, query)
	if err != nil {
		return nil, err
	}
	return talks, nil
}

func (r *talkRepository) Delete(id int64) (bool, error) {
	query := `DELETE FROM talks WHERE id = $1`
	res, err := r.db.Exec(query, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
