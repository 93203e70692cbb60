package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"eventbackend/internal/models"
)

type SpeakerRepository interface {
	Create(speaker *models.Speaker) error
	GetByID(id int64) (*models.Speaker, error)
	List() ([]*models.Speaker, error)
	Delete(id int64) (bool, error)
}

type speakerRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSpeakerRepository(db *sqlx.DB, logger *zap.Logger) SpeakerRepository {
	return &speakerRepository{db: db, logger: logger}
}

func (r *speakerRepository) Create(speaker *models.Speaker) error {
	query := `INSERT INTO speakers (name, background) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowx(query, speaker.Name, speaker.Background).Scan(&speaker.ID)
}

func (r *speakerRepository) GetByID(id int64) (*models.Speaker, error) {
	var speaker models.Speaker
	query := `SELECT id, name, background FROM speakers WHERE id = $1`
	err := r.db.Get(&speaker, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &speaker, nil
}

func (r *speakerRepository) List() ([]*models.Speaker, error) {
	var speakers []*models.Speaker
	query := `SELECT id, name, background FROM speakers ORDER BY id`
	err := r.db.Select(&speakers, query)
	if err != nil {
		return nil, err
	}
	return speakers, nil
}

func (r *speakerRepository) Delete(id int64) (bool, error) {
	query := `DELETE FROM speakers WHERE id = $1`
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
