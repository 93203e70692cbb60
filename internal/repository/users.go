package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"eventbackend/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ListByRole(role string) ([]*models.User, error)
	UpdateName(id int64, name string) error
	UpdateEmail(id int64, email string) error
	UpdatePasswordHash(id int64, hash string) error
	Delete(id int64) error
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(user *models.User) error {
	query := `INSERT INTO users (name, email, password_hash, role, cpf, enrollment)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowx(query, user.Name, user.Email, user.PasswordHash, user.Role, user.CPF, user.Enrollment).Scan(&user.ID)
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, password_hash, role, cpf, enrollment FROM users WHERE id = $1`
	err := r.db.Get(&user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, password_hash, role, cpf, enrollment FROM users WHERE email = $1`
	err := r.db.Get(&user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListByRole(role string) ([]*models.User, error) {
	var users []*models.User
	query := `SELECT id, name, email, password_hash, role, cpf, enrollment FROM users WHERE role = $1 ORDER BY id`
	err := r.db.Select(&users, query, role)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateName(id int64, name string) error {
	query := `UPDATE users SET name = $1 WHERE id = $2`
	_, err := r.db.Exec(query, name, id)
	return err
}

func (r *userRepository) UpdateEmail(id int64, email string) error {
	query := `UPDATE users SET email = $1 WHERE id = $2`
	_, err := r.db.Exec(query, email, id)
	return err
}

func (r *userRepository) UpdatePasswordHash(id int64, hash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`
	_, err := r.db.Exec(query, hash, id)
	return err
}

func (r *userRepository) Delete(id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
