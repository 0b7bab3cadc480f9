package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"gotodo/internal/domain/user"
	"gotodo/internal/infrastructure/database"
)

type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt

	_, err := r.db.Exec(
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return user.ErrEmailExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(id string) (*user.User, error) {
	return r.getBy(`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = ?`, id)
}

func (r *userRepository) GetByEmail(email string) (*user.User, error) {
	return r.getBy(`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = ?`, email)
}

func (r *userRepository) getBy(query string, arg any) (*user.User, error) {
	u := &user.User{}
	err := r.db.QueryRow(query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
