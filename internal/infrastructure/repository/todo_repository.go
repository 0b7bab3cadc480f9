package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"gotodo/internal/domain/todo"
	"gotodo/internal/infrastructure/database"
)

type todoRepository struct {
	db *database.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *database.DB) todo.Repository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(t *todo.Todo) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt

	_, err := r.db.Exec(
		`INSERT INTO todos (id, title, description, completed, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.Completed, t.UserID, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *todoRepository) GetByID(id, userID string) (*todo.Todo, error) {
	t := &todo.Todo{}
	var description sql.NullString
	err := r.db.QueryRow(
		`SELECT id, title, description, completed, user_id, created_at, updated_at
		 FROM todos WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&t.ID, &t.Title, &description, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, todo.ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Description = description.String
	return t, nil
}

func (r *todoRepository) ListByUser(userID string) ([]todo.Todo, error) {
	rows, err := r.db.Query(
		`SELECT id, title, description, completed, user_id, created_at, updated_at
		 FROM todos WHERE user_id = ? ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		var t todo.Todo
		var description sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &description, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Description = description.String
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *todoRepository) Update(t *todo.Todo) error {
	t.UpdatedAt = time.Now()
	result, err := r.db.Exec(
		`UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		t.Title, t.Description, t.Completed, t.UpdatedAt, t.ID, t.UserID,
	)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}

func (r *todoRepository) Delete(id, userID string) error {
	result, err := r.db.Exec(`DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}

func (r *todoRepository) StatsByUser(userID string) (*todo.Stats, error) {
	stats := &todo.Stats{}
	err := r.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM todos WHERE user_id = ?`, userID,
	).Scan(&stats.Total, &stats.Completed)
	if err != nil {
		return nil, err
	}
	stats.Remaining = stats.Total - stats.Completed
	return stats, nil
}
