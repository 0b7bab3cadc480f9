package todo

import (
	"strings"
	"unicode/utf8"

	domain "gotodo/internal/domain/todo"
)

// Service defines the business logic for todo operations. The caller's
// user id is threaded through every method; the repository filters by it
// so one user can never touch another user's todos.
type Service interface {
	List(userID string) ([]domain.Todo, error)
	Create(userID string, req domain.CreateTodoRequest) (*domain.Todo, error)
	Get(id, userID string) (*domain.Todo, error)
	Update(id, userID string, req domain.UpdateTodoRequest) (*domain.Todo, error)
	Toggle(id, userID string) (*domain.Todo, error)
	Delete(id, userID string) error
	Stats(userID string) (*domain.Stats, error)
}

type service struct {
	repo domain.Repository
}

// NewService creates a new todo service
func NewService(repo domain.Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(userID string) ([]domain.Todo, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Create(userID string, req domain.CreateTodoRequest) (*domain.Todo, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	t := &domain.Todo{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Completed:   req.Completed,
		UserID:      userID,
	}

	if err := s.repo.Create(t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *service) Get(id, userID string) (*domain.Todo, error) {
	return s.repo.GetByID(id, userID)
}

func (s *service) Update(id, userID string, req domain.UpdateTodoRequest) (*domain.Todo, error) {
	t, err := s.repo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		t.Title = title
	}
	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
	}
	if req.Completed != nil {
		t.Completed = *req.Completed
	}

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *service) Toggle(id, userID string) (*domain.Todo, error) {
	t, err := s.repo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}

	t.Completed = !t.Completed

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *service) Delete(id, userID string) error {
	return s.repo.Delete(id, userID)
}

func (s *service) Stats(userID string) (*domain.Stats, error) {
	return s.repo.StatsByUser(userID)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.ErrTitleEmpty
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return "", domain.ErrTitleTooLong
	}
	return title, nil
}
