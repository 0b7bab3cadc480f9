package todo

// Repository defines the contract for todo storage operations. Every
// operation except Create is scoped by both the todo id and the owning
// user id.
type Repository interface {
	Create(t *Todo) error
	GetByID(id, userID string) (*Todo, error)
	ListByUser(userID string) ([]Todo, error)
	Update(t *Todo) error
	Delete(id, userID string) error
	StatsByUser(userID string) (*Stats, error)
}
