package auth

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"gotodo/internal/domain/user"
)

// Service defines the authentication service interface
type Service interface {
	Register(req user.RegisterRequest) (*user.User, string, error)
	Login(req user.LoginRequest) (*user.User, string, error)
	VerifyToken(token string) (*Claims, error)
	GetUser(id string) (*user.User, error)
}

type service struct {
	userRepo user.Repository
	tokens   *TokenService
}

// NewService creates a new auth service
func NewService(userRepo user.Repository, tokens *TokenService) Service {
	return &service{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user and returns it along with a session token.
func (s *service) Register(req user.RegisterRequest) (*user.User, string, error) {
	if !isValidEmail(req.Email) {
		return nil, "", user.ErrInvalidEmail
	}

	if len(req.Password) < 6 {
		return nil, "", user.ErrInvalidPassword
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, "", user.ErrEmailExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	newUser := &user.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(newUser); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(newUser.ID, newUser.Email)
	if err != nil {
		return nil, "", err
	}

	return newUser, token, nil
}

// Login verifies credentials and returns the user with a fresh session
// token. Unknown email and wrong password both yield
// user.ErrInvalidCredentials so accounts cannot be enumerated.
func (s *service) Login(req user.LoginRequest) (*user.User, string, error) {
	u, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, "", user.ErrInvalidCredentials
	}

	if !checkPassword(u.PasswordHash, req.Password) {
		return nil, "", user.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

func (s *service) VerifyToken(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}

func (s *service) GetUser(id string) (*user.User, error) {
	return s.userRepo.GetByID(id)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}
