package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"sabor-oriental/internal/domain"
	"sabor-oriental/internal/storage"
)

var (
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AccountService struct {
	users UserRepository
}

func NewAccountService(users UserRepository) *AccountService {
	return &AccountService{users: users}
}

func (s *AccountService) Register(ctx context.Context, user *domain.User) error {
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return ErrMissingFields
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	if err := s.users.InsertUser(user); err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Authenticate looks the account up by email and compares the stored
// password literally. User records persist passwords as plain text, so
// there is no hash to verify against.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers()
}

func (s *AccountService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.GetUser(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *AccountService) UpdateUser(ctx context.Context, id int, user *domain.User) error {
	err := s.users.UpdateUser(id, user)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	return err
}

func (s *AccountService) DeleteUser(ctx context.Context, id int) error {
	err := s.users.DeleteUser(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	return err
}

// EnsureDefaultAdmin seeds an administrator account on first boot so the
// management views are reachable on a fresh database.
func (s *AccountService) EnsureDefaultAdmin(ctx context.Context) error {
	exists, err := s.users.HasAdmin()
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		return nil
	}

	admin := &domain.User{
		Name:     "Administrador",
		Email:    "admin@sabororiental.com",
		Password: "admin1234",
		Role:     domain.RoleAdmin,
	}
	if err := s.users.InsertUser(admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	log.Printf("[account] seeded default admin account %s", admin.Email)
	return nil
}
