package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mrlokans/passmanager/internal/database"
	"github.com/mrlokans/passmanager/internal/entities"
)

// UserStore defines the interface for user data access.
// CreateUser must return database.ErrDuplicate when the email is taken.
type UserStore interface {
	CreateUser(ctx context.Context, user *entities.User) error
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserByID(ctx context.Context, id string) (*entities.User, error)
}

// Service handles registration, login and user lookup.
type Service struct {
	users  UserStore
	hasher *Hasher

	// dummyHash is compared against when the email is unknown so both login
	// failure paths cost one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string
}

// NewService creates a new authentication service.
func NewService(users UserStore, hasher *Hasher) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates input, hashes the password and creates the user.
func (s *Service) Register(ctx context.Context, name, email, password string) (*entities.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrRegisterFieldsRequired
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return nil, err
		}
		return nil, storageError(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	// No existence pre-check: the unique index is the only source of conflicts.
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, storageError(err)
	}
	return user, nil
}

// Authenticate validates credentials and returns the user.
// Unknown email and wrong password both return ErrInvalidCredentials.
// A whitespace-only email counts as present and fails the lookup.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, ErrLoginFieldsRequired
	}
	email = NormalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			s.hasher.Verify(password, s.dummy())
			return nil, ErrInvalidCredentials
		}
		return nil, storageError(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID re-fetches the canonical user record.
func (s *Service) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError(err)
	}
	return user, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("dummy-password-for-timing")
	})
	return s.dummyHash
}
