package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ZenKakzi/scholar-book-flow/internal/logger"
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
	"github.com/ZenKakzi/scholar-book-flow/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Navigation targets callers rely on after login and logout. Navigation
// itself stays a caller concern.
const (
	LandingAdmin   = "/admin/dashboard"
	LandingStudent = "/student/dashboard"
	PathBorrowed   = "/student/borrowed"
	PathLogin      = "/"
)

// Store owns the current authenticated identity. Credentials are checked
// against a static roster through a pluggable CredentialChecker.
type Store struct {
	mu      sync.Mutex
	roster  []models.User
	current *models.User

	storage storage.Storage
	checker CredentialChecker
	logger  logger.Logger

	// Simulated network round-trip applied to every login attempt.
	delay time.Duration
}

func New(ctx context.Context, st storage.Storage, logger logger.Logger, checker CredentialChecker, delay time.Duration) *Store {
	s := &Store{
		roster:  defaultRoster(),
		storage: st,
		checker: checker,
		logger:  logger,
		delay:   delay,
	}

	s.current = s.restore(ctx)

	return s
}

// SetRoster replaces the static roster. Meant for wiring a roster whose
// passwords match a non-plaintext checker.
func (s *Store) SetRoster(roster []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = roster
}

func (s *Store) restore(ctx context.Context) *models.User {
	payload, err := s.storage.Get(ctx, storage.KeyUser)

	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn(fmt.Sprintf("error reading stored identity: %v", err), "service", "session")
		}
		return nil
	}

	var user models.User

	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		s.logger.Warn(fmt.Sprintf("error parsing stored identity, treating as logged out: %v", err), "service", "session")
		return nil
	}

	return &user
}

// Login validates the credentials after the simulated delay. On success the
// identity is set and persisted; on failure it is left unchanged.
func (s *Store) Login(ctx context.Context, email string, password string) (*models.User, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.roster {
		if u.Email != email {
			continue
		}

		if err := s.checker.Check(password, u.Password); err != nil {
			return nil, ErrInvalidCredentials
		}

		user := u
		s.current = &user

		payload, err := json.Marshal(&user)

		if err != nil {
			s.logger.Error(fmt.Sprintf("error marshalling identity: %v", err), "service", "session")
			return &user, nil
		}

		if err := s.storage.Set(ctx, storage.KeyUser, string(payload)); err != nil {
			s.logger.Error(fmt.Sprintf("error persisting identity: %v", err), "service", "session")
		}

		return &user, nil
	}

	return nil, ErrInvalidCredentials
}

// Logout clears the identity and erases every persisted key, catalogue
// state included. The next start reseeds from the built-in defaults.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	for _, key := range []string{storage.KeyUser, storage.KeyBooks, storage.KeyBorrowedBooks} {
		if err := s.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("error clearing persisted state: %w", err)
		}
	}

	return nil
}

// Current returns the authenticated identity, or nil when logged out.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	user := *s.current
	return &user
}

func (s *Store) UserById(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.roster {
		if u.Id == id {
			user := u
			return &user, nil
		}
	}

	return nil, ErrUserNotFound
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.roster {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}

	return nil, ErrUserNotFound
}

// LandingPath maps a role to its post-login landing page.
func LandingPath(role string) string {
	if role == models.RoleAdmin {
		return LandingAdmin
	}
	return LandingStudent
}
