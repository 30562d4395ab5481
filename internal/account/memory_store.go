package account

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is the in-process Store used by tests and by redis-less
// development setups. The single mutex makes conflicting creates
// linearizable the same way the postgres unique indexes do.
type MemoryStore struct {
	mu         sync.Mutex
	byID       map[string]Account
	byUsername map[string]string // LOWER(username) -> id
	byEmail    map[string]string // LOWER(email) -> id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:       make(map[string]Account),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

func (s *MemoryStore) Create(_ context.Context, a Account) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	usernameKey := strings.ToLower(a.Username)
	emailKey := strings.ToLower(a.Email)

	if _, ok := s.byUsername[usernameKey]; ok {
		return Account{}, ErrUsernameTaken
	}
	if _, ok := s.byEmail[emailKey]; ok {
		return Account{}, ErrEmailTaken
	}

	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()

	s.byID[a.ID] = a
	s.byUsername[usernameKey] = a.ID
	s.byEmail[emailKey] = a.ID

	return a, nil
}

func (s *MemoryStore) FindByUsername(_ context.Context, username string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUsername[strings.ToLower(username)]
	if !ok {
		return Account{}, ErrNotFound
	}
	return s.byID[id], nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byID[id]
	if !ok {
		return Account{}, ErrNotFound
	}
	return a, nil
}
