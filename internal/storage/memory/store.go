package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hongminglow/user-service/internal/models"
	"github.com/hongminglow/user-service/internal/storage"
)

var (
	_ storage.UserStore = (*Store)(nil)
	_ storage.Pinger    = (*Store)(nil)
)

// Store keeps users in process memory. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]models.User
	now    func() time.Time
}

// NewUserStore returns an empty in-memory store.
func NewUserStore() *Store {
	return &Store{
		users: make(map[int64]models.User),
		now:   time.Now,
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// Save inserts a new user or updates an existing one under a version check.
func (s *Store) Save(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	if user.ID == 0 {
		s.nextID++
		user.ID = s.nextID
		user.Version = 1
		user.CreatedAt = now
		user.UpdatedAt = now
		s.users[user.ID] = user
		return user, nil
	}

	current, ok := s.users[user.ID]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	if current.Version != user.Version {
		return models.User{}, storage.ErrConflict
	}
	user.Version++
	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

// FindByID fetches a user by its identifier.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}
