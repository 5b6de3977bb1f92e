package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hongminglow/user-service/internal/logger"
	"github.com/hongminglow/user-service/internal/models"
	"github.com/hongminglow/user-service/internal/storage"
)

var (
	_ storage.UserStore = (*Store)(nil)
	_ storage.Pinger    = (*Store)(nil)
)

// Store fronts another UserStore with a redis read-through cache. Writes go
// to the backing store first and are then copied into redis. Redis failures
// are logged and never fail a request.
type Store struct {
	next   storage.UserStore
	client *redis.Client
	ttl    time.Duration
}

// NewClient builds a redis client from a redis:// URL.
func NewClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// New wraps next with a cache backed by client.
func New(next storage.UserStore, client *redis.Client, ttl time.Duration) *Store {
	return &Store{next: next, client: client, ttl: ttl}
}

// Key returns the redis key holding the user with the given id.
func Key(id int64) string {
	return fmt.Sprintf("users:%d", id)
}

// Save writes through to the backing store and refreshes the cached copy.
func (s *Store) Save(ctx context.Context, user models.User) (models.User, error) {
	saved, err := s.next.Save(ctx, user)
	if err != nil {
		if user.ID != 0 && (errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrNotFound)) {
			s.evict(ctx, user.ID)
		}
		return models.User{}, err
	}
	s.put(ctx, saved)
	return saved, nil
}

// FindByID serves from redis when possible and fills the cache on a miss.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	raw, err := s.client.Get(ctx, Key(id)).Bytes()
	switch {
	case err == nil:
		var user models.User
		if err := json.Unmarshal(raw, &user); err == nil {
			return user, nil
		}
		logger.Warn("cache: discarding undecodable entry for user %d", id)
		s.evict(ctx, id)
	case errors.Is(err, redis.Nil):
	default:
		logger.Warn("cache: get user %d: %v", id, err)
	}

	user, err := s.next.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	s.put(ctx, user)
	return user, nil
}

// Ping checks redis and, when supported, the backing store.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	if p, ok := s.next.(storage.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close releases the redis client. The backing store is closed by its owner.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) put(ctx context.Context, user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		logger.Warn("cache: encode user %d: %v", user.ID, err)
		return
	}
	if err := s.client.Set(ctx, Key(user.ID), raw, s.ttl).Err(); err != nil {
		logger.Warn("cache: set user %d: %v", user.ID, err)
	}
}

func (s *Store) evict(ctx context.Context, id int64) {
	if err := s.client.Del(ctx, Key(id)).Err(); err != nil {
		logger.Warn("cache: evict user %d: %v", id, err)
	}
}
