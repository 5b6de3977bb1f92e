package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/user-service/internal/models"
	"github.com/hongminglow/user-service/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage interfaces at compile time.
var (
	_ storage.UserStore = (*Store)(nil)
	_ storage.Pinger    = (*Store)(nil)
)

const userColumns = `id, name, email, password, is_active, document, version, created_at, updated_at`

// Store provides Postgres-backed persistence for users.
type Store struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a new Store and runs migrations.
func NewUserStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			is_active BOOLEAN NOT NULL,
			document TEXT NOT NULL,
			version BIGINT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`ALTER TABLE users ADD COLUMN IF NOT EXISTS version BIGINT NOT NULL DEFAULT 1;`,
		`ALTER TABLE users ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW();`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// Save inserts a new user or updates an existing one under a version check.
func (s *Store) Save(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == 0 {
		return s.insert(ctx, user)
	}
	return s.update(ctx, user)
}

func (s *Store) insert(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users (name, email, password, is_active, document)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query, user.Name, user.Email, user.Password, user.IsActive, user.Document)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (s *Store) update(ctx context.Context, user models.User) (models.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, password = $4, is_active = $5, document = $6,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $7
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.Password, user.IsActive, user.Document, user.Version)
	updated, err := scanUser(row)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, fmt.Errorf("update user %d: %w", user.ID, err)
	}

	// No row matched: either the user is gone or the version moved on.
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, user.ID).Scan(&exists); err != nil {
		return models.User{}, fmt.Errorf("check user %d: %w", user.ID, err)
	}
	if exists {
		return models.User{}, storage.ErrConflict
	}
	return models.User{}, storage.ErrNotFound
}

// FindByID fetches a user by its identifier.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, err
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.IsActive, &user.Document, &user.Version, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
