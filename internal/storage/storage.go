package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/user-service/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict indicates the record changed since it was read.
var ErrConflict = errors.New("record version conflict")

// UserStore captures the persistence operations the user service relies on.
//
// Save inserts a user whose ID is zero and assigns it a fresh ID. Any other
// user is written over the stored row with the same ID, provided its Version
// still matches; the returned user carries the bumped version.
type UserStore interface {
	Save(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
}

// Pinger is implemented by stores that can report backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
