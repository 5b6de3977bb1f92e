package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/user-service/internal/models"
	"github.com/hongminglow/user-service/internal/storage"
)

// TestStoreIntegration exercises Save/FindByID against a live database.
func TestStoreIntegration(t *testing.T) {
	if os.Getenv("RUN_STORE_INTEGRATION") != "true" {
		t.Skip("set RUN_STORE_INTEGRATION=true to run this integration test")
	}

	for _, path := range []string{".env", "../.env", "../../.env", "../../../.env"} {
		_ = godotenv.Overload(path)
	}
	dbURL := os.Getenv("DATABASE_URL")
	require.NotEmpty(t, dbURL, "DATABASE_URL is required")

	ctx := context.Background()
	store, err := NewUserStore(ctx, dbURL)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Ping(ctx))

	suffix := time.Now().UnixNano()
	created, err := store.Save(ctx, models.User{
		Name:     "Ana",
		Email:    fmt.Sprintf("ana_%d@example.com", suffix),
		Password: "p1",
		IsActive: true,
		Document: "123",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.Version)

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, found.Email)

	found.IsActive = false
	updated, err := store.Save(ctx, found)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(2), updated.Version)

	_, err = store.Save(ctx, found)
	assert.ErrorIs(t, err, storage.ErrConflict)

	_, err = store.FindByID(ctx, -1)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.Save(ctx, models.User{ID: -1, Version: 1})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
