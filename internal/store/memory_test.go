package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoelSantos-JS/alidash-migrate/internal/model"
)

func TestMemoryStoreUserLookup(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, found, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, found)

	created, err := s.CreateUser(ctx, &model.User{
		Email:     "a@x.com",
		Name:      "Ana",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, found, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ana", got.Name)
}

func TestMemoryStoreExternalIDBackfillOnly(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, &model.User{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, s.SetUserExternalID(ctx, created.ID, "fb-123"))
	got, _, _ := s.GetUserByEmail(ctx, "a@x.com")
	assert.Equal(t, "fb-123", got.ExternalID)

	// A second set must not overwrite the existing value.
	require.NoError(t, s.SetUserExternalID(ctx, created.ID, "fb-456"))
	got, _, _ = s.GetUserByEmail(ctx, "a@x.com")
	assert.Equal(t, "fb-123", got.ExternalID)
}

func TestMemoryStoreProductByName(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, found, err := s.GetProductByName(ctx, "user-1", "Widget")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.CreateProduct(ctx, &model.Product{UserID: "user-1", Name: "Widget"}))

	_, found, err = s.GetProductByName(ctx, "user-1", "Widget")
	require.NoError(t, err)
	assert.True(t, found)

	// Same name for a different user is not found.
	_, found, err = s.GetProductByName(ctx, "user-2", "Widget")
	require.NoError(t, err)
	assert.False(t, found)
}
