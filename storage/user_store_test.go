package storage

import (
	"testing"

	"caltrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIDOmitsPassword(t *testing.T) {
	store := NewUserStore(newTestDB(t))

	limit := 2000.0
	user := models.User{Email: "a@example.com", Password: "hash", FullName: "A", MaxCalorie: &limit}
	require.NoError(t, store.Create(&user))

	got, err := store.GetByID(user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Password)
	assert.Equal(t, "a@example.com", got.Email)
	require.NotNil(t, got.MaxCalorie)
	assert.Equal(t, 2000.0, *got.MaxCalorie)
}

func TestGetByEmail(t *testing.T) {
	store := NewUserStore(newTestDB(t))

	require.NoError(t, store.Create(&models.User{Email: "a@example.com", Password: "hash"}))

	got, err := store.GetByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.Password, "auth lookup needs the hash")

	_, err = store.GetByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDMissing(t *testing.T) {
	store := NewUserStore(newTestDB(t))

	_, err := store.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
