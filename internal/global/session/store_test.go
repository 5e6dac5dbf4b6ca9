package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	a := NewToken()
	b := NewToken()
	assert.Len(t, a, 40)
	assert.NotEqual(t, a, b)
}

func TestMemoryStoreGetOrCreateReutilizaToken(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)

	// segundo login devolve o mesmo token vigente
	second, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// outro usuário recebe token próprio
	other, err := store.GetOrCreate(ctx, 2)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestMemoryStoreResolve(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.GetOrCreate(ctx, 42)
	require.NoError(t, err)

	userID, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	_, ok, err = store.Resolve(ctx, "tokeninexistente")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.GetOrCreate(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, token))

	_, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	// após o logout um novo login emite token novo
	renewed, err := store.GetOrCreate(ctx, 3)
	require.NoError(t, err)
	assert.NotEqual(t, token, renewed)
}
