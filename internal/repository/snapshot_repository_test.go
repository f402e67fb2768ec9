package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySnapshotRepository()

	_, found, err := repo.Get(ctx, "organizationData")
	require.NoError(t, err)
	require.False(t, found)

	blob := []byte(`{"organizationData":[]}`)
	require.NoError(t, repo.Put(ctx, "organizationData", blob))
	blob[0] = 'x'

	value, found, err := repo.Get(ctx, "organizationData")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `{"organizationData":[]}`, string(value))

	value[0] = 'y'
	again, _, _ := repo.Get(ctx, "organizationData")
	require.Equal(t, byte('{'), again[0])

	require.NoError(t, repo.Ping(ctx))
}

func TestPostgresSnapshotRepository_NoPool(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresSnapshotRepository(nil)

	_, _, err := repo.Get(ctx, "organizationData")
	require.ErrorIs(t, err, errPoolNotConfigured)
	require.ErrorIs(t, repo.Put(ctx, "organizationData", nil), errPoolNotConfigured)
	require.ErrorIs(t, repo.Ping(ctx), errPoolNotConfigured)
}
