package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("ORG_KEY", "")
	t.Setenv("PROFILE_SKILLS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	require.Equal(t, "organizationData", cfg.Organization.Key)
	require.Equal(t, []string{}, cfg.Profile.Skills)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("ORG_KEY", "snapshot")
	t.Setenv("PROFILE_SKILLS", "Go, Chess ,,Piano")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, StoreBackendPostgres, cfg.Store.Backend)
	require.Equal(t, "snapshot", cfg.Organization.Key)
	require.Equal(t, []string{"Go", "Chess", "Piano"}, cfg.Profile.Skills)
	require.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "etcd")

	_, err := Load()
	require.Error(t, err)
}
