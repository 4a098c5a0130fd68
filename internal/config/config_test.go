package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "db_user: craneworks\ndb_name: craneworks\nsession_secret: secret\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SESSION_SECRET", "secret")

	cfg := MustConfig()

	assert.Equal(t, "localhost:4002", cfg.Address)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3*time.Minute, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)

	// Batch printing budgets two minutes per request; the server must not
	// cut the response off before that.
	assert.GreaterOrEqual(t, cfg.WriteTimeout, 2*time.Minute)
}
