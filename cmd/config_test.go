package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"pizzashop/cmd"
	"pizzashop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "RANDOM_SEED", "KITCHEN_SCHEDULE", "BULK_THRESHOLD",
		"FAMILY_THRESHOLD", "LOG_LEVEL", "LOG_FILE", "CATALOG_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults without an env file", func(t *testing.T) {
		clearEnv(t)

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, cmd.Config{
			HTTPPort:        cmd.DefaultHTTPPort,
			KitchenSchedule: cmd.DefaultKitchenSchedule,
			BulkThreshold:   cmd.DefaultBulkThreshold,
			LogLevel:        cmd.DefaultLogLevel,
		}, cfg)
	})

	t.Run("should read the env file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte(
			"HTTP_PORT=9090\nRANDOM_SEED=42\nBULK_THRESHOLD=3\nFAMILY_THRESHOLD=8\nLOG_LEVEL=debug\n",
		), 0o600))

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, uint64(42), cfg.RandomSeed)
		assert.Equal(t, 3, cfg.BulkThreshold)
		assert.Equal(t, 8, cfg.FamilyThreshold)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("should prefer the environment over the file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_PORT", "7070")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\n"), 0o600))

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.HTTPPort)
	})

	t.Run("should reject malformed numbers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BULK_THRESHOLD", "five")
		t.Setenv("RANDOM_SEED", "-1")

		_, err := cmd.LoadConfig("")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "BULK_THRESHOLD")
		assert.Contains(t, err.Error(), "RANDOM_SEED")
	})
}
