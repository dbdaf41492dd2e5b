package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"schooladmin/internal/config"
)

// chdirTemp moves the test into a scratch directory so godotenv only sees
// the .env staged there, and restores everything afterwards.
func chdirTemp(t *testing.T, keys ...string) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))

	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		os.Chdir(wd)
		for _, k := range keys {
			os.Unsetenv(k)
		}
		config.Load()
	})
	return dir
}

func TestLoadReadsDotenv(t *testing.T) {
	dir := chdirTemp(t, "DB_HOST", "AUTH_MODE")
	env := "DB_HOST=from-dotenv\nAUTH_MODE=bcrypt\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644))

	assert.NoError(t, config.Load())
	assert.Equal(t, "from-dotenv", config.DBHost, ".env values must reach the config")
	assert.Equal(t, "bcrypt", config.AuthMode)
}

func TestLoadDefaultsWithoutDotenv(t *testing.T) {
	chdirTemp(t, "DB_HOST", "PORT", "AUTH_MODE")

	assert.NoError(t, config.Load())
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, "3001", config.Port)
	assert.Equal(t, "plain", config.AuthMode)
}

func TestEnvironmentBeatsDotenv(t *testing.T) {
	dir := chdirTemp(t, "DB_HOST")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_HOST=from-dotenv\n"), 0644))
	os.Setenv("DB_HOST", "from-env")

	assert.NoError(t, config.Load())
	assert.Equal(t, "from-env", config.DBHost, "a set environment variable is not overridden by .env")
}
