package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordfix/internal/customdict"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordfix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "frequency_dictionary_en_82_765.txt", cfg.FrequencyPath)
	assert.Equal(t, 2, cfg.Corrector.MaxEditDistance)
	assert.Equal(t, 7, cfg.Corrector.PrefixLength)
	assert.Equal(t, customdict.DriverNone, cfg.Store.Driver)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, `
frequency_dictionary: data/freq.txt
vocabulary: data/en_words_cleaned.txt
corrector:
  max_edit_distance: 1
store:
  driver: sqlite
  sqlite:
    path: /var/lib/wordfix/words.db
http_addr: ":9090"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/freq.txt", cfg.FrequencyPath)
	assert.Equal(t, "data/en_words_cleaned.txt", cfg.VocabularyPath)
	assert.Equal(t, 1, cfg.Corrector.MaxEditDistance)
	// unset fields keep their defaults
	assert.Equal(t, 7, cfg.Corrector.PrefixLength)
	assert.Equal(t, customdict.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/var/lib/wordfix/words.db", cfg.Store.SQLite.Path)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DICTIONARY_PATH", "/data/freq.txt")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_ADDR", ":7000")

	cfg, err := Load(writeFile(t, "frequency_dictionary: ignored.txt\n"))
	require.NoError(t, err)
	assert.Equal(t, "/data/freq.txt", cfg.FrequencyPath)
	assert.Equal(t, customdict.DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "redis:6380", cfg.Store.Redis.Addr)
	assert.Equal(t, 3, cfg.Store.Redis.DB)
	assert.Equal(t, ":7000", cfg.HTTPAddr)
}

func TestEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("REDIS_DB", "three")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Store.Redis.DB)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.FrequencyPath = ""
	cfg.Store.Driver = "etcd"
	cfg.Corrector.PrefixLength = 1
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "frequency_dictionary")
	assert.ErrorContains(t, err, "etcd")
	assert.ErrorContains(t, err, "prefix_length")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "corrector: [not, a, map]\n"))
	assert.Error(t, err)
}
