package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihorchekh/sonic-utilities/internal/conf"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tunnelstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	c, err := conf.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", c.DB.Addr)
	assert.Equal(t, 2, c.DB.Index)
	assert.Equal(t, os.TempDir(), c.Cache.Dir)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
db:
  addr: 10.0.0.5:6400
  index: 3
cache:
  dir: /var/cache/tunnelstat
`)
	c, err := conf.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5:6400", c.DB.Addr)
	assert.Equal(t, 3, c.DB.Index)
	assert.Equal(t, "/var/cache/tunnelstat", c.Cache.Dir)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	t.Run("BadAddr", func(t *testing.T) {
		t.Parallel()
		_, err := conf.Load(writeConfig(t, "db:\n  addr: nocolon\n"))
		assert.ErrorContains(t, err, "host:port")
	})

	t.Run("BadIndex", func(t *testing.T) {
		t.Parallel()
		_, err := conf.Load(writeConfig(t, "db:\n  index: 99\n"))
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("BadYAML", func(t *testing.T) {
		t.Parallel()
		_, err := conf.Load(writeConfig(t, "db: [broken"))
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		t.Parallel()
		_, err := conf.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
