package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
dataset: snapshots/world.json
tiles:
  key: abc
  zoom: 4
preferences:
  backend: redis
  redis:
    addr: redis:6379
    hash: viewer
`))
	require.NoError(t, err)

	assert.Equal(t, "snapshots/world.json", cfg.Dataset)
	assert.Equal(t, "abc", cfg.Tiles.Key)
	assert.Equal(t, 4, cfg.Tiles.ZoomLimit)
	assert.Equal(t, DefaultTileURL, cfg.Tiles.URL)
	assert.Equal(t, BackendRedis, cfg.Preferences.Backend)
	assert.Equal(t, "redis:6379", cfg.Preferences.Redis.Addr)
	assert.Equal(t, "viewer", cfg.Preferences.Redis.Hash)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"backend":   "preferences:\n  backend: sqlite\n",
		"zoom":      "tiles:\n  zoom: 30\n",
		"dataset":   "dataset: \"\"\n",
		"path":      "preferences:\n  backend: file\n  path: \"\"\n",
		"malformed": "tiles: [",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestConfigIsYAMLOnly(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf(Config{}),
		reflect.TypeOf(Tiles{}),
		reflect.TypeOf(Preferences{}),
		reflect.TypeOf(Redis{}),
	} {
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			assert.Empty(t, f.Tag.Get("json"), "%s.%s", typ.Name(), f.Name)
			assert.NotEmpty(t, f.Tag.Get("yaml"), "%s.%s", typ.Name(), f.Name)
		}
	}
}
