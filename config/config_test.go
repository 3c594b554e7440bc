package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
	assert.NoError(t, Check(&conf))
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.toml")
	content := `
logging_level = "DEBUG"
geometry = "NEXT_DEMO"
macros = ["a.mac", "b.mac"]
region = "KAPTON"
vertices = 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("NEXUS_VERTICES", "7")
	t.Setenv("NEXUS_SEED", "42")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.LoggingLevel)
	assert.Equal(t, "NEXT_DEMO", conf.Geometry)
	assert.Equal(t, []string{"a.mac", "b.mac"}, conf.Macros)
	assert.Equal(t, "KAPTON", conf.Region)
	assert.Equal(t, 7, conf.Vertices)
	assert.Equal(t, int64(42), conf.Seed)
}

func TestCheck(t *testing.T) {
	t.Run("BadLevel", func(t *testing.T) {
		conf := Default()
		conf.LoggingLevel = "verbose"
		assert.Error(t, Check(&conf))
	})
	t.Run("NoVertices", func(t *testing.T) {
		conf := Default()
		conf.Vertices = 0
		assert.Error(t, Check(&conf))
	})
	t.Run("BadOutput", func(t *testing.T) {
		conf := Default()
		conf.Output = "yaml"
		assert.Error(t, Check(&conf))
	})
}
