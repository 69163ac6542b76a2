package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Catalog)
	assert.Equal(t, "all", cfg.DefaultFilter)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Empty(t, cfg.Filters)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `catalog: ./apis
filters: [all, product, deprecated]
theme: dark
log:
  level: debug
  file: apicat.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("APICAT_THEME", "light")
	t.Setenv("APICAT_LOG_MAX_BACKUPS", "7")

	v := viper.New()
	Configure(v, path)
	require.NoError(t, ReadFile(v))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "./apis", cfg.Catalog)
	assert.Equal(t, []string{"all", "product", "deprecated"}, cfg.Filters)
	assert.Equal(t, "light", cfg.Theme, "env overrides file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "apicat.log", cfg.Log.File)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
}

func TestReadFile_Missing(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	v := viper.New()
	Configure(v, "")
	assert.NoError(t, ReadFile(v))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad theme", mutate: func(c *Config) { c.Theme = "neon" }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: true},
		{name: "upper level", mutate: func(c *Config) { c.Log.Level = "WARN" }},
		{name: "negative backups", mutate: func(c *Config) { c.Log.MaxBackups = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInit(t *testing.T) {
	root := t.TempDir()
	cfg := Default()
	cfg.Catalog = "apis"
	cfg.Theme = "dracula"

	res, err := Init(root, cfg, false)
	require.NoError(t, err)
	assert.Len(t, res.Created, 2)

	v := viper.New()
	Configure(v, filepath.Join(root, FolderName, FileName))
	require.NoError(t, ReadFile(v))
	got, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "apis", got.Catalog)
	assert.Equal(t, "dracula", got.Theme)

	// A second run keeps the existing files.
	cfg.Theme = "light"
	res, err = Init(root, cfg, false)
	require.NoError(t, err)
	assert.Empty(t, res.Created)

	res, err = Init(root, cfg, true)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, FolderName, FileName)}, res.Created)

	assert.Equal(t, []string{filepath.Join(root, FolderName, ".env")}, EnvFiles(root))
}

func TestInit_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Theme = "neon"
	_, err := Init(t.TempDir(), cfg, false)
	assert.Error(t, err)
}
