package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	input := []byte(`
name: Ada Lovelace
token: secret
base-url: https://canvas.example.edu/api/v1/
timeout: 10s
output-dir: notes
`)
	require.NoError(t, os.WriteFile(path, input, 0o600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", cfg.Name)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "https://canvas.example.edu/api/v1", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultLabGroup, cfg.LabGroup)
	assert.Equal(t, "notes", cfg.OutputDir)
	assert.NotEmpty(t, cfg.DB)
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("name", "Ada")
	v.Set("token", "t")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestLoad_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]string
		err    error
	}{
		{"no name", map[string]string{"token": "t"}, ErrMissingName},
		{"blank name", map[string]string{"name": "  ", "token": "t"}, ErrMissingName},
		{"no token", map[string]string{"name": "Ada"}, ErrMissingToken},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			for key, value := range c.values {
				v.Set(key, value)
			}

			_, err := Load(v)
			assert.ErrorIs(t, err, c.err)
			assert.Contains(t, err.Error(), Format)
		})
	}
}
