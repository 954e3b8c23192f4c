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

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Render.Style)
	assert.Equal(t, 80, cfg.Render.WordWrap)
	assert.Empty(t, cfg.Catalog.Extra)
	assert.Empty(t, cfg.Tags.Extra)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfc-glossary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  file: /tmp/glossary.log
render:
  style: light
  word_wrap: 100
catalog:
  extra:
    - site-terms.yaml
    - team-terms.yaml
`), 0o644))

	cfg, err := Load(New(path))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "light", cfg.Render.Style)
	assert.Equal(t, 100, cfg.Render.WordWrap)
	assert.Equal(t, []string{"site-terms.yaml", "team-terms.yaml"}, cfg.Catalog.Extra)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfc-glossary.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[render]
style = "notty"
word_wrap = 0
`), 0o644))

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "notty", cfg.Render.Style)
	assert.Equal(t, 0, cfg.Render.WordWrap)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RFCGLOSSARY_RENDER_STYLE", "dracula")
	t.Setenv("RFCGLOSSARY_LOG_JSON", "true")

	cfg, err := LoadWithViper(New(""))
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Render.Style)
	assert.True(t, cfg.Log.JSON)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Log:    LogConfig{Level: "info"},
			Render: RenderConfig{Style: "auto", WordWrap: 80},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty level means info", mutate: func(c *Config) { c.Log.Level = "" }},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "chatty" }, wantErr: true},
		{name: "unknown style", mutate: func(c *Config) { c.Render.Style = "neon" }, wantErr: true},
		{name: "negative wrap", mutate: func(c *Config) { c.Render.WordWrap = -1 }, wantErr: true},
		{name: "zero wrap", mutate: func(c *Config) { c.Render.WordWrap = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerOptions(t *testing.T) {
	cfg := Config{Log: LogConfig{Level: "warn", JSON: true}}

	opts, enabled := cfg.LoggerOptions(false)
	assert.True(t, enabled)
	assert.True(t, opts.JSON)
	assert.Empty(t, opts.OutputPaths)

	_, enabled = cfg.LoggerOptions(true)
	assert.False(t, enabled, "interactive without a log file discards")

	cfg.Log.File = "/tmp/x.log"
	opts, enabled = cfg.LoggerOptions(true)
	assert.True(t, enabled)
	assert.Equal(t, []string{"/tmp/x.log"}, opts.OutputPaths)
}
