package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/evanschultz/rfc-glossary/pkg/article"
	"github.com/evanschultz/rfc-glossary/pkg/logger"
)

// EnvPrefix is prepended to environment overrides, e.g.
// RFCGLOSSARY_RENDER_STYLE=light.
const EnvPrefix = "RFCGLOSSARY"

// Config is the full runtime configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Render  RenderConfig  `mapstructure:"render"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Tags    TagsConfig    `mapstructure:"tags"`
}

type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
	// File receives log output. The browser needs it because bubbletea owns
	// the terminal; when empty the browser discards logs.
	File string `mapstructure:"file"`
}

type RenderConfig struct {
	Style    string `mapstructure:"style"`
	WordWrap int    `mapstructure:"word_wrap"`
}

type CatalogConfig struct {
	// Extra definition lists appended after the built-in ones, in order.
	Extra []string `mapstructure:"extra"`
}

type TagsConfig struct {
	Extra string `mapstructure:"extra"`
}

// SetDefaults registers the default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("render.style", "auto")
	v.SetDefault("render.word_wrap", 80)

	v.SetDefault("catalog.extra", []string{})
	v.SetDefault("tags.extra", "")
}

// New returns a viper instance with defaults, environment binding and, if
// configFile is empty, the standard search path.
func New(configFile string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		return v
	}

	v.SetConfigName("rfc-glossary")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "rfc-glossary"))
	}
	return v
}

// Load reads the config file (if any) into v and decodes it. A missing file
// in the search path is not an error; a missing explicit file is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	} else {
		logger.Logger.Debugw("config file loaded", logger.FieldSource, v.ConfigFileUsed())
	}
	return LoadWithViper(v)
}

// LoadWithViper decodes and validates without touching the filesystem.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.WithHint(errors.Wrapf(err, "log.level %q", c.Log.Level), "use debug, info, warn or error")
	}
	if !slices.Contains(article.Styles, c.Render.Style) {
		return errors.WithHintf(errors.Newf("render.style %q is not supported", c.Render.Style),
			"supported styles: %s", strings.Join(article.Styles, ", "))
	}
	if c.Render.WordWrap < 0 {
		return errors.Newf("render.word_wrap must not be negative, got %d", c.Render.WordWrap)
	}
	return nil
}

// LoggerOptions converts the log section for logger.Initialize. When
// interactive is true output goes to log.file, or nowhere if that is empty.
func (c *Config) LoggerOptions(interactive bool) (logger.Options, bool) {
	opts := logger.Options{JSON: c.Log.JSON, Level: c.Log.Level}
	if c.Log.File != "" {
		opts.OutputPaths = []string{c.Log.File}
	} else if interactive {
		return opts, false
	}
	return opts, true
}
