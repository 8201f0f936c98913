// Package config loads capview settings.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults ([Default])
//  2. A TOML file, by default $XDG_CONFIG_HOME/capview/config.toml
//  3. Environment variables, optionally read from a .env file
//
// Example file:
//
//	[render]
//	width = 800
//	height = 240
//	formats = ["svg", "png"]
//
//	[theme]
//	outline = "#333333"
//
//	[server]
//	addr = ":8080"
//	allowed_origins = ["http://localhost:5173"]
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//	prefix = "staging"
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/pipeline"
	"github.com/matzehuels/capview/pkg/render/train"
)

// Environment variables read by [Load].
const (
	EnvAddr      = "CAPVIEW_ADDR"
	EnvRedisAddr = "CAPVIEW_REDIS_ADDR"
	EnvCache     = "CAPVIEW_CACHE"
	EnvPort      = "PORT"
)

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds every capview setting.
type Config struct {
	Render RenderConfig `toml:"render"`
	Theme  ThemeConfig  `toml:"theme"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// RenderConfig holds the defaults for rendering commands.
type RenderConfig struct {
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Formats []string `toml:"formats"`
	Scale   float64  `toml:"scale"`
}

// ThemeConfig holds drawing colors as hex strings. Empty fields keep the
// default color.
type ThemeConfig struct {
	Outline   string `toml:"outline"`
	Figure    string `toml:"figure"`
	Badge     string `toml:"badge"`
	Text      string `toml:"text"`
	TextOnRed string `toml:"text_on_red"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	TTL           string `toml:"ttl"`
	Prefix        string `toml:"prefix"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:   pipeline.DefaultWidth,
			Height:  pipeline.DefaultHeight,
			Formats: []string{pipeline.FormatSVG},
			Scale:   pipeline.DefaultScale,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			TTL:       "168h",
		},
	}
}

// DefaultPath returns the config file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "capview", "config.toml"), nil
}

// Load reads the config file at path, applies environment overrides and
// validates the result. An empty path means [DefaultPath], which may be
// missing. An explicit path must exist.
func Load(path string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.readFile(path, explicit); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string, mustExist bool) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !mustExist {
		return nil
	}
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeNotFound, "config file %s not found", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return c.Decode(data)
}

// Decode merges TOML data over the current values.
func (c *Config) Decode(data []byte) error {
	if err := toml.Unmarshal(data, c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	return nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv(EnvPort); port != "" {
		c.Server.Addr = ":" + port
	}
	if addr := os.Getenv(EnvAddr); addr != "" {
		c.Server.Addr = addr
	}
	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		c.Cache.RedisAddr = addr
	}
	if backend := os.Getenv(EnvCache); backend != "" {
		c.Cache.Backend = backend
	}
}

// Validate checks every section and returns the first problem as an
// INVALID_CONFIG error.
func (c *Config) Validate() error {
	if err := errors.ValidateBounds(c.Render.Width, c.Render.Height); err != nil {
		return invalid(err, "render")
	}
	for _, f := range c.Render.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return invalid(err, "render.formats")
		}
	}
	if !(c.Render.Scale > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "render.scale must be positive, got %v", c.Render.Scale)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendNone, BackendFile, BackendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be none, file or redis, got %q", c.Cache.Backend)
	}
	if _, err := c.Cache.Expiry(); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr is empty")
	}
	return nil
}

func invalid(err error, section string) error {
	return errors.New(errors.ErrCodeInvalidConfig, "%s: %s", section, errors.UserMessage(err))
}

// Resolve returns the theme these colors describe, or nil when no color
// is set.
func (t ThemeConfig) Resolve() (*train.Theme, error) {
	if t == (ThemeConfig{}) {
		return nil, nil
	}
	theme := train.DefaultTheme()
	fields := []struct {
		name string
		hex  string
		dst  *canvas.Color
	}{
		{"outline", t.Outline, &theme.Outline},
		{"figure", t.Figure, &theme.Figure},
		{"badge", t.Badge, &theme.Badge},
		{"text", t.Text, &theme.Text},
		{"text_on_red", t.TextOnRed, &theme.TextOnRed},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := canvas.Hex(f.hex)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme.%s: invalid color %q", f.name, f.hex)
		}
		*f.dst = c
	}
	return &theme, nil
}

// Expiry parses the cache TTL. An empty TTL means no expiry.
func (c CacheConfig) Expiry() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "cache.ttl: invalid duration %q", c.TTL)
	}
	return d, nil
}

// PipelineOptions returns pipeline options for loads using the render and
// theme settings.
func (c *Config) PipelineOptions(loads []float64) (pipeline.Options, error) {
	theme, err := c.Theme.Resolve()
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Loads:   loads,
		Width:   c.Render.Width,
		Height:  c.Render.Height,
		Formats: append([]string(nil), c.Render.Formats...),
		Scale:   c.Render.Scale,
		Theme:   theme,
	}, nil
}

// String renders the config as TOML.
func (c *Config) String() string {
	data, err := toml.Marshal(c)
	if err != nil {
		return strconv.Quote(err.Error())
	}
	return string(data)
}
