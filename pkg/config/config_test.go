package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/capview/pkg/canvas"
	"github.com/matzehuels/capview/pkg/errors"
	"github.com/matzehuels/capview/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAddr, EnvRedisAddr, EnvCache, EnvPort} {
		t.Setenv(k, "")
	}
	// Keep the default path away from the developer's real config.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Render.Width != pipeline.DefaultWidth {
		t.Errorf("width = %v, want default %v", cfg.Render.Width, pipeline.DefaultWidth)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[render]
width = 800
formats = ["svg", "png"]

[theme]
outline = "#333333"

[server]
addr = ":9000"

[cache]
backend = "none"
ttl = "1h"
prefix = "test"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Width != 800 || cfg.Render.Height != pipeline.DefaultHeight {
		t.Errorf("render bounds = %vx%v, want 800x%v", cfg.Render.Width, cfg.Render.Height, pipeline.DefaultHeight)
	}
	if len(cfg.Render.Formats) != 2 {
		t.Errorf("formats = %v", cfg.Render.Formats)
	}
	if cfg.Server.Addr != ":9000" || cfg.Cache.Backend != BackendNone || cfg.Cache.Prefix != "test" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if ttl, _ := cfg.Cache.Expiry(); ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}

	opts, err := cfg.PipelineOptions([]float64{0.5})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Theme == nil || opts.Theme.Outline.Hex() != "#333333" {
		t.Errorf("theme outline not applied: %+v", opts.Theme)
	}
	if opts.Theme.Figure != canvas.DarkGray {
		t.Errorf("unset theme colors should keep defaults")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[render\nwidth = 1"},
		{"negative width", "[render]\nwidth = -1"},
		{"bad format", "[render]\nformats = [\"gif\"]"},
		{"bad scale", "[render]\nscale = -2"},
		{"bad color", "[theme]\nbadge = \"chartreuse\""},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"bad ttl", "[cache]\nttl = \"forever\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "3000")
	t.Setenv(EnvRedisAddr, "redis:6379")
	t.Setenv(EnvCache, "redis")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("addr = %q, want :3000", cfg.Server.Addr)
	}
	if cfg.Cache.RedisAddr != "redis:6379" || cfg.Cache.Backend != BackendRedis {
		t.Errorf("cache = %+v", cfg.Cache)
	}

	// CAPVIEW_ADDR wins over PORT.
	t.Setenv(EnvAddr, "127.0.0.1:7000")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("addr = %q, want 127.0.0.1:7000", cfg.Server.Addr)
	}
}

func TestThemeResolveEmpty(t *testing.T) {
	theme, err := ThemeConfig{}.Resolve()
	if err != nil || theme != nil {
		t.Errorf("Resolve() = %v, %v; want nil, nil", theme, err)
	}
}

func TestString(t *testing.T) {
	cfg := Default()
	back := &Config{}
	if err := back.Decode([]byte(cfg.String())); err != nil {
		t.Fatalf("Decode(String()) error: %v", err)
	}
	if back.Server.Addr != cfg.Server.Addr || back.Cache.TTL != cfg.Cache.TTL {
		t.Errorf("String() did not round-trip: %+v", back)
	}
}

func TestSampleConfig(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join("..", "..", "examples", "config.toml"))
	if err != nil {
		t.Fatalf("Load(sample) error: %v", err)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, BackendFile)
	}
	theme, err := cfg.Theme.Resolve()
	if err != nil || theme == nil {
		t.Fatalf("Resolve() = %v, %v", theme, err)
	}
	if ttl, err := cfg.Cache.Expiry(); err != nil || ttl != 168*time.Hour {
		t.Errorf("Expiry() = %v, %v; want 168h", ttl, err)
	}
}
