// Package config handles awchub configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Defaults applied to empty settings.
const (
	DefaultContentDir       = "content"
	DefaultStaticDir        = "static"
	DefaultListen           = "127.0.0.1:8080"
	DefaultSiteTitle        = "AWC Hub"
	DefaultBackgroundPrefix = "tournament_bg_"
)

// Environment variables that override file settings.
const (
	EnvContentDir = "AWCHUB_CONTENT_DIR"
	EnvStaticDir  = "AWCHUB_STATIC_DIR"
	EnvListen     = "AWCHUB_LISTEN"
	EnvSiteTitle  = "AWCHUB_SITE_TITLE"
)

// FileName is the project-local config file name.
const FileName = "awchub.toml"

// Config represents the awchub configuration.
type Config struct {
	// ContentDir holds the tournaments/, players/, levels/ and news/ directories.
	ContentDir string `toml:"content_dir"`

	// StaticDir holds images and other files served under /static/.
	StaticDir string `toml:"static_dir"`

	// Listen is the address `awchub serve` binds to.
	Listen string `toml:"listen"`

	// SiteTitle is shown in the navigation bar and page titles.
	SiteTitle string `toml:"site_title"`

	// BackgroundPrefix is prepended to a tournament's year to derive its
	// background style class.
	BackgroundPrefix string `toml:"background_prefix"`

	// Cache keeps loaded collections in memory between requests (default: true).
	Cache *bool `toml:"cache"`

	// LiveReload pushes a reload to open pages when content changes under
	// `serve --watch` (default: true).
	LiveReload *bool `toml:"live_reload"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	// Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// CacheEnabled reports whether collections are cached between requests.
func (c *Config) CacheEnabled() bool {
	return c.Cache == nil || *c.Cache
}

// LiveReloadEnabled reports whether watch mode pushes reloads to browsers.
func (c *Config) LiveReloadEnabled() bool {
	return c.LiveReload == nil || *c.LiveReload
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.ContentDir) == "" {
		c.ContentDir = DefaultContentDir
	}
	if strings.TrimSpace(c.StaticDir) == "" {
		c.StaticDir = DefaultStaticDir
	}
	if strings.TrimSpace(c.Listen) == "" {
		c.Listen = DefaultListen
	}
	if strings.TrimSpace(c.SiteTitle) == "" {
		c.SiteTitle = DefaultSiteTitle
	}
	if c.BackgroundPrefix == "" {
		c.BackgroundPrefix = DefaultBackgroundPrefix
	}
}

// applyEnv overrides settings from the environment.
func (c *Config) applyEnv(getenv func(string) string) {
	overrides := []struct {
		key string
		dst *string
	}{
		{EnvContentDir, &c.ContentDir},
		{EnvStaticDir, &c.StaticDir},
		{EnvListen, &c.Listen},
		{EnvSiteTitle, &c.SiteTitle},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(getenv(o.key)); v != "" {
			*o.dst = v
		}
	}
}

// Load loads the configuration from the default location, then applies a
// .env file in the working directory (if any) and environment overrides.
// Returns a default config if no config file exists.
func Load() (*Config, error) {
	return LoadWithEnv(DefaultPath(), ".env")
}

// LoadWithEnv loads configPath (missing is fine), the optional dotenv file,
// and environment overrides, in that order.
func LoadWithEnv(configPath, envFile string) (*Config, error) {
	cfg := &Config{}
	if configPath != "" {
		loaded, err := decode(configPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if loaded != nil {
			cfg = loaded
		}
	}

	if envFile != "" {
		// godotenv.Load never overrides variables already set in the process.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg.applyEnv(os.Getenv)
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	cfg, err := decode(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func decode(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ./awchub.toml first, then ~/.config/awchub/config.toml (XDG style).
func DefaultPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "awchub", "config.toml")
	}

	// Last resort fallback
	return FileName
}
