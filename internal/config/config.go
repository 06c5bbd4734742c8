package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all braindash configuration. It is resolved once at startup
// and treated as read-only afterwards; components receive the slice of it
// they need by value.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	AI       AIConfig       `yaml:"ai"`
}

type ServerConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AIConfig selects the categorizer implementation. When GeminiKey is empty
// the local heuristic is used. Endpoint overrides the Gemini base URL and
// exists for tests.
type AIConfig struct {
	GeminiKey string `yaml:"gemini_key"`
	Model     string `yaml:"model"`
	Endpoint  string `yaml:"endpoint"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "0.0.0.0",
			Port: 8000,
		},
		Database: DatabaseConfig{
			Path: "", // resolved at runtime via store.DefaultDBPath()
		},
		AI: AIConfig{
			Model: "gemini-1.5-flash",
		},
	}
}

// DefaultPath returns the default config file path: ~/.braindash/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".braindash", "config.yaml"), nil
}

// Load reads a yaml config file over the defaults. A missing file is not an
// error; the defaults are returned unchanged. Environment overrides are
// applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			c.Server.Port = n
		}
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.AI.GeminiKey = key
	}
	if path := os.Getenv("BRAINDASH_DB"); path != "" {
		c.Database.Path = path
	}
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
