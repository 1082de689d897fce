package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/ericogr/duel-arena/internal/constants"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Skills  SkillsConfig  `toml:"skills"`
	Render  RenderConfig  `toml:"render"`
	Auth    AuthConfig    `toml:"auth"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Address string `toml:"address" env:"DUEL_ADDR"`
}

type StorageConfig struct {
	DBPath string `toml:"db_path" env:"DUEL_DB"`
	// Cache keeps loaded battles in memory in front of sqlite.
	Cache bool `toml:"cache" env:"DUEL_CACHE"`
}

type SkillsConfig struct {
	Path string `toml:"path" env:"DUEL_SKILLS"`
}

type RenderConfig struct {
	Language string `toml:"language" env:"DUEL_LANG"` // "en" or "zh"
}

type AuthConfig struct {
	// SessionSecret signs actor tokens. Only read from the environment.
	SessionSecret string        `toml:"-" env:"SESSION_SECRET"`
	TokenTTL      time.Duration `toml:"token_ttl" env:"DUEL_TOKEN_TTL"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"DUEL_LOG_LEVEL"`
	Format string `toml:"format" env:"DUEL_LOG_FORMAT"` // "json" or "console"
}

// LoadDefault loads the file named by DUEL_CONFIG, or ./duel.toml when unset.
// Only the default path may be missing.
func LoadDefault() (*Config, error) {
	if path := strings.TrimSpace(os.Getenv(constants.EnvConfigPath)); path != "" {
		return Load(path)
	}
	cfg, err := Load(constants.DefaultConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fromEnv(defaults())
	}
	return cfg, err
}

// Load reads the TOML file at path over the defaults and then applies
// environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fromEnv(cfg)
}

func fromEnv(cfg *Config) (*Config, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return errors.New("config: server.address is empty")
	}
	if strings.TrimSpace(c.Storage.DBPath) == "" {
		return errors.New("config: storage.db_path is empty")
	}
	if strings.TrimSpace(c.Skills.Path) == "" {
		return errors.New("config: skills.path is empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server:  ServerConfig{Address: constants.DefaultAddress},
		Storage: StorageConfig{DBPath: constants.DefaultDBPath, Cache: true},
		Skills:  SkillsConfig{Path: constants.DefaultSkillsPath},
		Render:  RenderConfig{Language: constants.DefaultLanguage},
		Auth:    AuthConfig{TokenTTL: 30 * 24 * time.Hour},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}
