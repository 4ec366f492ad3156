package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/difysjs/docsite/config/server"
	"github.com/difysjs/docsite/config/site"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	ENV_PREFIX = "DOCSITE"

	DefaultConfigPath = "docsite.yaml"
)

var (
	LogConfigEnv  = ENV_PREFIX + "_LOG_CONFIG"
	LogLevelEnv   = ENV_PREFIX + "_LOG_LEVEL"
	ConfigPathEnv = ENV_PREFIX + "_CONFIG"
	EnvFileEnv    = ENV_PREFIX + "_ENV_FILE"
)

type Config struct {
	Env    Environment            `yaml:"-"` // only from the environment
	Site   site.SiteConfiguration `yaml:"site"`
	Server server.ServerConfig    `yaml:"server"`
}

func Defaults() *Config {
	return &Config{
		Env:    EnvProduction,
		Site:   site.Defaults(),
		Server: server.Defaults(),
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path and the DOCSITE_* environment. A missing file is not an error.
func Load(path string, now time.Time) (*Config, error) {
	log.Logger.Debug().Str("path", path).Msg("Configuration loading start")

	cfg := Defaults()
	if err := cfg.readFile(path); err != nil {
		return nil, err
	}

	env, err := LoadEnvMode()
	if err != nil {
		return nil, err
	}
	cfg.Env = env

	if err := cfg.Site.ApplyEnv(ENV_PREFIX); err != nil {
		return nil, err
	}
	if err := cfg.Server.ApplyEnv(ENV_PREFIX); err != nil {
		return nil, err
	}

	if err := cfg.TransformBeforeValidation(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.TransformAfterValidation(now); err != nil {
		return nil, err
	}

	cfg.logSummary()
	log.Logger.Info().Msg("Configuration loaded")
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Logger.Info().Str("path", path).Msg("no configuration file, using built-in site literals")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	log.Logger.Info().Str("path", path).Msg("configuration file read")
	return nil
}

// ConfigPath resolves the configuration file: flag, then DOCSITE_CONFIG,
// then DefaultConfigPath.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}
