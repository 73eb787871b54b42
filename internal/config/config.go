package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"notary-profile/pkg/directory"
)

// Config aggregates application configuration values.
type Config struct {
	Directory DirectoryConfig
	HTTP      HTTPConfig
	Logging   LoggingConfig
	// ShowSampleOnEmpty attaches the labelled sample profile to the empty state.
	ShowSampleOnEmpty bool
	// ChromePath overrides the browser used for PDF export.
	ChromePath string
}

type DirectoryConfig struct {
	URL      string
	Username string
}

type HTTPConfig struct {
	Port int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

var ErrNoUsername = errors.New("directory username is required (DIRECTORY_USERNAME, config file or --username)")

const (
	defaultPort          = 8080
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Default returns the configuration used when neither a file nor the
// environment sets a value.
func Default() Config {
	return Config{
		Directory: DirectoryConfig{URL: directory.DefaultEndpoint},
		HTTP:      HTTPConfig{Port: defaultPort},
		Logging:   LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
	}
}

// Load applies, in order, the defaults, the optional YAML file at path and
// the environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings a fetch needs.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Directory.Username) == "" {
		return ErrNoUsername
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.HTTP.Port)
	}
	return nil
}

func applyFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config.load %s: %w", path, err)
	}
	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return fmt.Errorf("config.load %s: %w", path, err)
	}

	if dto.Directory.URL != "" {
		cfg.Directory.URL = dto.Directory.URL
	}
	if dto.Directory.Username != "" {
		cfg.Directory.Username = dto.Directory.Username
	}
	if dto.Server.Port != nil {
		cfg.HTTP.Port = *dto.Server.Port
	}
	if dto.Logging.Level != "" {
		cfg.Logging.Level = dto.Logging.Level
	}
	if dto.Logging.Format != "" {
		cfg.Logging.Format = dto.Logging.Format
	}
	if dto.ShowSampleOnEmpty != nil {
		cfg.ShowSampleOnEmpty = *dto.ShowSampleOnEmpty
	}
	if dto.ChromePath != "" {
		cfg.ChromePath = dto.ChromePath
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Directory.URL = valueOrDefault("DIRECTORY_API_URL", cfg.Directory.URL)
	cfg.Directory.Username = valueOrDefault("DIRECTORY_USERNAME", cfg.Directory.Username)
	cfg.Logging.Level = valueOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LOG_FORMAT", cfg.Logging.Format)
	cfg.ChromePath = valueOrDefault("CHROME_PATH", cfg.ChromePath)

	port, err := parsePort("PORT", cfg.HTTP.Port)
	if err != nil {
		return err
	}
	cfg.HTTP.Port = port

	sample, err := parseBool("SHOW_SAMPLE_ON_EMPTY", cfg.ShowSampleOnEmpty)
	if err != nil {
		return err
	}
	cfg.ShowSampleOnEmpty = sample
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return b, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
