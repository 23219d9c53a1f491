package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates all runtime settings required by the client.
type Config struct {
	AppName string
	API     APIConfig
	Store   StoreConfig
	Logger  LoggerConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StoreConfig struct {
	Path    string
	Disable bool
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// fileConfig is the shape of the optional ~/.config/linkfeed/config.yaml.
// Environment variables override anything set here.
type fileConfig struct {
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
	Store    string `yaml:"store"`
	LogLevel string `yaml:"log_level"`
	LogMode  string `yaml:"log_encoding"`
}

// Load reads configuration from the optional config file and environment
// variables (optionally .env) and applies sane defaults so the client can run
// against a local gateway with no setup at all.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	file := loadFile(configFilePath())

	cfg := &Config{
		AppName: "linkfeed",
		API: APIConfig{
			BaseURL: getString("LINKFEED_API_URL", fallback(file.BaseURL, "http://localhost:8080/api/v1")),
			Timeout: getDuration("LINKFEED_TIMEOUT", fileDuration(file.Timeout, 15*time.Second)),
		},
		Store: StoreConfig{
			Path:    getString("LINKFEED_STORE", fallback(file.Store, defaultStorePath())),
			Disable: getBool("LINKFEED_NO_PERSIST", false),
		},
		Logger: LoggerConfig{
			Level:    getString("LINKFEED_LOG_LEVEL", fallback(file.LogLevel, "warn")),
			Encoding: getString("LINKFEED_LOG_ENCODING", fallback(file.LogMode, "console")),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base url must not be empty")
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func configFilePath() string {
	if p := os.Getenv("LINKFEED_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "linkfeed", "config.yaml")
}

func loadFile(path string) fileConfig {
	var out fileConfig
	if path == "" {
		return out
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return out
	}
	// a malformed config file is ignored, not fatal
	_ = yaml.Unmarshal(data, &out)
	return out
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./session.db"
	}
	return filepath.Join(home, ".config", "linkfeed", "session.db")
}

func fallback(val, def string) string {
	if val != "" {
		return val
	}
	return def
}

func fileDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	if parsed, err := time.ParseDuration(val); err == nil {
		return parsed
	}
	return def
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
