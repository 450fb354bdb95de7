package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/drafty/internal/domain/bracket"
	"github.com/riskibarqy/drafty/internal/platform/logging"
)

const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"

	DefaultConfigPath = "config.yaml"
	DefaultBaseURL    = "https://draft.premierleague.com/api/"
)

// Config stores runtime configuration for a pipeline run.
type Config struct {
	LeagueCode      string            `yaml:"league_code" validate:"required"`
	SeasonGameweeks int               `yaml:"season_gameweeks" validate:"gt=0"`
	Brackets        map[string][2]int `yaml:"brackets" validate:"required,min=1"`
	API             APIConfig         `yaml:"api"`
	Storage         StorageConfig     `yaml:"storage"`
	Paths           PathsConfig       `yaml:"paths"`
	Log             LogConfig         `yaml:"log"`
	Metrics         MetricsConfig     `yaml:"metrics"`

	// BracketList is Brackets ordered by start gameweek.
	BracketList []bracket.Bracket `yaml:"-"`
}

type APIConfig struct {
	BaseURL   string        `yaml:"base_url" validate:"required,url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" validate:"oneof=duckdb postgres"`
	DSN    string `yaml:"dsn" validate:"required"`
}

type PathsConfig struct {
	StagingDir string `yaml:"staging_dir" validate:"required"`
	ExportDir  string `yaml:"export_dir" validate:"required"`
	StateDir   string `yaml:"state_dir" validate:"required"`
}

type LogConfig struct {
	RawLevel   string        `yaml:"level"`
	Level      logging.Level `yaml:"-"`
	File       string        `yaml:"file"`
	MaxSizeMB  int           `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int           `yaml:"max_backups" validate:"gte=0"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

func Default() Config {
	return Config{
		SeasonGameweeks: 38,
		API: APIConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   30 * time.Second,
			UserAgent: "drafty/1.0",
		},
		Storage: StorageConfig{
			Driver: DriverDuckDB,
			DSN:    "drafty.db",
		},
		Paths: PathsConfig{
			StagingDir: "drafty/data",
			ExportDir:  "data",
			StateDir:   "drafty",
		},
		Log: LogConfig{
			RawLevel:   "info",
			File:       "app.log",
			MaxSizeMB:  500,
			MaxBackups: 3,
		},
	}
}

// Load reads the file named by DRAFTY_CONFIG (default config.yaml).
func Load() (Config, error) {
	return LoadFile(getEnv("DRAFTY_CONFIG", DefaultConfigPath))
}

func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults, applies environment overrides and
// validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}

	cfg.LeagueCode = strings.TrimSpace(cfg.LeagueCode)
	cfg.Log.RawLevel = getEnv("DRAFTY_LOG_LEVEL", cfg.Log.RawLevel)
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(getEnv("DRAFTY_DB_DRIVER", cfg.Storage.Driver)))
	cfg.Storage.DSN = getEnv("DRAFTY_DB_DSN", cfg.Storage.DSN)
	cfg.Log.Level = parseLogLevel(cfg.Log.RawLevel)

	if cfg.API.Timeout <= 0 {
		return Config{}, fmt.Errorf("api.timeout must be > 0")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	cfg.BracketList = bracket.FromMap(cfg.Brackets)
	if err := bracket.ValidatePartition(cfg.BracketList, cfg.SeasonGameweeks); err != nil {
		return Config{}, fmt.Errorf("validate brackets: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
