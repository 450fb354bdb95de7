package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/drafty/internal/platform/logging"
)

const validYAML = `
league_code: "12345"
brackets:
  "1": [1, 10]
  "2": [11, 20]
  "3": [21, 29]
  "4": [30, 38]
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.LeagueCode != "12345" {
		t.Fatalf("unexpected league code: %q", cfg.LeagueCode)
	}
	if cfg.SeasonGameweeks != 38 {
		t.Fatalf("unexpected season gameweeks: %d", cfg.SeasonGameweeks)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("unexpected api timeout: %s", cfg.API.Timeout)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Fatalf("unexpected base url: %q", cfg.API.BaseURL)
	}
	if cfg.Storage.Driver != DriverDuckDB || cfg.Storage.DSN != "drafty.db" {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
	if cfg.Log.Level != logging.LevelInfo || cfg.Log.MaxSizeMB != 500 {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if len(cfg.BracketList) != 4 || cfg.BracketList[0].Name != "1" || cfg.BracketList[3].End != 38 {
		t.Fatalf("unexpected bracket list: %+v", cfg.BracketList)
	}
}

func TestParse_Overrides(t *testing.T) {
	raw := validYAML + `
season_gameweeks: 38
api:
  timeout: 5s
storage:
  driver: postgres
  dsn: postgres://localhost/drafty
log:
  level: debug
`
	cfg, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Fatalf("unexpected api timeout: %s", cfg.API.Timeout)
	}
	if cfg.API.UserAgent != "drafty/1.0" {
		t.Fatalf("expected default user agent to survive partial api block, got %q", cfg.API.UserAgent)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Fatalf("unexpected driver: %q", cfg.Storage.Driver)
	}
	if cfg.Log.Level != logging.LevelDebug {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("DRAFTY_DB_DRIVER", "POSTGRES")
	t.Setenv("DRAFTY_DB_DSN", "postgres://db/drafty")
	t.Setenv("DRAFTY_LOG_LEVEL", "warn")

	cfg, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Storage.Driver != DriverPostgres || cfg.Storage.DSN != "postgres://db/drafty" {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
	if cfg.Log.Level != logging.LevelWarn {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing league code", raw: "brackets:\n  \"1\": [1, 38]\n"},
		{name: "missing brackets", raw: "league_code: \"1\"\n"},
		{name: "gap in brackets", raw: "league_code: \"1\"\nbrackets:\n  a: [1, 10]\n  b: [12, 38]\n"},
		{name: "unknown driver", raw: validYAML + "storage:\n  driver: sqlite\n"},
		{name: "bad timeout", raw: validYAML + "api:\n  timeout: soon\n"},
		{name: "zero timeout", raw: validYAML + "api:\n  timeout: 0s\n"},
		{name: "malformed yaml", raw: "league_code: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.raw)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoad_UsesConfigEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DRAFTY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LeagueCode != "12345" {
		t.Fatalf("unexpected league code: %q", cfg.LeagueCode)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("DRAFTY_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadFile_Example(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("..", "..", "config.example.yaml"))
	if err != nil {
		t.Fatalf("load example config: %v", err)
	}
	if len(cfg.BracketList) != 4 {
		t.Fatalf("unexpected bracket count: %d", len(cfg.BracketList))
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("unexpected api timeout: %s", cfg.API.Timeout)
	}
}
