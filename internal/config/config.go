package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file path.
const EnvPath = "BUILDCRAFT_CONFIG"

// DefaultPath is used when neither a flag nor EnvPath names a file.
const DefaultPath = "config/buildcraft.yaml"

// Advisor holds all configuration for the build advisor.
type Advisor struct {
	LogLevel string `yaml:"log_level"`

	// Reference data: Postgres when Database.Enabled, else ReferenceFile (or nothing).
	Database      DatabaseConfig `yaml:"database"`
	Redis         RedisConfig    `yaml:"redis"`
	ReferenceFile string         `yaml:"reference_file"`
	FetchTimeout  time.Duration  `yaml:"fetch_timeout"`

	// Catalog
	CatalogFile  string `yaml:"catalog_file"`
	RefineFromDB bool   `yaml:"refine_from_db"`

	// Search
	SearchWorkers int                    `yaml:"search_workers"` // 0 = GOMAXPROCS
	DefaultTopK   int                    `yaml:"default_top_k"`
	Roles         map[string]RoleProfile `yaml:"roles"`

	// Metrics
	MetricsAddress string `yaml:"metrics_address"` // empty disables the listener
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig configures the reference-data cache. Empty Address disables it.
type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
	Prefix   string        `yaml:"prefix"`
}

// RoleProfile overrides parts of a built-in role weight table.
type RoleProfile struct {
	Blend        *Blend             `yaml:"blend"`
	OffenseShare map[string]float64 `yaml:"offense_share"` // experience → share
	Floors       []Floor            `yaml:"floors"`
}

// Blend weighs the score components of upgrade candidates.
type Blend struct {
	Offense       float64 `yaml:"offense"`
	Survivability float64 `yaml:"survivability"`
	Healing       float64 `yaml:"healing"`
	Boon          float64 `yaml:"boon"`
}

// Floor is a minimum-stat requirement; Stat is an attribute name or "max_health".
type Floor struct {
	Stat  string   `yaml:"stat"`
	Min   float64  `yaml:"min"`
	Modes []string `yaml:"modes"`
}

// DefaultAdvisor returns Advisor config with sensible defaults.
func DefaultAdvisor() Advisor {
	return Advisor{
		LogLevel:     "info",
		FetchTimeout: 5 * time.Second,
		DefaultTopK:  5,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "buildcraft",
			Password: "buildcraft",
			DBName:   "buildcraft",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			TTL:    24 * time.Hour,
			Prefix: "buildcraft",
		},
	}
}

// LoadAdvisor loads advisor config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadAdvisor(path string) (Advisor, error) {
	cfg := DefaultAdvisor()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.DefaultTopK < 1 {
		return cfg, fmt.Errorf("config %s: default_top_k %d < 1", path, cfg.DefaultTopK)
	}
	if cfg.SearchWorkers < 0 {
		return cfg, fmt.Errorf("config %s: search_workers %d < 0", path, cfg.SearchWorkers)
	}

	return cfg, nil
}

// ResolvePath picks the config path: explicit flag value, then EnvPath, then DefaultPath.
func ResolvePath(flag string) string {
	if flag != "" {
		return flag
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}
