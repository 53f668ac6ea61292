// Package config loads runtime configuration for the Recetario CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: filename of the local SQLite database.
//   - BackupPath: filename of the best-effort user-table snapshot.
type Config struct {
	DatabasePath string
	BackupPath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "recetario.db"
	c.BackupPath = "users_backup.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
