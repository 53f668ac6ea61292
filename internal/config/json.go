package config

import (
	"encoding/json"
	"os"

	"github.com/jmoranq/recetario/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	BackupPath   string `json:"backup_path"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. Absent flag means no JSON is loaded. Empty JSON fields keep the
// earlier value. Read or unmarshal errors panic; the caller may recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.BackupPath != "" {
		cfg.BackupPath = jc.BackupPath
	}
}
