package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/flightbook/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	DatabaseDSN    *string `json:"database_dsn"`
	MigrateOnStart *bool   `json:"migrate_on_start"`
	MaxTxAttempts  *int    `json:"max_tx_attempts"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; when
// neither is set, no file is loaded. Fields absent from the file keep their
// current values. If the file cannot be read or contains invalid JSON, the
// function panics: a broken config file is a startup error, not something to
// limp past.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.MigrateOnStart != nil {
		config.MigrateOnStart = *c.MigrateOnStart
	}
	if c.MaxTxAttempts != nil {
		config.MaxTxAttempts = *c.MaxTxAttempts
	}
}
