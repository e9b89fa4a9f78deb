package config

import (
	"encoding/json"
	"os"
	"sync"
)

// Config holds the importer's file locations. Defaults match the fixed names
// the legacy tooling used, so running without a config file behaves the same.
type Config struct {
	DumpPath     string `json:"dumpPath"`
	DatabasePath string `json:"databasePath"`
	LogPath      string `json:"logPath"`
	DumpEncoding string `json:"dumpEncoding"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./ptra_config.json"

// Defaults returns the fixed file names the legacy tooling used.
func Defaults() Config {
	return Config{
		DumpPath:     "tnopnsptra.sql",
		DatabasePath: "dataapp.db",
		LogPath:      "migrator.log",
		DumpEncoding: "",
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = Defaults()
			return cfg, nil
		}
		return Config{}, err
	}

	tempCfg := Defaults()
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	if tempCfg.DumpPath == "" {
		tempCfg.DumpPath = "tnopnsptra.sql"
	}
	if tempCfg.DatabasePath == "" {
		tempCfg.DatabasePath = "dataapp.db"
	}
	if tempCfg.LogPath == "" {
		tempCfg.LogPath = "migrator.log"
	}
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
