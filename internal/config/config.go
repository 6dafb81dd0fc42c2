// Package config loads service configuration from a YAML file with
// environment-variable overrides for deployment knobs.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout"`  // seconds
	WriteTimeout int    `yaml:"write_timeout"` // seconds
}

type DatabaseConfig struct {
	Path       string `yaml:"path"`
	Migrations string `yaml:"migrations"`
}

type UploadConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Timeout  int    `yaml:"timeout"` // seconds
	Retries  int    `yaml:"retries"`
}

type DisplayConfig struct {
	Units    string `yaml:"units"`
	Decimals int    `yaml:"decimals"`
}

type MeshConfig struct {
	Cells int `yaml:"cells"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Config is the top-level structure of roomscan.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Upload   UploadConfig   `yaml:"upload"`
	Display  DisplayConfig  `yaml:"display"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Log      LogConfig      `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "3000", ReadTimeout: 10, WriteTimeout: 10},
		Database: DatabaseConfig{Path: "data/db/roomscan.db", Migrations: "migrations/001_init.sql"},
		Upload:   UploadConfig{Timeout: 30, Retries: 3},
		Display:  DisplayConfig{Units: "meters", Decimals: 2},
		Mesh:     MeshConfig{Cells: 120},
		Log:      LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads the YAML file at path (if non-empty) over the defaults, then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Database.Path = getEnv("ROOMSCAN_DB_PATH", cfg.Database.Path)
	cfg.Upload.Endpoint = getEnv("ROOMSCAN_UPLOAD_ENDPOINT", cfg.Upload.Endpoint)
	cfg.Upload.APIKey = getEnv("ROOMSCAN_UPLOAD_API_KEY", cfg.Upload.APIKey)
	cfg.Mesh.Cells = getEnvAsInt("ROOMSCAN_MESH_CELLS", cfg.Mesh.Cells)

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
