package utils

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
)

// Config struct holds application configuration
type Config struct {
	Port        int    `json:"port"`
	Persistence string `json:"persistence"`
	DictFile    string `json:"dictionary_file"`
	Debug       bool   `json:"debug"`
}

var (
	configInstance *Config   // Singleton configInstance
	configOnce     sync.Once // Ensures thread-safe initialization
)

// LoadConfig initializes the singleton configInstance
func LoadConfig(filename string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		configInstance, err = loadConfigFromFile(filename)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	})
	return configInstance, err
}

// loadConfigFromFile reads and parses the config file
func loadConfigFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}
	defer file.Close()

	config := &Config{}
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("Config not initialized. Call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		Port:        6380,
		Persistence: "binlog",
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.Port == 0 {
		config.Port = 6380
	}
	if config.Persistence != "binlog" && config.Persistence != "off" {
		config.Persistence = "binlog"
	}
}
