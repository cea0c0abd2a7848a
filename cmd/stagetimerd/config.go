package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"stagetimer/internal/timer"
)

// Config is the process configuration: where state lives, where to listen,
// and which timer slots exist.
type Config struct {
	Listen            string       `yaml:"listen"`
	SettingsFile      string       `yaml:"settings_file"`
	StaticDir         string       `yaml:"static_dir"`
	SessionTTLMinutes int          `yaml:"session_ttl_minutes"`
	Timers            []timer.Slot `yaml:"timers"`
}

func defaultConfig() Config {
	return Config{
		Listen:            ":8080",
		SettingsFile:      "data/config.json",
		StaticDir:         "static",
		SessionTTLMinutes: 720,
		Timers:            timer.DefaultSlots(),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads the optional yaml config file and applies environment
// overrides on top. A missing file just means defaults.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config.Listen = getEnv("STAGETIMER_LISTEN", config.Listen)
	config.SettingsFile = getEnv("STAGETIMER_SETTINGS_FILE", config.SettingsFile)
	config.StaticDir = getEnv("STAGETIMER_STATIC_DIR", config.StaticDir)
	config.SessionTTLMinutes = getEnvAsInt("STAGETIMER_SESSION_TTL_MINUTES", config.SessionTTLMinutes)

	if len(config.Timers) == 0 {
		config.Timers = timer.DefaultSlots()
	}
	return config, nil
}
