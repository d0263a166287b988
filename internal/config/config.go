package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded once at startup and threaded
// through constructors. No package-level state.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Chat   ChatConfig   `yaml:"chat"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// RedisConfig holds the connection settings for the FAQ/transcript store.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ChatConfig holds the chat-widget settings: the support window, the handoff
// target rendered on support prompts, and the simulated typing delay applied
// before pushing bot replies over WebSocket.
type ChatConfig struct {
	WorkingHours  WorkingHoursConfig `yaml:"workingHours"`
	SupportLink   string             `yaml:"supportLink"`
	TypingDelayMs int                `yaml:"typingDelayMs"`
}

// WorkingHoursConfig is the configured support window in local hours.
// The window does not wrap past midnight.
type WorkingHoursConfig struct {
	Start int `yaml:"start"` // 0..23
	End   int `yaml:"end"`   // 0..24
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &cfg, nil
}
