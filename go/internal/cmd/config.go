package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration, loaded from YAML with environment
// overrides applied on top.
type Config struct {
	Server struct {
		URL        string `yaml:"url"`
		AckTimeout int    `yaml:"ack_timeout_sec"`
	} `yaml:"server"`
	Auth struct {
		Token string `yaml:"token"`
	} `yaml:"auth"`
	State struct {
		Path string `yaml:"path"`
	} `yaml:"state"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
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

func loadConfig(path string) (*Config, error) {
	var config Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.URL = getEnv("QUIZCLASH_SERVER_URL", config.Server.URL)
	config.Server.AckTimeout = getEnvAsInt("QUIZCLASH_ACK_TIMEOUT_SEC", config.Server.AckTimeout)
	config.Auth.Token = getEnv("QUIZCLASH_TOKEN", config.Auth.Token)
	config.State.Path = getEnv("QUIZCLASH_STATE_PATH", config.State.Path)
	config.Log.Level = getEnv("QUIZCLASH_LOG_LEVEL", config.Log.Level)

	if config.Server.URL == "" {
		config.Server.URL = "ws://localhost:8080/ws"
	}
	if config.State.Path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			config.State.Path = home + "/.quizclash/room.json"
		}
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	return &config, nil
}
