package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Discord struct {
		BotToken          string `yaml:"bot_token"`
		CommandPrefix     string `yaml:"command_prefix"`
		AnnounceChannelID string `yaml:"announce_channel_id"`
	} `yaml:"discord"`
	DataSource struct {
		DefaultPair string `yaml:"default_pair"`
	} `yaml:"data_source"`
	Schedule struct {
		SessionCron string `yaml:"session_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// The file is optional; a missing file yields a config built from env and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DISCORD_BOT_TOKEN"); v != "" {
		cfg.Discord.BotToken = v
	}
	if v := os.Getenv("COMMAND_PREFIX"); v != "" {
		cfg.Discord.CommandPrefix = v
	}
	if v := os.Getenv("ANNOUNCE_CHANNEL_ID"); v != "" {
		cfg.Discord.AnnounceChannelID = v
	}
	if v := os.Getenv("DEFAULT_PAIR"); v != "" {
		cfg.DataSource.DefaultPair = v
	}
	if v := os.Getenv("SESSION_CRON"); v != "" {
		cfg.Schedule.SessionCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Discord.CommandPrefix == "" {
		cfg.Discord.CommandPrefix = "!"
	}
	if cfg.DataSource.DefaultPair == "" {
		cfg.DataSource.DefaultPair = "EURUSD"
	}
	if cfg.Schedule.SessionCron == "" {
		cfg.Schedule.SessionCron = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Discord.BotToken == "" {
		return fmt.Errorf("discord.bot_token is required (set DISCORD_BOT_TOKEN)")
	}
	return nil
}
