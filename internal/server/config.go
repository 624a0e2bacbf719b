package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete server configuration
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Game   GameSettings   `hcl:"game,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// GameSettings defines the blackjack session each client plays
type GameSettings struct {
	Decks                  int `hcl:"decks,optional"`
	Rounds                 int `hcl:"rounds,optional"`
	DecisionTimeoutSeconds int `hcl:"decision_timeout_seconds,optional"`
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Game: GameSettings{
			Decks:                  1,
			Rounds:                 100,
			DecisionTimeoutSeconds: 10,
		},
	}
}

// LoadConfig loads server configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Game.Decks == 0 {
		config.Game.Decks = 1
	}
	if config.Game.Rounds == 0 {
		config.Game.Rounds = 100
	}
	if config.Game.DecisionTimeoutSeconds == 0 {
		config.Game.DecisionTimeoutSeconds = 10
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects configurations the engine cannot honour
func (c *Config) Validate() error {
	if c.Game.Decks < 1 {
		return fmt.Errorf("config: decks must be positive, got %d", c.Game.Decks)
	}
	if c.Game.Rounds < 1 {
		return fmt.Errorf("config: rounds must be positive, got %d", c.Game.Rounds)
	}
	if c.Game.DecisionTimeoutSeconds < 1 {
		return fmt.Errorf("config: decision_timeout_seconds must be positive, got %d", c.Game.DecisionTimeoutSeconds)
	}
	return nil
}
