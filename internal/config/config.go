package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// Stream is the name of the shared paint event log.
	Stream string `json:"stream" yaml:"stream"`
	// Board holds the canvas dimensions for this deployment.
	Board BoardConfig `json:"board" yaml:"board"`
	// Web configures the web backend's view of the log.
	Web ViewConfig `json:"web" yaml:"web"`
	// Bridge configures the agent bridge's view of the log.
	Bridge ViewConfig `json:"bridge" yaml:"bridge"`
	// Consume tunes the consumer loops.
	Consume ConsumeConfig `json:"consume" yaml:"consume"`
}

// BoardConfig captures canvas dimensions.
type BoardConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// ViewConfig parameterizes one materialized view of the log. Views differ
// only by consumer-group identity and recent-history capacity.
type ViewConfig struct {
	Group   string `json:"group" yaml:"group"`
	History int    `json:"history" yaml:"history"`
}

// ConsumeConfig tunes the consumer loops shared by all views.
type ConsumeConfig struct {
	// Batch is the maximum number of records per group read.
	Batch int `json:"batch" yaml:"batch"`
	// BlockMs bounds the blocking wait of an empty group read.
	BlockMs int `json:"blockMs" yaml:"blockMs"`
	// BackoffMs is the pause after a transient consume error.
	BackoffMs int `json:"backoffMs" yaml:"backoffMs"`
}

// Default returns built-in defaults matching the reference deployment:
// a 100x100 canvas, a web view keeping 100 recent events and a bridge
// view keeping 50.
func Default() Config {
	return Config{
		Stream: "pixel-events",
		Board:  BoardConfig{Width: 100, Height: 100},
		Web:    ViewConfig{Group: "web-backend", History: 100},
		Bridge: ViewConfig{Group: "agent-bridge", History: 50},
		Consume: ConsumeConfig{
			Batch:     10,
			BlockMs:   2000,
			BackoffMs: 1000,
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). An
// empty path returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}
