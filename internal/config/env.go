package config

import (
	"os"
	"strconv"
)

// FromEnv overlays PIXELWAR_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("PIXELWAR_STREAM"); v != "" {
		cfg.Stream = v
	}
	if n, ok := envInt("PIXELWAR_BOARD_WIDTH"); ok {
		cfg.Board.Width = n
	}
	if n, ok := envInt("PIXELWAR_BOARD_HEIGHT"); ok {
		cfg.Board.Height = n
	}
	if v := os.Getenv("PIXELWAR_WEB_GROUP"); v != "" {
		cfg.Web.Group = v
	}
	if n, ok := envInt("PIXELWAR_WEB_HISTORY"); ok {
		cfg.Web.History = n
	}
	if v := os.Getenv("PIXELWAR_BRIDGE_GROUP"); v != "" {
		cfg.Bridge.Group = v
	}
	if n, ok := envInt("PIXELWAR_BRIDGE_HISTORY"); ok {
		cfg.Bridge.History = n
	}
	if n, ok := envInt("PIXELWAR_CONSUME_BATCH"); ok {
		cfg.Consume.Batch = n
	}
	if n, ok := envInt("PIXELWAR_CONSUME_BLOCK_MS"); ok {
		cfg.Consume.BlockMs = n
	}
	if n, ok := envInt("PIXELWAR_CONSUME_BACKOFF_MS"); ok {
		cfg.Consume.BackoffMs = n
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
