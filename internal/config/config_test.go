package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Stream != "pixel-events" {
		t.Fatalf("default stream")
	}
	if cfg.Board.Width != 100 || cfg.Board.Height != 100 {
		t.Fatalf("default board dims")
	}
	if cfg.Web.History != 100 || cfg.Bridge.History != 50 {
		t.Fatalf("default history capacities")
	}
	if cfg.Consume.Batch != 10 || cfg.Consume.BlockMs != 2000 {
		t.Fatalf("default consume tuning")
	}
}

func TestLoadJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pixelwar.json")
	data := []byte(`{"stream":"arena","board":{"width":64,"height":32},"web":{"group":"front","history":20}}`)
	if err := os.WriteFile(file, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Stream != "arena" || cfg.Board.Width != 64 || cfg.Board.Height != 32 {
		t.Fatalf("json values not applied: %+v", cfg)
	}
	if cfg.Web.Group != "front" || cfg.Web.History != 20 {
		t.Fatalf("web view not applied: %+v", cfg.Web)
	}
	// untouched sections keep defaults
	if cfg.Bridge.Group != "agent-bridge" {
		t.Fatalf("bridge default lost")
	}
}

func TestLoadYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pixelwar.yaml")
	data := []byte("stream: arena\nboard:\n  width: 10\n  height: 20\nconsume:\n  batch: 5\n")
	if err := os.WriteFile(file, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Stream != "arena" || cfg.Board.Width != 10 || cfg.Board.Height != 20 || cfg.Consume.Batch != 5 {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("PIXELWAR_STREAM", "staging-events")
	t.Setenv("PIXELWAR_BOARD_WIDTH", "256")
	t.Setenv("PIXELWAR_BRIDGE_HISTORY", "75")
	FromEnv(&cfg)
	if cfg.Stream != "staging-events" {
		t.Fatalf("env override stream")
	}
	if cfg.Board.Width != 256 {
		t.Fatalf("env override width")
	}
	if cfg.Bridge.History != 75 {
		t.Fatalf("env override bridge history")
	}
}

func TestDefaultDataDirNonEmpty(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	if got := DefaultDataDir(); got != filepath.Join("/custom/data", "pixelwar") {
		t.Fatalf("xdg path: %s", got)
	}
}
