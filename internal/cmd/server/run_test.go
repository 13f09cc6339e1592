package serverrun

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	cfgpkg "github.com/arunmm8335/war-of-the-pixel/internal/config"
	pebblestore "github.com/arunmm8335/war-of-the-pixel/internal/storage/pebble"
)

func TestGetenvDefault(t *testing.T) {
	_ = os.Setenv("PIXELWAR_TEST_VAR", "set")
	t.Cleanup(func() { _ = os.Unsetenv("PIXELWAR_TEST_VAR") })
	if got := getenvDefault("PIXELWAR_TEST_VAR", "def"); got != "set" {
		t.Fatalf("set var: %s", got)
	}
	if got := getenvDefault("PIXELWAR_TEST_VAR_MISSING", "def"); got != "def" {
		t.Fatalf("missing var: %s", got)
	}
}

func TestDataDirFallback(t *testing.T) {
	opts := Options{DataDir: ""}
	if opts.DataDir == "" {
		opts.DataDir = cfgpkg.DefaultDataDir()
	}
	if opts.DataDir == "" {
		t.Fatal("DataDir should be set after fallback")
	}
	if store := filepath.Join(opts.DataDir, "store"); filepath.Base(store) != "store" {
		t.Fatalf("store subdir: %s", store)
	}
}

// TestRunIntegration starts the full server stack and cancels it.
func TestRunIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	opts := Options{
		DataDir:       t.TempDir(),
		HTTPAddr:      ":0",
		Fsync:         pebblestore.FsyncModeNever,
		FsyncInterval: time.Millisecond,
		Config:        cfgpkg.Default(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := Run(ctx, opts); err != nil && err != context.DeadlineExceeded && err != context.Canceled {
		t.Fatalf("run: %v", err)
	}
}
