package serverrun

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/arunmm8335/war-of-the-pixel/internal/board"
	"github.com/arunmm8335/war-of-the-pixel/internal/bridge"
	cfgpkg "github.com/arunmm8335/war-of-the-pixel/internal/config"
	"github.com/arunmm8335/war-of-the-pixel/internal/engine"
	"github.com/arunmm8335/war-of-the-pixel/internal/runtime"
	httpserver "github.com/arunmm8335/war-of-the-pixel/internal/server/http"
	"github.com/arunmm8335/war-of-the-pixel/internal/server/ws"
	pebblestore "github.com/arunmm8335/war-of-the-pixel/internal/storage/pebble"
	"github.com/arunmm8335/war-of-the-pixel/internal/ui"
	logpkg "github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

func getenvDefault(key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

// small wrapper to allow testing
var getenv = func(key string) string { return os.Getenv(key) }

// Options for starting the server.
type Options struct {
	DataDir       string
	HTTPAddr      string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
}

// Run starts the HTTP server and both view engines and blocks until
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Layer a local signal context over the provided one so callers
	// without signal handling still shut down cleanly.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.DataDir == "" {
		opts.DataDir = cfgpkg.DefaultDataDir()
	}
	storeDir := filepath.Join(opts.DataDir, "store")
	rt, err := runtime.Open(runtime.Options{
		DataDir:       storeDir,
		Fsync:         opts.Fsync,
		FsyncInterval: opts.FsyncInterval,
		Config:        opts.Config,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	logCfg := &logpkg.Config{
		Level:  getenvDefault("PIXELWAR_LOG_LEVEL", "info"),
		Format: getenvDefault("PIXELWAR_LOG_FORMAT", "text"),
	}
	procLogger, err := logpkg.ApplyConfig(logCfg)
	if err != nil {
		lvl := logpkg.InfoLevel
		if l, e := logpkg.ParseLevel(logCfg.Level); e == nil {
			lvl = l
		}
		procLogger = logpkg.NewLogger(logpkg.WithLevel(lvl), logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}

	// Redirect stdlib logs (e.g. Pebble) to our logger
	logpkg.RedirectStdLog(procLogger)

	cfg := rt.Config()
	procLogger.Info("Starting pixelwar server",
		logpkg.Str("http", opts.HTTPAddr),
		logpkg.Str("stream", cfg.Stream),
		logpkg.Int("width", cfg.Board.Width),
		logpkg.Int("height", cfg.Board.Height),
		logpkg.Str("level", logCfg.Level),
		logpkg.Str("format", logCfg.Format),
	)

	lg, err := rt.OpenLog(cfg.Stream)
	if err != nil {
		return err
	}
	if err := lg.EnsureGroup(cfg.Web.Group); err != nil {
		return err
	}
	if err := lg.EnsureGroup(cfg.Bridge.Group); err != nil {
		return err
	}

	hub := ws.NewHub(procLogger)
	broker := httpserver.NewBroker()

	batch := cfg.Consume.Batch
	block := time.Duration(cfg.Consume.BlockMs) * time.Millisecond
	backoff := time.Duration(cfg.Consume.BackoffMs) * time.Millisecond

	webEng := engine.New(engine.Options{
		Log:     lg,
		Group:   cfg.Web.Group,
		Board:   board.New(cfg.Board.Width, cfg.Board.Height),
		History: cfg.Web.History,
		Pub:     engine.Multi(hub, broker),
		Logger:  procLogger,
		Batch:   batch,
		Block:   block,
		Backoff: backoff,
	})
	bridgeEng := engine.New(engine.Options{
		Log:     lg,
		Group:   cfg.Bridge.Group,
		Board:   board.New(cfg.Board.Width, cfg.Board.Height),
		History: cfg.Bridge.History,
		Logger:  procLogger,
		Batch:   batch,
		Block:   block,
		Backoff: backoff,
	})

	// Silent replay before serving so clients never see a blank canvas.
	if err := webEng.Bootstrap(sctx); err != nil {
		return err
	}
	if err := bridgeEng.Bootstrap(sctx); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		webEng.Run(sctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		bridgeEng.Run(sctx)
	}()

	br := bridge.New(bridgeEng)
	hsrv := httpserver.New(httpserver.Options{
		Runtime: rt,
		Engine:  webEng,
		Broker:  broker,
		Logger:  procLogger,
		WS:      hub.Serve(),
		MCP:     br.Handler(),
		UI:      ui.FS(),
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, opts.HTTPAddr); err != nil && sctx.Err() == nil {
			procLogger.Error("http server", logpkg.Err(err))
		}
	}()

	<-sctx.Done()
	// Shut servers down before closing the runtime/DB to avoid races.
	hsrv.Close()
	wg.Wait()
	return nil
}
