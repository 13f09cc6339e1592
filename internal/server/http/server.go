package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arunmm8335/war-of-the-pixel/internal/engine"
	"github.com/arunmm8335/war-of-the-pixel/internal/runtime"
	"github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

// Options wire the server's collaborators.
type Options struct {
	Runtime *runtime.Runtime
	Engine  *engine.Engine
	Broker  *Broker
	Logger  log.Logger

	// WS handles the WebSocket endpoint; nil disables it.
	WS http.HandlerFunc
	// MCP handles the agent bridge endpoint; nil disables it.
	MCP http.Handler
	// UI serves the embedded viewer at the root; nil disables it.
	UI http.FileSystem
}

// Server is the HTTP front of the canvas.
type Server struct {
	rt     *runtime.Runtime
	eng    *engine.Engine
	broker *Broker
	logger log.Logger
	srv    *http.Server
	lis    net.Listener
}

// New builds the router and server.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.NewLogger()
	}
	s := &Server{
		rt:     opts.Runtime,
		eng:    opts.Engine,
		broker: opts.Broker,
		logger: opts.Logger.WithComponent("http"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Route("/api", func(r chi.Router) {
		r.Post("/paint", s.handlePaint)
		r.Get("/board", s.handleBoard)
		r.Get("/pixel", s.handlePixel)
		r.Get("/events/recent", s.handleRecent)
		r.Get("/events/stream", s.handleStream)
		r.Get("/stats", s.handleStats)
		r.Get("/health", s.handleHealth)
	})
	if opts.WS != nil {
		r.Get("/ws", opts.WS)
	}
	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}
	if opts.UI != nil {
		r.Handle("/*", http.FileServer(opts.UI))
	}

	s.srv = &http.Server{Handler: r}
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// ListenAndServe serves until ctx is canceled, then drains with a
// short shutdown grace.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	s.logger.Info("http listening", log.Str("addr", l.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close force-closes the listener.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
