package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/arunmm8335/war-of-the-pixel/internal/engine"
	"github.com/arunmm8335/war-of-the-pixel/internal/event"
	"github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

var errStreamingUnsupported = errors.New("streaming unsupported")

type paintReq struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Color   string `json:"color"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (s *Server) handlePaint(w http.ResponseWriter, r *http.Request) {
	var req paintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid body: %w", err))
		return
	}
	src := req.Source
	if src == "" {
		src = event.SourceHuman
	}
	seq, err := s.eng.SubmitPaint(r.Context(), event.Event{
		X:       req.X,
		Y:       req.Y,
		Color:   req.Color,
		Source:  src,
		Message: req.Message,
	})
	switch {
	case errors.Is(err, engine.ErrOutOfBounds), errors.Is(err, engine.ErrInvalidColor):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		s.logger.Error("paint failed", log.Err(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"status": "ok", "seq": seq})
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	b := s.eng.Board()
	pixels := make(map[string]string)
	for c, color := range b.Pixels() {
		pixels[fmt.Sprintf("%d,%d", c.X, c.Y)] = color
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"width":  b.Width(),
		"height": b.Height(),
		"pixels": pixels,
		"count":  len(pixels),
	})
}

func (s *Server) handlePixel(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, errors.New("x and y must be integers"))
		return
	}
	if !s.eng.Board().InBounds(x, y) {
		writeError(w, http.StatusBadRequest, engine.ErrOutOfBounds)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"x":     x,
		"y":     y,
		"color": s.eng.PixelAt(x, y),
	})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	events := s.eng.RecentEvents()
	if events == nil {
		events = []event.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.Stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.rt.CheckHealth(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_serving"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
