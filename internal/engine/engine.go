package engine

import (
	"sync/atomic"
	"time"

	"github.com/arunmm8335/war-of-the-pixel/internal/board"
	"github.com/arunmm8335/war-of-the-pixel/internal/event"
	"github.com/arunmm8335/war-of-the-pixel/internal/eventlog"
	"github.com/arunmm8335/war-of-the-pixel/pkg/id"
	"github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

// State of the consumer loop.
type State int32

const (
	StateCreated State = iota
	StateBootstrapping
	StateListening
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateBootstrapping:
		return "BOOTSTRAPPING"
	case StateListening:
		return "LISTENING"
	case StateStopped:
		return "STOPPED"
	default:
		return "CREATED"
	}
}

// Tuning defaults for the consumer loop.
const (
	DefaultBatch   = 10
	DefaultBlock   = 2 * time.Second
	DefaultBackoff = time.Second
)

// Options configure an Engine.
type Options struct {
	Log     *eventlog.Log
	Group   string
	Board   *board.Board
	History int
	Pub     Publisher
	Logger  log.Logger

	// Consumer tuning; zero values take the defaults above.
	Batch   int
	Block   time.Duration
	Backoff time.Duration
}

// Engine folds the event log into live projections for one consumer
// group and validates incoming paints.
type Engine struct {
	log        *eventlog.Log
	group      string
	consumerID string
	board      *board.Board
	history    *board.History
	pub        Publisher
	logger     log.Logger

	batch   int
	block   time.Duration
	backoff time.Duration

	state      atomic.Int32
	processed  atomic.Uint64
	decodeErrs atomic.Uint64
}

// New builds an Engine. The consumer group must already exist on the
// log.
func New(opts Options) *Engine {
	if opts.Pub == nil {
		opts.Pub = NopPublisher{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewLogger()
	}
	if opts.Batch <= 0 {
		opts.Batch = DefaultBatch
	}
	if opts.Block <= 0 {
		opts.Block = DefaultBlock
	}
	if opts.Backoff <= 0 {
		opts.Backoff = DefaultBackoff
	}
	e := &Engine{
		log:        opts.Log,
		group:      opts.Group,
		consumerID: "consumer-" + id.NewGenerator().Next().String(),
		board:      opts.Board,
		history:    board.NewHistory(opts.History),
		pub:        opts.Pub,
		logger:     opts.Logger.WithComponent("engine").With(log.Str("group", opts.Group)),
		batch:      opts.Batch,
		block:      opts.Block,
		backoff:    opts.Backoff,
	}
	return e
}

// Group returns the consumer group this engine reads as.
func (e *Engine) Group() string { return e.group }

// ConsumerID returns the per-process consumer identity.
func (e *Engine) ConsumerID() string { return e.consumerID }

// State returns the current loop state.
func (e *Engine) State() State { return State(e.state.Load()) }

// Board returns the live board projection.
func (e *Engine) Board() *board.Board { return e.board }

// Snapshot returns a copy of all painted cells.
func (e *Engine) Snapshot() map[board.Coord]string { return e.board.Pixels() }

// PixelAt returns the color at (x, y).
func (e *Engine) PixelAt(x, y int) string { return e.board.Pixel(x, y) }

// RecentEvents returns the retained history, oldest first.
func (e *Engine) RecentEvents() []event.Event { return e.history.Events() }

// Stats describe the engine's progress through the log.
type Stats struct {
	Group        string `json:"group"`
	State        string `json:"state"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	PaintedCells int    `json:"paintedCells"`
	Processed    uint64 `json:"processed"`
	DecodeErrors uint64 `json:"decodeErrors"`
	LastSeq      uint64 `json:"lastSeq"`
	RecentHuman  int    `json:"recentHumanMoves"`
	RecentAgent  int    `json:"recentAgentMoves"`
}

// Stats returns a point-in-time view of the engine. The human and
// agent move counts are taken over the retained history window.
func (e *Engine) Stats() Stats {
	var human, agent int
	for _, ev := range e.history.Events() {
		switch event.ClassifySource(ev.Source) {
		case event.KindHuman:
			human++
		case event.KindAIAgent:
			agent++
		}
	}
	return Stats{
		Group:        e.group,
		State:        e.State().String(),
		Width:        e.board.Width(),
		Height:       e.board.Height(),
		PaintedCells: e.board.Count(),
		Processed:    e.processed.Load(),
		DecodeErrors: e.decodeErrs.Load(),
		LastSeq:      e.log.LastSeq(),
		RecentHuman:  human,
		RecentAgent:  agent,
	}
}

// fold applies one decoded event to the projections.
func (e *Engine) fold(ev event.Event) {
	e.board.Set(ev.X, ev.Y, ev.Color)
	e.history.Append(ev)
	e.processed.Add(1)
}
