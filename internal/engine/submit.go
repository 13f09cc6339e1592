package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/arunmm8335/war-of-the-pixel/internal/event"
	"github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

// Validation errors returned by SubmitPaint.
var (
	ErrOutOfBounds  = errors.New("coordinates out of bounds")
	ErrInvalidColor = errors.New("invalid color format")
)

// SubmitPaint validates a paint request and appends it to the log.
// The board is not touched here; the consumer loop folds the event in
// once it comes back off the log. Returns the assigned sequence.
func (e *Engine) SubmitPaint(ctx context.Context, ev event.Event) (uint64, error) {
	if !e.board.InBounds(ev.X, ev.Y) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, ev.X, ev.Y)
	}
	if !event.ValidColor(ev.Color) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, ev.Color)
	}
	ev.Color = event.NormalizeColor(ev.Color)
	if ev.Source == "" {
		ev.Source = event.SourceUnknown
	}
	if ev.Timestamp == 0 {
		ev.Timestamp = event.NowMs()
	}

	payload, err := event.Encode(ev)
	if err != nil {
		return 0, fmt.Errorf("encode event: %w", err)
	}
	seq, err := e.log.Append(ctx, nil, payload)
	if err != nil {
		return 0, fmt.Errorf("append event: %w", err)
	}
	e.logger.Debug("paint appended",
		log.Uint64("seq", seq),
		log.Int("x", ev.X),
		log.Int("y", ev.Y),
		log.Str("color", ev.Color),
		log.Str("source", ev.Source))
	return seq, nil
}
