package engine

import (
	"context"
	"time"

	"github.com/arunmm8335/war-of-the-pixel/internal/event"
	"github.com/arunmm8335/war-of-the-pixel/internal/eventlog"
	"github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

// Bootstrap replays the whole log from the beginning to rebuild the
// projections. Nothing is published and no cursor is committed; live
// delivery resumes from the group cursor in Run, and refolding any
// overlap is harmless because folds are idempotent.
func (e *Engine) Bootstrap(ctx context.Context) error {
	e.state.Store(int32(StateBootstrapping))

	var start eventlog.Token
	var total int
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		items, next := e.log.Read(eventlog.ReadOptions{Start: start, Limit: 256})
		for _, it := range items {
			ev, err := event.Decode(it.Payload)
			if err != nil {
				e.decodeErrs.Add(1)
				e.logger.Warn("skipping undecodable event",
					log.Uint64("seq", it.Seq), log.Err(err))
				continue
			}
			e.fold(ev)
			total++
		}
		if next == (eventlog.Token{}) {
			break
		}
		start = next
	}
	e.logger.Info("bootstrap complete",
		log.Int("events", total),
		log.Int("painted", e.board.Count()))
	return nil
}

// Run consumes the log as this engine's group until ctx is canceled.
// Each delivered event is folded, published, and only then acked by
// advancing the group cursor, so a crash mid-batch redelivers rather
// than loses.
func (e *Engine) Run(ctx context.Context) {
	e.state.Store(int32(StateListening))
	e.logger.Info("consumer listening", log.Str("consumer", e.consumerID))
	defer func() {
		e.state.Store(int32(StateStopped))
		e.logger.Info("consumer stopped")
	}()

	for {
		if ctx.Err() != nil {
			return
		}
		var start eventlog.Token
		if cur, ok := e.log.GetCursor(e.group); ok {
			start = eventlog.TokenFromSeq(cur.Seq() + 1)
		}
		items, _ := e.log.Read(eventlog.ReadOptions{Start: start, Limit: e.batch})
		if len(items) == 0 {
			e.log.WaitForAppend(e.block)
			continue
		}
		if err := e.deliver(ctx, items); err != nil {
			if ctx.Err() != nil {
				return
			}
			e.logger.Error("delivery failed, backing off", log.Err(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(e.backoff):
			}
		}
	}
}

// deliver folds and publishes a batch, acking each event as it lands.
func (e *Engine) deliver(ctx context.Context, items []eventlog.Item) error {
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := event.Decode(it.Payload)
		if err != nil {
			// A poison record never decodes; ack it so the loop moves on.
			e.decodeErrs.Add(1)
			e.logger.Warn("skipping undecodable event",
				log.Uint64("seq", it.Seq), log.Err(err))
			if err := e.log.CommitCursor(e.group, eventlog.TokenFromSeq(it.Seq)); err != nil {
				return err
			}
			continue
		}
		e.fold(ev)
		e.pub.PublishBoard(ev)
		if ev.Message != "" {
			e.pub.PublishChat(ChatMessage{Source: ev.Source, Message: ev.Message})
		}
		e.logger.Info("new move",
			log.Uint64("seq", it.Seq),
			log.Str("source", ev.Source),
			log.Str("color", ev.Color),
			log.Int("x", ev.X),
			log.Int("y", ev.Y))
		if err := e.log.CommitCursor(e.group, eventlog.TokenFromSeq(it.Seq)); err != nil {
			return err
		}
	}
	return nil
}
