// Package bridge connects a stream of local bookmark change events to the
// single-entry mirror service. One consumer goroutine drains the event
// channel, so mirrored operations are applied in the order the events were
// observed.
package bridge

import (
	"context"
	"sync"

	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/internal/service"
	"github.com/MKhiriev/sheetmark/models"
)

const defaultEventBuffer = 64

// EventBridge consumes bookmark change events and mirrors each one to the
// remote table. It implements workers.Worker.
type EventBridge struct {
	mirror service.MirrorService
	events chan models.BookmarkEvent
	logger *logger.Logger

	ctx context.Context
	wg  sync.WaitGroup
}

// NewEventBridge creates a bridge over the given mirror service. ctx bounds
// the consumer goroutine started by Run.
func NewEventBridge(ctx context.Context, mirror service.MirrorService, log *logger.Logger) *EventBridge {
	return &EventBridge{
		mirror: mirror,
		events: make(chan models.BookmarkEvent, defaultEventBuffer),
		logger: log,
		ctx:    ctx,
	}
}

// Events returns the channel event producers publish to. Closing the channel
// stops the consumer after the remaining events are drained.
func (b *EventBridge) Events() chan<- models.BookmarkEvent {
	return b.events
}

// Run starts the single consumer goroutine and returns immediately.
func (b *EventBridge) Run() {
	b.wg.Add(1)

	go func() {
		defer b.wg.Done()

		for {
			select {
			case <-b.ctx.Done():
				return
			case event, ok := <-b.events:
				if !ok {
					return
				}
				b.dispatch(event)
			}
		}
	}()
}

// Wait blocks until the consumer goroutine has exited.
func (b *EventBridge) Wait() {
	b.wg.Wait()
}

// dispatch mirrors one event. A mirror failure is logged and never stops the
// consumer: the local change survives and a later bulk pass or repeated event
// converges the stores.
func (b *EventBridge) dispatch(event models.BookmarkEvent) {
	var err error

	switch event.Type {
	case models.BookmarkCreated:
		err = b.mirror.BookmarkCreated(b.ctx, event.Bookmark)
	case models.BookmarkChanged:
		err = b.mirror.BookmarkChanged(b.ctx, event.Bookmark, event.PreviousURL)
	case models.BookmarkRemoved:
		err = b.mirror.BookmarkRemoved(b.ctx, event.Bookmark.ID)
	default:
		b.logger.Warn().Str("type", string(event.Type)).Msg("unknown bookmark event type, skipping")
		return
	}

	if err != nil {
		b.logger.Err(err).
			Str("type", string(event.Type)).
			Str("id", event.Bookmark.ID).
			Msg("failed to mirror bookmark event")
	}
}
