package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// eventQueueSize is the buffer size for the tracking queue. If full,
	// events are dropped (non-blocking writes).
	eventQueueSize = 1000

	// batchFlushSize is the number of events that triggers an immediate
	// flush.
	batchFlushSize = 10

	// flushInterval is how often pending events are flushed.
	flushInterval = 50 * time.Millisecond
)

// Invalidator clears recommendation caches after qualifying write events.
type Invalidator interface {
	ClearCaches(ctx context.Context)
}

// Tracker records interaction events in the background with non-blocking
// writes. Qualifying interaction types (added, suggested_by_ai, favorited)
// trigger cache invalidation after the batch they belong to is flushed.
type Tracker struct {
	recorder    Recorder
	invalidator Invalidator
	logger      zerolog.Logger

	eventQueue chan Interaction
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	enabled bool
	mu      sync.RWMutex
}

// NewTracker creates a tracker that flushes events to the given recorder.
// invalidator may be nil when no cache invalidation is wanted.
func NewTracker(r Recorder, invalidator Invalidator, logger zerolog.Logger) *Tracker {
	t := &Tracker{
		recorder:    r,
		invalidator: invalidator,
		logger:      logger.With().Str("component", "tracker").Logger(),
		eventQueue:  make(chan Interaction, eventQueueSize),
		stopChan:    make(chan struct{}),
		enabled:     true,
	}

	t.wg.Add(1)
	go t.processEvents()

	return t
}

// Track queues an interaction event (non-blocking). If the queue is full,
// the event is dropped and a warning is logged.
func (t *Tracker) Track(ev Interaction) {
	if !t.IsEnabled() {
		return
	}

	select {
	case t.eventQueue <- ev:
	default:
		t.logger.Warn().Str("tool", ev.ToolID).Msg("tracking queue full, dropping event")
	}
}

// Stop gracefully shuts down the tracker, flushing remaining events.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
		t.wg.Wait()
	})
}

// Disable disables tracking (events are ignored).
func (t *Tracker) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = false
}

// IsEnabled returns whether tracking is enabled.
func (t *Tracker) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled && t.recorder != nil
}

// QueueLen returns the current number of queued events.
func (t *Tracker) QueueLen() int {
	return len(t.eventQueue)
}

// processEvents runs in the background, batching and flushing events.
func (t *Tracker) processEvents() {
	defer t.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]Interaction, 0, batchFlushSize)

	for {
		select {
		case ev := <-t.eventQueue:
			batch = append(batch, ev)
			if len(batch) >= batchFlushSize {
				t.flush(batch)
				batch = batch[:0]
			}

		case <-ticker.C:
			if len(batch) > 0 {
				t.flush(batch)
				batch = batch[:0]
			}

		case <-t.stopChan:
			// Drain whatever is still queued, then flush and exit.
			for {
				select {
				case ev := <-t.eventQueue:
					batch = append(batch, ev)
					if len(batch) >= batchFlushSize {
						t.flush(batch)
						batch = batch[:0]
					}
				default:
					t.flush(batch)
					return
				}
			}
		}
	}
}

// flush writes a batch of events and invalidates caches if the batch
// contained any qualifying interaction.
func (t *Tracker) flush(events []Interaction) {
	if len(events) == 0 {
		return
	}

	ctx := context.Background()
	qualifying := false

	for _, ev := range events {
		if err := t.recorder.RecordInteraction(ctx, ev); err != nil {
			t.logger.Warn().Err(err).Str("tool", ev.ToolID).Msg("failed to record interaction")
			continue
		}
		if ev.Type.IsQualifying() {
			qualifying = true
		}
	}

	if qualifying && t.invalidator != nil {
		t.logger.Debug().Msg("qualifying interactions flushed, clearing caches")
		t.invalidator.ClearCaches(ctx)
	}
}
