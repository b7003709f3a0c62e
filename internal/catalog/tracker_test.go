package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeRecorder collects recorded interactions for assertions.
type fakeRecorder struct {
	mu     sync.Mutex
	events []Interaction
}

func (f *fakeRecorder) RecordInteraction(_ context.Context, ev Interaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeRecorder) UpsertTool(context.Context, Tool) error { return nil }

func (f *fakeRecorder) SetToolStatus(context.Context, string, ToolStatus) error { return nil }

func (f *fakeRecorder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// fakeInvalidator counts cache invalidations.
type fakeInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeInvalidator) ClearCaches(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

func (f *fakeInvalidator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestTracker_FlushesQueuedEvents(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewTracker(recorder, nil, zerolog.Nop())

	for i := 0; i < 5; i++ {
		tracker.Track(Interaction{UserID: "u1", ToolID: "t1", Type: InteractionViewed})
	}
	tracker.Stop()

	if recorder.count() != 5 {
		t.Errorf("expected 5 recorded events, got %d", recorder.count())
	}
}

func TestTracker_QualifyingEventInvalidatesCaches(t *testing.T) {
	recorder := &fakeRecorder{}
	invalidator := &fakeInvalidator{}
	tracker := NewTracker(recorder, invalidator, zerolog.Nop())

	tracker.Track(Interaction{UserID: "u1", ToolID: "t1", Type: InteractionAdded})
	tracker.Stop()

	if invalidator.count() == 0 {
		t.Error("expected qualifying event to invalidate caches")
	}
}

func TestTracker_PassiveEventDoesNotInvalidate(t *testing.T) {
	recorder := &fakeRecorder{}
	invalidator := &fakeInvalidator{}
	tracker := NewTracker(recorder, invalidator, zerolog.Nop())

	tracker.Track(Interaction{UserID: "u1", ToolID: "t1", Type: InteractionViewed})
	tracker.Stop()

	if invalidator.count() != 0 {
		t.Errorf("expected no invalidation for passive event, got %d", invalidator.count())
	}
}

func TestTracker_DisabledDropsEvents(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewTracker(recorder, nil, zerolog.Nop())

	tracker.Disable()
	tracker.Track(Interaction{UserID: "u1", ToolID: "t1", Type: InteractionAdded})
	tracker.Stop()

	if recorder.count() != 0 {
		t.Errorf("expected no events after disable, got %d", recorder.count())
	}
}

func TestTracker_BatchFlushBySize(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewTracker(recorder, nil, zerolog.Nop())
	defer tracker.Stop()

	for i := 0; i < batchFlushSize; i++ {
		tracker.Track(Interaction{UserID: "u1", ToolID: "t1", Type: InteractionClicked})
	}

	// A full batch flushes without waiting for Stop.
	deadline := time.Now().Add(time.Second)
	for recorder.count() < batchFlushSize && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if recorder.count() != batchFlushSize {
		t.Errorf("expected %d flushed events, got %d", batchFlushSize, recorder.count())
	}
}
