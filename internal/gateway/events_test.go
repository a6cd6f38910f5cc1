package gateway

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mnemo-chat/mnemo/internal/memory"
)

func newTestHub() *EventHub {
	return NewEventHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEventHub_PublishFanOut(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	a, _ := hub.subscribe()
	b, _ := hub.subscribe()

	entry := memory.NewEntry(memory.SpeakerUser, "fanned out", "")
	hub.Publish(Event{Type: EventMemoryAppended, Entry: &entry})

	for name, ch := range map[string]chan Event{"a": a, "b": b} {
		select {
		case evt := <-ch:
			if evt.Entry == nil || evt.Entry.ID != entry.ID {
				t.Errorf("subscriber %s got %+v", name, evt)
			}
			if evt.Timestamp.IsZero() {
				t.Errorf("subscriber %s: event timestamp not stamped", name)
			}
		default:
			t.Errorf("subscriber %s received nothing", name)
		}
	}
}

func TestEventHub_SlowSubscriberDropsNotBlocks(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	ch, _ := hub.subscribe()

	// Overfill the buffer; the excess must be dropped without blocking.
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(Event{Type: EventMemoryAppended})
	}

	if got := len(ch); got != subscriberBuffer {
		t.Errorf("buffered events = %d, want %d", got, subscriberBuffer)
	}
}

func TestEventHub_CloseDetachesSubscribers(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	ch, _ := hub.subscribe()
	hub.Close()

	if _, open := <-ch; open {
		t.Error("channel should be closed after hub Close")
	}
	if hub.Subscribers() != 0 {
		t.Errorf("subscribers = %d, want 0", hub.Subscribers())
	}
	if _, ok := hub.subscribe(); ok {
		t.Error("subscribe after Close should fail")
	}

	// Publishing after close must be a no-op, not a panic.
	hub.Publish(Event{Type: EventMemoryAppended})
}
