package sse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishToTopic(t *testing.T) {
	hub := NewHub()

	admin, cleanupAdmin := hub.Subscribe(TopicAdmin)
	defer cleanupAdmin()
	other, cleanupOther := hub.Subscribe("other")
	defer cleanupOther()

	hub.Publish(Event{Topic: TopicAdmin, Event: "attendance.check_in", Data: map[string]string{"empId": "E001"}})

	select {
	case ev := <-admin:
		assert.Equal(t, "attendance.check_in", ev.Event)
	default:
		t.Fatal("admin subscriber did not receive the event")
	}

	select {
	case ev := <-other:
		t.Fatalf("unexpected event on other topic: %v", ev)
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicAdmin)
	assert.Equal(t, 1, hub.SubscriberCount(TopicAdmin))
	assert.Equal(t, 1, hub.TotalSubscribers())

	cleanup()
	cleanup()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount(TopicAdmin))

	// Publishing with no subscribers is a no-op.
	hub.Publish(Event{Topic: TopicAdmin, Event: "noop"})
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe(TopicAdmin)
	defer cleanup()

	for i := 0; i < hub.bufferSize+5; i++ {
		hub.Publish(Event{Topic: TopicAdmin, Event: "tick", Data: i})
	}
	assert.Len(t, ch, hub.bufferSize)
}

func TestEvent_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	_, err := Event{Event: "leave.applied", Data: map[string]int{"days": 2}}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "event: leave.applied\ndata: {\"days\":2}\n\n", buf.String())

	_, err = Event{Event: "bad", Data: make(chan int)}.WriteTo(&buf)
	assert.Error(t, err)
}
