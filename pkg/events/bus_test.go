package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.C:
		require.True(t, ok, "subscription channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestPublishFanOut(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	first := bus.Subscribe(4)
	second := bus.Subscribe(4)
	assert.Equal(t, 2, bus.SubscriberCount())

	bus.Publish(NewEvent(EventAlertResolved, ResolvedPayload{ID: 7}))

	for _, sub := range []*Subscription{first, second} {
		ev := receive(t, sub)
		assert.Equal(t, EventAlertResolved, ev.Type)
		assert.Equal(t, ResolvedPayload{ID: 7}, ev.Payload)
		assert.NotEmpty(t, ev.ID.String())
	}
}

func TestNoReplayForLateSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	bus.Publish(NewEvent(EventAlertCreated, nil))

	late := bus.Subscribe(4)
	select {
	case ev := <-late.C:
		t.Fatalf("late subscriber received %q published before it attached", ev.Type)
	default:
	}
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	slow := bus.Subscribe(1)
	fast := bus.Subscribe(16)

	done := make(chan struct{})
	go func() {
		for range 10 {
			bus.Publish(NewEvent(EventAlertUpdated, nil))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	assert.Equal(t, int64(9), slow.Dropped())
	assert.Equal(t, int64(0), fast.Dropped())
	assert.Len(t, fast.C, 10)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe(1)

	bus.Unsubscribe(sub)
	bus.Unsubscribe(sub)

	_, ok := <-sub.C
	assert.False(t, ok)
	assert.Equal(t, 0, bus.SubscriberCount())

	// publishing to nobody is fine
	bus.Publish(NewEvent(EventAlertCreated, nil))
}

func TestCloseDetachesEveryone(t *testing.T) {
	bus := NewBus()
	subs := []*Subscription{bus.Subscribe(1), bus.Subscribe(1)}

	bus.Close()
	bus.Close()

	for _, sub := range subs {
		_, ok := <-sub.C
		assert.False(t, ok)
	}

	after := bus.Subscribe(1)
	_, ok := <-after.C
	assert.False(t, ok, "subscribing to a closed bus yields a closed channel")
	bus.Publish(NewEvent(EventAlertCreated, nil))
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Publish(NewEvent(EventAlertUpdated, nil))
		}()
		go func() {
			defer wg.Done()
			sub := bus.Subscribe(2)
			bus.Unsubscribe(sub)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, bus.SubscriberCount())
}
