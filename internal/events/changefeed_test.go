package events

import (
	"testing"

	"github.com/rs/zerolog"
)

func newTestFeed() *Changefeed {
	return NewChangefeed(nil, zerolog.Nop())
}

func TestChangefeedDispatchFanOut(t *testing.T) {
	f := newTestFeed()

	id1, ch1 := f.Subscribe()
	id2, ch2 := f.Subscribe()
	defer f.Unsubscribe(id1)
	defer f.Unsubscribe(id2)

	ev := Event{Collection: "results", Action: ActionUpdated, TargetID: "abc"}
	f.dispatch(ev)

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case got := <-ch:
			if got != ev {
				t.Errorf("subscriber %d got %+v, want %+v", i, got, ev)
			}
		default:
			t.Errorf("subscriber %d received nothing", i)
		}
	}
}

func TestChangefeedUnsubscribeClosesChannel(t *testing.T) {
	f := newTestFeed()
	id, ch := f.Subscribe()
	f.Unsubscribe(id)

	if _, open := <-ch; open {
		t.Error("channel still open after Unsubscribe")
	}

	// Dispatch after unsubscribe must not panic on the closed channel.
	f.dispatch(Event{Collection: "groups", Action: ActionDeleted, TargetID: "x"})
}

func TestChangefeedSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	f := newTestFeed()
	id, ch := f.Subscribe()
	defer f.Unsubscribe(id)

	// Overfill the buffer; dispatch must return without blocking.
	for i := 0; i < subscriberBuffer+10; i++ {
		f.dispatch(Event{Collection: "questions", Action: ActionAdded, TargetID: "q"})
	}

	if got := len(ch); got != subscriberBuffer {
		t.Errorf("buffered events = %d, want %d", got, subscriberBuffer)
	}
}
