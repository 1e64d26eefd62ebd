package network

import (
	"testing"

	"verdant-server/pkg/api"
)

func TestRegisterAndBroadcast(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Register("s1")
	ch2 := b.Register("s2")

	b.Broadcast(api.ServerResponse{Tick: 7})

	for _, ch := range []chan api.ServerResponse{ch1, ch2} {
		select {
		case msg := <-ch:
			if msg.Tick != 7 {
				t.Errorf("tick = %d, want 7", msg.Tick)
			}
		default:
			t.Error("subscriber did not receive the broadcast")
		}
	}
}

func TestSendToIsUnicast(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Register("s1")
	ch2 := b.Register("s2")

	b.SendTo("s1", api.ServerResponse{Tick: 1})

	if len(ch1) != 1 {
		t.Error("target session must receive the message")
	}
	if len(ch2) != 0 {
		t.Error("other sessions must not receive a unicast")
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	b.Register("slow")

	// Overflow the buffered channel; Broadcast must never block
	for i := 0; i < 150; i++ {
		b.Broadcast(api.ServerResponse{Tick: uint64(i)})
	}
}

func TestReRegisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("s1")
	b.Register("s1")

	if _, open := <-old; open {
		t.Error("old channel must be closed on re-register")
	}
	if b.SubscriberCount() != 1 {
		t.Errorf("subscribers = %d, want 1", b.SubscriberCount())
	}
}

func TestUnregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("s1")
	b.Unregister("s1")

	if b.HasSubscriber("s1") {
		t.Error("unregistered session must be gone")
	}
	if _, open := <-ch; open {
		t.Error("channel must be closed on unregister")
	}
}
