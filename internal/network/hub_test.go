package network

import (
	"testing"

	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
)

func TestBroadcasterSendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("token-1")

	b.SendTo("token-1", api.ServerResponse{Type: "RESULT", Tick: 3})

	select {
	case msg := <-ch:
		if msg.Type != "RESULT" || msg.Tick != 3 {
			t.Errorf("Unexpected message: %+v", msg)
		}
	default:
		t.Fatal("Expected a message in the subscriber channel")
	}

	// Unknown token is a silent no-op
	b.SendTo("ghost", api.ServerResponse{Type: "RESULT"})
}

func TestBroadcasterBroadcast(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Register("t1")
	ch2 := b.Register("t2")

	b.Broadcast(api.ServerResponse{Type: "UPDATE"})

	for i, ch := range []chan api.ServerResponse{ch1, ch2} {
		select {
		case msg := <-ch:
			if msg.Type != "UPDATE" {
				t.Errorf("Subscriber %d got %+v", i, msg)
			}
		default:
			t.Errorf("Subscriber %d missed the broadcast", i)
		}
	}
}

func TestBroadcasterUnregisterClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("t1")

	if !b.HasSubscriber("t1") {
		t.Fatal("Expected subscriber to be registered")
	}

	b.Unregister("t1")

	if b.HasSubscriber("t1") {
		t.Error("Subscriber should be gone")
	}
	if _, ok := <-ch; ok {
		t.Error("Channel should be closed after Unregister")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d, want 0", b.SubscriberCount())
	}
}

func TestBroadcasterReRegisterReplacesChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("t1")
	fresh := b.Register("t1")

	if _, ok := <-old; ok {
		t.Error("Old channel should be closed on re-register")
	}

	b.SendTo("t1", api.ServerResponse{Type: "INIT"})
	select {
	case msg := <-fresh:
		if msg.Type != "INIT" {
			t.Errorf("Unexpected message: %+v", msg)
		}
	default:
		t.Error("Fresh channel should receive messages")
	}
}

func TestBroadcasterDropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	b.Register("slow")

	// Channel capacity is 100; the overflow frame is dropped, not blocked
	for i := 0; i < 150; i++ {
		b.Broadcast(api.ServerResponse{Type: "UPDATE", Tick: i})
	}
}
