package logger

import "testing"

func TestBroadcasterFanOut(t *testing.T) {
	b := &Broadcaster{subscribers: make(map[chan string]bool)}

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Write([]byte("hello\n"))

	select {
	case msg := <-ch:
		if msg != "hello\n" {
			t.Errorf("msg = %q, want %q", msg, "hello\n")
		}
	default:
		t.Fatal("subscriber did not receive the message")
	}
}

func TestBroadcasterSlowSubscriberDoesNotBlock(t *testing.T) {
	b := &Broadcaster{subscribers: make(map[chan string]bool)}

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// The channel buffers 100 lines; overflow must be dropped, not block.
	for i := 0; i < 150; i++ {
		if n, err := b.Write([]byte("line\n")); err != nil || n != 5 {
			t.Fatalf("Write() = %d, %v", n, err)
		}
	}

	if len(ch) != 100 {
		t.Errorf("buffered = %d, want 100", len(ch))
	}
}
