package buffer

import (
	"testing"
	"time"
)

func TestUnboundedPassesThrough(t *testing.T) {
	in, out := Unbounded[int](4, 100)
	for i := 0; i < 10; i++ {
		in <- i
	}
	for i := 0; i < 10; i++ {
		select {
		case v := <-out:
			if v != i {
				t.Fatalf("got %d, want %d", v, i)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out")
		}
	}
}

func TestUnboundedFlushesOnClose(t *testing.T) {
	in, out := Unbounded[string](4, 100)
	in <- "a"
	in <- "b"
	close(in)

	var got []string
	for v := range out {
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}

func TestUnboundedNeverBlocksProducer(t *testing.T) {
	in, out := Unbounded[int](4, 50)
	done := make(chan struct{})
	go func() {
		// Far more than any channel capacity; no consumer yet.
		for i := 0; i < 1000; i++ {
			in <- i
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer blocked")
	}

	// Oldest items were dropped at the limit; drain what is left.
	close(in)
	count := 0
	for range out {
		count++
	}
	if count == 0 || count > 1000 {
		t.Fatalf("drained %d items", count)
	}
}
