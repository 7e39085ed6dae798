package buffer

import "log/slog"

// Unbounded creates a channel buffer that grows as needed, so producers
// never block on a slow consumer. It returns a write-only channel to feed
// items in and a read-only channel to drain them.
//
// initialCap sizes the backing slice. hardLimit caps queue growth; once
// reached, the oldest item is dropped. State change events are cheap and
// a consumer that far behind is gone anyway.
//
// Closing the input channel flushes the queue and then closes the output.
func Unbounded[T any](initialCap, hardLimit int) (chan<- T, <-chan T) {
	in := make(chan T, 8)
	out := make(chan T, 8)

	go func() {
		defer close(out)

		queue := make([]T, 0, initialCap)

		for {
			var next T
			var downstream chan T

			// Only arm the send case when there is something to send.
			if len(queue) > 0 {
				next = queue[0]
				downstream = out
			}

			select {
			case val, ok := <-in:
				if !ok {
					for _, item := range queue {
						out <- item
					}
					return
				}
				if len(queue) >= hardLimit {
					slog.Warn("event buffer full, dropping oldest", "limit", hardLimit)
					queue = queue[1:]
				}
				queue = append(queue, val)

			case downstream <- next:
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
