package timer

import "time"

// Scheduler manages delayed jobs by translating time into channel sends.
// Jobs are delivered on the out channel and executed by whoever drains it;
// the scheduler never runs a job itself. Sends abort when done closes so a
// late-firing timer cannot block after the receiving loop has exited.
type Scheduler struct {
	out  chan<- func()
	done <-chan struct{}
}

// New creates a Scheduler that delivers jobs to the given channel.
func New(out chan<- func(), done <-chan struct{}) *Scheduler {
	return &Scheduler{out: out, done: done}
}

// Schedule asks to run 'job' after duration 'd'. Returns a cancel function.
func (s *Scheduler) Schedule(d time.Duration, job func()) (cancel func()) {
	t := time.AfterFunc(d, func() {
		select {
		case s.out <- job:
		case <-s.done:
		}
	})
	return func() { t.Stop() }
}
