package adminhttp

import (
	"context"
	"sync"
)

// Refresher is the single-flight state behind session refresh. At most one caller
// holds the refresh at a time; everyone else that hits a 401 meanwhile queues and is
// released, in arrival order, with the outcome of that refresh.
type Refresher struct {
	mu         sync.Mutex
	refreshing bool
	waiters    []chan error
	cycle      uint64
	lastErr    error
}

func NewRefresher() *Refresher {
	return &Refresher{}
}

// Ticket is a queued caller's handle on the outcome of a refresh cycle.
type Ticket struct {
	ch <-chan error
}

// Wait blocks until the cycle settles. A nil result means the session was refreshed.
func (t Ticket) Wait(ctx context.Context) error {
	if t.ch == nil {
		return nil
	}
	select {
	case err := <-t.ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cycle reports how many refresh cycles have settled. Callers snapshot it before
// sending a request so a late 401 can be matched to the cycle that already covered it.
func (r *Refresher) Cycle() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycle
}

// AcquireOrWait either makes the caller the refresh leader or hands back a ticket.
// seen is the Cycle value observed before the failed request was sent.
func (r *Refresher) AcquireOrWait(seen uint64) (bool, Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.refreshing {
		ch := make(chan error, 1)
		r.waiters = append(r.waiters, ch)
		return false, Ticket{ch: ch}
	}
	if r.cycle > seen {
		ch := make(chan error, 1)
		ch <- r.lastErr
		return false, Ticket{ch: ch}
	}

	r.refreshing = true
	return true, Ticket{}
}

// Release settles the current cycle and wakes the queue in FIFO order.
func (r *Refresher) Release(err error) {
	r.mu.Lock()
	if !r.refreshing {
		r.mu.Unlock()
		return
	}
	r.refreshing = false
	r.cycle++
	r.lastErr = err
	waiters := r.waiters
	r.waiters = nil
	r.mu.Unlock()

	for _, ch := range waiters {
		ch <- err
	}
}

func (r *Refresher) Refreshing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshing
}

func (r *Refresher) Waiting() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.waiters)
}
