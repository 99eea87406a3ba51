package adminhttp

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRefresherSingleLeaderAndFIFORelease(t *testing.T) {
	t.Parallel()

	r := NewRefresher()
	leader, _ := r.AcquireOrWait(0)
	if !leader {
		t.Fatalf("first caller should lead")
	}

	tickets := make([]Ticket, 3)
	for i := range tickets {
		isLeader, ticket := r.AcquireOrWait(0)
		if isLeader {
			t.Fatalf("caller %d should wait", i)
		}
		tickets[i] = ticket
	}
	if r.Waiting() != 3 || !r.Refreshing() {
		t.Fatalf("unexpected state: waiting=%d refreshing=%v", r.Waiting(), r.Refreshing())
	}

	failure := errors.New("boom")
	r.Release(failure)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for i, ticket := range tickets {
		if err := ticket.Wait(ctx); !errors.Is(err, failure) {
			t.Fatalf("ticket %d: unexpected outcome %v", i, err)
		}
	}
	if r.Refreshing() || r.Waiting() != 0 || r.Cycle() != 1 {
		t.Fatalf("refresher not idle after release")
	}
}

func TestRefresherLateCallerJoinsSettledCycle(t *testing.T) {
	t.Parallel()

	r := NewRefresher()
	seen := r.Cycle()

	leader, _ := r.AcquireOrWait(seen)
	if !leader {
		t.Fatalf("expected leadership")
	}
	r.Release(nil)

	isLeader, ticket := r.AcquireOrWait(seen)
	if isLeader {
		t.Fatalf("a 401 from before the settled cycle must not start another refresh")
	}
	if err := ticket.Wait(context.Background()); err != nil {
		t.Fatalf("expected settled success, got %v", err)
	}

	isLeader, _ = r.AcquireOrWait(r.Cycle())
	if !isLeader {
		t.Fatalf("a 401 after the settled cycle should start a new refresh")
	}
}

func TestTicketWaitHonoursContext(t *testing.T) {
	t.Parallel()

	r := NewRefresher()
	r.AcquireOrWait(0)
	_, ticket := r.AcquireOrWait(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ticket.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}

	r.Release(nil)
}

func TestReleaseWithoutLeaderIsNoop(t *testing.T) {
	t.Parallel()

	r := NewRefresher()
	r.Release(errors.New("stray"))
	if r.Cycle() != 0 {
		t.Fatalf("stray release advanced the cycle")
	}
}
