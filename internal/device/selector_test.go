package device

import (
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan Classification) Classification {
	t.Helper()
	select {
	case got, ok := <-ch:
		if !ok {
			t.Fatalf("subscription closed")
		}
		return got
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for classification")
	}
	return Classification{}
}

func TestSelectorResizeNotifiesOnlyOnChange(t *testing.T) {
	t.Parallel()

	selector := NewSelector(Viewport{Width: 1280, Height: 800}, 0, nil)
	defer selector.Close()

	updates, cancel := selector.Subscribe()
	defer cancel()

	selector.Resize(Viewport{Width: 1300, Height: 800})
	select {
	case got := <-updates:
		t.Fatalf("unexpected notification for unchanged classification: %+v", got)
	default:
	}
	if selector.Viewport().Width != 1300 {
		t.Fatalf("viewport not recorded")
	}

	selector.Resize(Viewport{Width: 390, Height: 844})
	got := receive(t, updates)
	if !got.IsMobile || !got.ShouldUseMobileView {
		t.Fatalf("unexpected classification: %+v", got)
	}
	if !selector.Current().IsMobile {
		t.Fatalf("current not updated")
	}
}

func TestSelectorOrientationChangeWaitsForSettle(t *testing.T) {
	t.Parallel()

	selector := NewSelector(Viewport{Width: 820, Height: 1180}, 20*time.Millisecond, nil)
	defer selector.Close()

	updates, cancel := selector.Subscribe()
	defer cancel()

	selector.OrientationChange(Viewport{Width: 1180, Height: 820})
	if !selector.Current().IsPortrait {
		t.Fatalf("orientation change applied before settle delay")
	}

	got := receive(t, updates)
	if !got.IsLandscape || got.ShouldUseMobileView {
		t.Fatalf("unexpected classification after rotation: %+v", got)
	}
}

func TestSelectorLaterEventSupersedesPendingOrientation(t *testing.T) {
	t.Parallel()

	selector := NewSelector(Viewport{Width: 820, Height: 1180}, 30*time.Millisecond, nil)
	defer selector.Close()

	selector.OrientationChange(Viewport{Width: 1180, Height: 820})
	selector.Resize(Viewport{Width: 390, Height: 844})

	time.Sleep(80 * time.Millisecond)
	if got := selector.Current(); !got.IsMobile {
		t.Fatalf("stale orientation event overwrote a newer resize: %+v", got)
	}
}

func TestSelectorCloseEndsSubscriptions(t *testing.T) {
	t.Parallel()

	selector := NewSelector(Viewport{Width: 1280, Height: 800}, 0, nil)
	updates, cancel := selector.Subscribe()
	selector.Close()
	cancel()

	if _, ok := <-updates; ok {
		t.Fatalf("expected closed subscription")
	}

	late, _ := selector.Subscribe()
	if _, ok := <-late; ok {
		t.Fatalf("subscribe after close should return a closed channel")
	}
}
