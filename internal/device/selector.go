package device

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultOrientationSettle = 100 * time.Millisecond

// Selector keeps the current classification of one client and tells subscribers
// when the decision changes. Resizes apply immediately; orientation changes wait for the
// viewport to settle and a newer event supersedes a pending one.
type Selector struct {
	mu       sync.Mutex
	current  Classification
	viewport Viewport
	settle   time.Duration
	pending  *time.Timer
	gen      uint64
	subs     map[int]chan Classification
	nextID   int
	closed   bool
	logger   *zap.Logger
}

func NewSelector(initial Viewport, settle time.Duration, logger *zap.Logger) *Selector {
	if settle <= 0 {
		settle = DefaultOrientationSettle
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		current:  initial.Classify(),
		viewport: initial,
		settle:   settle,
		subs:     make(map[int]chan Classification),
		logger:   logger,
	}
}

func (s *Selector) Current() Classification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Selector) Viewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

func (s *Selector) Resize(v Viewport) Classification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.current
	}
	s.cancelPendingLocked()
	s.applyLocked(v)
	return s.current
}

func (s *Selector) OrientationChange(v Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.cancelPendingLocked()
	gen := s.gen
	s.pending = time.AfterFunc(s.settle, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || gen != s.gen {
			return
		}
		s.pending = nil
		s.applyLocked(v)
	})
}

// Subscribe returns a channel holding at most the latest unseen classification.
func (s *Selector) Subscribe() (<-chan Classification, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Classification, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancelPendingLocked()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *Selector) cancelPendingLocked() {
	s.gen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Selector) applyLocked(v Viewport) {
	s.viewport = v
	next := v.Classify()
	previous := s.current
	s.current = next
	if sameDecision(previous, next) {
		return
	}
	s.logger.Debug("view classification changed",
		zap.String("from", string(previous.Layout())),
		zap.String("to", string(next.Layout())),
		zap.Float64("width", v.Width),
		zap.Float64("height", v.Height),
	)
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}

// sameDecision ignores the exact aspect ratio; only the discrete flags drive a re-render.
func sameDecision(a, b Classification) bool {
	a.AspectRatio, b.AspectRatio = 0, 0
	return a == b
}
