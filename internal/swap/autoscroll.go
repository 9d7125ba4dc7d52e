package swap

import (
	"sync"
	"time"

	"github.com/exd-tools/surveil-admin/pkg/config"
)

// Viewport abstracts the scrollable assignment list container.
type Viewport interface {
	// ScrollTop returns the current scroll offset.
	ScrollTop() float64
	// MaxScroll returns the largest valid scroll offset.
	MaxScroll() float64
	// Height returns the visible height of the container.
	Height() float64
	// ScrollBy shifts the scroll offset by delta, clamping to [0, MaxScroll].
	ScrollBy(delta float64)
}

// Edge scroller defaults, matching the drag affordance of the assignment list.
const (
	DefaultScrollMargin  = 80.0
	DefaultScrollSpeed   = 8.0
	DefaultFrameInterval = 16 * time.Millisecond
)

// EdgeScroller scrolls the viewport while a drag pointer hovers near its top
// or bottom edge. The frame loop starts lazily when the pointer first enters
// a margin and must be stopped on every drag exit path; Stop is idempotent.
type EdgeScroller struct {
	viewport Viewport
	margin   float64
	speed    float64
	interval time.Duration

	mu        sync.Mutex
	direction int
	stop      chan struct{}
	done      chan struct{}
}

// NewEdgeScroller builds a scroller over the given viewport. Non-positive
// tuning values fall back to the defaults above.
func NewEdgeScroller(viewport Viewport, margin, speed float64, interval time.Duration) *EdgeScroller {
	if margin <= 0 {
		margin = DefaultScrollMargin
	}
	if speed <= 0 {
		speed = DefaultScrollSpeed
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &EdgeScroller{
		viewport: viewport,
		margin:   margin,
		speed:    speed,
		interval: interval,
	}
}

// NewEdgeScrollerFromConfig builds a scroller with the configured margin,
// speed and frame interval.
func NewEdgeScrollerFromConfig(viewport Viewport, cfg config.SwapConfig) *EdgeScroller {
	return NewEdgeScroller(viewport, float64(cfg.ScrollMargin), float64(cfg.ScrollSpeed), cfg.FrameInterval)
}

// PointerAt reports the pointer's y position relative to the top of the
// viewport. Entering a margin starts the loop; leaving both margins stops it.
func (s *EdgeScroller) PointerAt(y float64) {
	dir := s.directionFor(y)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.direction = dir
	if dir == 0 {
		s.stopLocked()
		return
	}
	if s.stop == nil {
		s.startLocked()
	}
}

// directionFor maps a pointer position to -1 (scroll up), +1 (scroll down)
// or 0, considering remaining scroll room.
func (s *EdgeScroller) directionFor(y float64) int {
	switch {
	case y < s.margin && s.viewport.ScrollTop() > 0:
		return -1
	case y > s.viewport.Height()-s.margin && s.viewport.ScrollTop() < s.viewport.MaxScroll():
		return 1
	default:
		return 0
	}
}

// Stop cancels the frame loop and waits for it to exit. Safe to call in any
// state and from any drag exit path.
func (s *EdgeScroller) Stop() {
	s.mu.Lock()
	done := s.done
	s.stopLocked()
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Running reports whether the frame loop is active.
func (s *EdgeScroller) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *EdgeScroller) startLocked() {
	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop = stop
	s.done = done
	go s.loop(stop, done)
}

func (s *EdgeScroller) stopLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
		s.done = nil
	}
	s.direction = 0
}

func (s *EdgeScroller) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !s.step() {
				return
			}
		}
	}
}

// step advances one frame. Returns false when the scroll room in the current
// direction is exhausted, which also tears the loop down.
func (s *EdgeScroller) step() bool {
	s.mu.Lock()
	dir := s.direction
	s.mu.Unlock()

	if dir == 0 {
		return true
	}

	top := s.viewport.ScrollTop()
	if (dir < 0 && top <= 0) || (dir > 0 && top >= s.viewport.MaxScroll()) {
		s.mu.Lock()
		s.stopLocked()
		s.mu.Unlock()
		return false
	}

	s.viewport.ScrollBy(float64(dir) * s.speed)
	return true
}
