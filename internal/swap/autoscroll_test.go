package swap

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exd-tools/surveil-admin/pkg/config"
)

type fakeViewport struct {
	mu     sync.Mutex
	top    float64
	max    float64
	height float64
}

func (v *fakeViewport) ScrollTop() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.top
}

func (v *fakeViewport) MaxScroll() float64 { return v.max }
func (v *fakeViewport) Height() float64    { return v.height }

func (v *fakeViewport) ScrollBy(delta float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.top += delta
	if v.top < 0 {
		v.top = 0
	}
	if v.top > v.max {
		v.top = v.max
	}
}

func newFakeViewport(top float64) *fakeViewport {
	return &fakeViewport{top: top, max: 1000, height: 600}
}

func TestEdgeScroller_ScrollsDownInBottomMargin(t *testing.T) {
	vp := newFakeViewport(0)
	s := NewEdgeScroller(vp, 80, 8, time.Millisecond)
	defer s.Stop()

	s.PointerAt(580)
	require.True(t, s.Running())

	assert.Eventually(t, func() bool {
		return vp.ScrollTop() > 0
	}, time.Second, time.Millisecond)
}

func TestEdgeScroller_ScrollsUpInTopMargin(t *testing.T) {
	vp := newFakeViewport(500)
	s := NewEdgeScroller(vp, 80, 8, time.Millisecond)
	defer s.Stop()

	s.PointerAt(20)
	require.True(t, s.Running())

	assert.Eventually(t, func() bool {
		return vp.ScrollTop() < 500
	}, time.Second, time.Millisecond)
}

func TestEdgeScroller_IdleOutsideMargins(t *testing.T) {
	vp := newFakeViewport(500)
	s := NewEdgeScroller(vp, 80, 8, time.Millisecond)

	s.PointerAt(300)
	assert.False(t, s.Running())
	assert.Equal(t, 500.0, vp.ScrollTop())
}

func TestEdgeScroller_NoScrollRoomNoLoop(t *testing.T) {
	vp := newFakeViewport(0)
	s := NewEdgeScroller(vp, 80, 8, time.Millisecond)

	// Top margin with nothing above: nothing to scroll.
	s.PointerAt(10)
	assert.False(t, s.Running())

	vp.top = vp.max
	s.PointerAt(590)
	assert.False(t, s.Running())
}

func TestEdgeScroller_LeavingMarginStopsLoop(t *testing.T) {
	vp := newFakeViewport(0)
	s := NewEdgeScroller(vp, 80, 8, time.Millisecond)
	defer s.Stop()

	s.PointerAt(580)
	require.True(t, s.Running())

	s.PointerAt(300)
	assert.False(t, s.Running())
}

func TestEdgeScroller_StopHaltsScrolling(t *testing.T) {
	vp := newFakeViewport(0)
	s := NewEdgeScroller(vp, 80, 8, time.Millisecond)

	s.PointerAt(580)
	require.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())

	// No further position changes after the loop is gone.
	settled := vp.ScrollTop()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, vp.ScrollTop())
}

func TestEdgeScroller_StopIsIdempotent(t *testing.T) {
	vp := newFakeViewport(0)
	s := NewEdgeScroller(vp, 80, 8, time.Millisecond)

	s.Stop()
	s.PointerAt(580)
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}

func TestEdgeScroller_FromConfig(t *testing.T) {
	vp := newFakeViewport(0)
	s := NewEdgeScrollerFromConfig(vp, config.SwapConfig{
		ScrollMargin:  40,
		ScrollSpeed:   4,
		FrameInterval: time.Millisecond,
	})
	defer s.Stop()

	// Outside the tighter margin nothing happens; inside it the loop runs.
	s.PointerAt(550)
	assert.False(t, s.Running())
	s.PointerAt(590)
	assert.True(t, s.Running())
}

func TestEdgeScroller_StopsAtScrollEnd(t *testing.T) {
	vp := newFakeViewport(0)
	vp.max = 16
	s := NewEdgeScroller(vp, 80, 8, time.Millisecond)
	defer s.Stop()

	s.PointerAt(580)

	assert.Eventually(t, func() bool {
		return !s.Running()
	}, time.Second, time.Millisecond)
	assert.Equal(t, 16.0, vp.ScrollTop())
}
