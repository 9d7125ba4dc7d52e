package swap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastPresenter_AutoDismiss(t *testing.T) {
	p := NewToastPresenter(20 * time.Millisecond)
	p.Show("même enseignant")

	msg, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "même enseignant", msg)

	assert.Eventually(t, func() bool {
		_, ok := p.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestToastPresenter_ReplaceResetsTimer(t *testing.T) {
	p := NewToastPresenter(60 * time.Millisecond)
	p.Show("first")

	time.Sleep(40 * time.Millisecond)
	p.Show("second")

	// The first timer would have fired by now; the replacement must still
	// be visible because Show restarted the countdown.
	time.Sleep(40 * time.Millisecond)
	msg, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "second", msg)

	assert.Eventually(t, func() bool {
		_, ok := p.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestToastPresenter_EarlyDismiss(t *testing.T) {
	p := NewToastPresenter(time.Minute)

	cleared := make(chan struct{}, 1)
	p.OnClear(func() { cleared <- struct{}{} })

	p.Show("oops")
	p.Dismiss()

	_, ok := p.Current()
	assert.False(t, ok)

	select {
	case <-cleared:
	case <-time.After(time.Second):
		t.Fatal("clear callback not invoked")
	}
}

func TestToastPresenter_SingleMessage(t *testing.T) {
	p := NewToastPresenter(time.Minute)
	p.Show("first")
	p.Show("second")

	msg, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "second", msg)
}

func TestToastPresenter_DefaultTTL(t *testing.T) {
	p := NewToastPresenter(0)
	assert.Equal(t, DefaultToastTTL, p.ttl)
}
