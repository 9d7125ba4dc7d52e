package swap

import (
	"sync"
	"time"
)

// ToastPresenter holds at most one transient message at a time. A message
// auto-dismisses after the TTL; showing a new one replaces the current
// message and restarts the timer. Dismiss clears it early.
type ToastPresenter struct {
	mu      sync.Mutex
	ttl     time.Duration
	timer   *time.Timer
	seq     uint64
	current string
	onClear func()
}

// DefaultToastTTL applies when the presenter is built with a non-positive TTL.
const DefaultToastTTL = 5 * time.Second

// NewToastPresenter builds a presenter with the given time to live.
func NewToastPresenter(ttl time.Duration) *ToastPresenter {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &ToastPresenter{ttl: ttl}
}

// OnClear registers a callback invoked whenever the message is cleared,
// whether by timeout or by Dismiss. Used by interactive renderings to erase
// the message line.
func (p *ToastPresenter) OnClear(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onClear = fn
}

// Show replaces the current message and restarts the dismissal timer.
func (p *ToastPresenter) Show(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.seq++
	p.current = msg

	seq := p.seq
	p.timer = time.AfterFunc(p.ttl, func() {
		p.expire(seq)
	})
}

// expire clears the message only if no newer Show superseded this timer.
func (p *ToastPresenter) expire(seq uint64) {
	p.mu.Lock()
	if p.seq != seq || p.current == "" {
		p.mu.Unlock()
		return
	}
	p.current = ""
	fn := p.onClear
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Dismiss clears the current message before its timer fires.
func (p *ToastPresenter) Dismiss() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
	}
	cleared := p.current != ""
	p.current = ""
	fn := p.onClear
	p.mu.Unlock()

	if cleared && fn != nil {
		fn()
	}
}

// Current returns the displayed message, if any.
func (p *ToastPresenter) Current() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.current != ""
}
