package platform

import (
	"sync"
	"time"
)

// Timer is a single-shot timer. Arming an already armed timer cancels the
// pending expiry first, so at most one expiry is ever outstanding. OnTimeout
// runs on the dispatch loop; it is never re-fired unless the timer is wound
// up again.
//
// Destroy cancels best-effort: an expiry already posted to the loop at the
// moment of destruction is suppressed by the generation check, but a caller
// that frees resources used by OnTimeout must do so from the dispatch
// goroutine to be safe.
type Timer struct {
	OnTimeout func()

	loop *Loop

	mu      sync.Mutex
	pending *time.Timer
	gen     uint64
	dead    bool
}

func NewTimer(loop *Loop) *Timer {
	return &Timer{loop: loop}
}

// WindUp arms the timer to fire once after d, replacing any pending expiry.
func (t *Timer) WindUp(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dead {
		return
	}
	if t.pending != nil {
		t.pending.Stop()
	}
	t.gen++
	gen := t.gen
	t.pending = time.AfterFunc(d, func() {
		t.loop.Post(func() { t.fire(gen) })
	})
}

func (t *Timer) fire(gen uint64) {
	t.mu.Lock()
	if t.dead || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.pending = nil
	cb := t.OnTimeout
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// Destroy cancels any pending expiry and inhibits future ones.
func (t *Timer) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dead = true
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
