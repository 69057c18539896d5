package platform

import "sync"

// Loop is the dispatch loop that owns all windowing state. Backends pump
// native events into it with Post from their reader goroutines; everything
// posted runs sequentially on the goroutine that called Run, so window, menu,
// and timer state need no further locking.
//
// RunNested supports modal flows such as Menu.PopUp: a callback already
// executing inside Run may start a nested pump that keeps dispatching until
// its condition holds, then returns control to the outer frame.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	quit    chan struct{}
	quitReq bool
}

func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
}

// Post schedules fn on the dispatch goroutine. Safe to call from any
// goroutine, including from inside a dispatched function.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// CallSync runs fn on the dispatch goroutine and waits for it to finish.
// Must not be called from the dispatch goroutine itself. Returns without
// running fn if the loop quits first.
func (l *Loop) CallSync(fn func()) {
	done := make(chan struct{})
	l.Post(func() {
		fn()
		close(done)
	})
	select {
	case <-done:
	case <-l.quit:
	}
}

// Run dispatches posted functions until Quit is called.
func (l *Loop) Run() {
	l.RunNested(func() bool { return false })
}

// RunNested dispatches posted functions until done reports true or Quit is
// called. done is re-evaluated after every dispatched function.
func (l *Loop) RunNested(done func() bool) {
	for {
		if l.Quitting() || done() {
			return
		}
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			<-l.wake
			continue
		}
		fn := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()
		fn()
	}
}

// Quit makes Run and any nested pumps return. Pending functions are dropped.
func (l *Loop) Quit() {
	l.mu.Lock()
	if !l.quitReq {
		l.quitReq = true
		close(l.quit)
	}
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Quitting reports whether Quit has been called.
func (l *Loop) Quitting() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.quitReq
}
