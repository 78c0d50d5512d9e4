package render

import "sync"

// Viewport is the hosting shell's report of available space: container
// width in logical pixels and the display's device pixel density.
type Viewport struct {
	Width   float64
	Density float64
}

// Redrawer coalesces redraw requests from a resize-happy host. Any
// number of Request calls collapse into at most one pending redraw; the
// most recent viewport always renders eventually. This coalesces rather
// than cancels: an in-flight draw runs to completion (draws are fast and
// synchronous), and a request arriving during it schedules exactly one
// follow-up with the latest dimensions.
type Redrawer struct {
	mu     sync.Mutex
	latest Viewport

	kick chan struct{}
	stop chan struct{}
	wg   sync.WaitGroup

	render func(Viewport)
}

// NewRedrawer starts the redraw loop. render is invoked from a single
// goroutine, never concurrently, satisfying the surface's exclusive
// ownership requirement.
func NewRedrawer(render func(Viewport)) *Redrawer {
	r := &Redrawer{
		kick:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		render: render,
	}
	r.wg.Add(1)
	go r.loop()
	return r
}

// Request schedules a redraw at the given viewport. Safe for concurrent
// use; only the newest viewport is kept.
func (r *Redrawer) Request(v Viewport) {
	r.mu.Lock()
	r.latest = v
	r.mu.Unlock()

	select {
	case r.kick <- struct{}{}:
	default:
		// A redraw is already pending; it will pick up the new viewport.
	}
}

// Close stops the redraw loop and waits for any in-flight draw.
func (r *Redrawer) Close() {
	close(r.stop)
	r.wg.Wait()
}

func (r *Redrawer) loop() {
	defer r.wg.Done()
	for {
		select {
		case <-r.stop:
			return
		case <-r.kick:
			r.mu.Lock()
			v := r.latest
			r.mu.Unlock()
			r.render(v)
		}
	}
}
