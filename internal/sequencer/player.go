package sequencer

import (
	"context"
	"sync"
	"time"
)

// Player drives a Timeline on real timers. It stays dormant until the
// first Trigger; later triggers are ignored. Stop cancels every pending
// timer and is the only way to halt playback.
type Player struct {
	mu        sync.Mutex
	tl        *Timeline
	emit      func(Frame)
	triggered bool
	stopped   bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewPlayer creates a dormant player for s. emit receives every frame,
// starting with the one produced by Trigger; it is called from the
// player's goroutine and must not block for long.
func NewPlayer(s Script, emit func(Frame)) (*Player, error) {
	tl, err := NewTimeline(s)
	if err != nil {
		return nil, err
	}
	if emit == nil {
		emit = func(Frame) {}
	}
	return &Player{tl: tl, emit: emit}, nil
}

// Trigger starts playback the first time it is called and reports whether
// it did. It never restarts a player, including a stopped one.
func (p *Player) Trigger() bool {
	p.mu.Lock()
	if p.triggered || p.stopped {
		p.mu.Unlock()
		return false
	}
	p.triggered = true
	p.tl.Start()
	first := p.tl.Frame()
	wait := p.tl.Until()

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.mu.Unlock()

	go p.run(ctx, first, wait)
	return true
}

func (p *Player) run(ctx context.Context, first Frame, wait time.Duration) {
	defer close(p.done)

	p.emit(first)
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			p.mu.Lock()
			p.tl.Step()
			f := p.tl.Frame()
			wait = p.tl.Until()
			p.mu.Unlock()

			if ctx.Err() != nil {
				return
			}
			p.emit(f)
			timer.Reset(wait)
		}
	}
}

// Frame returns the current frame.
func (p *Player) Frame() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tl.Frame()
}

// Stop cancels pending timers and waits for the playback goroutine.
// It is safe to call more than once and before Trigger.
func (p *Player) Stop() {
	p.mu.Lock()
	p.stopped = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
