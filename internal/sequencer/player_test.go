package sequencer

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/starford/sitekit/internal/testutil"
)

type frameLog struct {
	mu     sync.Mutex
	frames []Frame
}

func (l *frameLog) add(f Frame) {
	l.mu.Lock()
	l.frames = append(l.frames, f)
	l.mu.Unlock()
}

func (l *frameLog) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.frames)
}

func (l *frameLog) first() Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames[0]
}

func fastScript(t *testing.T) Script {
	t.Helper()
	s, err := NewScript("fast", "").
		Type("typing", "go", time.Millisecond, time.Millisecond).
		Print("terminal-running", TargetTerminal, []string{"ok"}, time.Millisecond, time.Millisecond).
		Hold("hold", 2*time.Millisecond).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPlayer_DormantUntilTriggered(t *testing.T) {
	defer goleak.VerifyNone(t)

	log := &frameLog{}
	p, err := NewPlayer(fastScript(t), log.add)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if log.len() != 0 {
		t.Fatalf("frames emitted before trigger: %d", log.len())
	}
	if !p.Frame().Waiting {
		t.Error("player should be waiting")
	}
	p.Stop()
}

func TestPlayer_TriggersOnceAndLoops(t *testing.T) {
	defer goleak.VerifyNone(t)

	log := &frameLog{}
	p, _ := NewPlayer(fastScript(t), log.add)

	if !p.Trigger() {
		t.Fatal("first trigger should start playback")
	}
	if p.Trigger() {
		t.Error("second trigger should be ignored")
	}

	testutil.Eventually(t, 2*time.Second, 5*time.Millisecond, func() bool { return p.Frame().Cycle >= 2 }, "player did not loop")
	p.Stop()

	first := log.first()
	if first.Waiting || first.Phase != "typing" || first.Prompt != "" {
		t.Errorf("first frame = %+v", first)
	}
}

func TestPlayer_StopCancelsTimers(t *testing.T) {
	defer goleak.VerifyNone(t)

	log := &frameLog{}
	p, _ := NewPlayer(fastScript(t), log.add)
	p.Trigger()
	testutil.Eventually(t, time.Second, 5*time.Millisecond, func() bool { return log.len() > 3 }, "no frames emitted")

	p.Stop()
	n := log.len()
	time.Sleep(30 * time.Millisecond)
	if log.len() != n {
		t.Errorf("frames emitted after Stop: %d -> %d", n, log.len())
	}
	p.Stop()
}

func TestPlayer_StopBeforeTriggerPreventsStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	log := &frameLog{}
	p, _ := NewPlayer(fastScript(t), log.add)
	p.Stop()
	if p.Trigger() {
		t.Error("stopped player must not start")
	}
	time.Sleep(10 * time.Millisecond)
	if log.len() != 0 {
		t.Errorf("frames = %d, want 0", log.len())
	}
}

func TestNewPlayer_InvalidScript(t *testing.T) {
	if _, err := NewPlayer(Script{Name: "x"}, nil); err == nil {
		t.Error("expected error for script without phases")
	}
}
