package sequencer

import (
	"fmt"
	"time"
)

// Frame is a snapshot of what a demo widget should display.
type Frame struct {
	Script     string   `json:"script"`
	Waiting    bool     `json:"waiting"`
	Cycle      int      `json:"cycle"`
	Phase      string   `json:"phase"`
	PhaseIndex int      `json:"phase_index"`
	Prompt     string   `json:"prompt"`
	Terminal   []string `json:"terminal"`
	Result     []string `json:"result"`
}

// state holds every counter of the machine. Nothing that affects the next
// transition lives outside it.
type state struct {
	waiting  bool
	cycle    int
	phase    int
	cursor   int  // units revealed in the current phase
	dwelling bool // reveal exhausted, waiting out the dwell
	prompt   []rune
	terminal []string
	result   []string
}

// Timeline is a deterministic, virtual-time run of a Script. It is not
// safe for concurrent use; Player serialises access.
type Timeline struct {
	script  Script
	st      state
	elapsed time.Duration // virtual time since Start
	next    time.Duration // virtual time of the next transition
}

// NewTimeline validates s and returns a dormant timeline.
func NewTimeline(s Script) (*Timeline, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("sequencer: script %q: %w", s.Name, err)
	}
	return &Timeline{script: s, st: state{waiting: true}}, nil
}

// Script returns the script being played.
func (t *Timeline) Script() Script { return t.script }

// CycleDuration returns the length of one full cycle of the script.
func (t *Timeline) CycleDuration() time.Duration { return t.script.CycleDuration() }

// Waiting reports whether Start has not been called yet.
func (t *Timeline) Waiting() bool { return t.st.waiting }

// Start enters the first phase. Calling it again has no effect.
func (t *Timeline) Start() {
	if !t.st.waiting {
		return
	}
	t.st.waiting = false
	t.enter(0)
}

// Until returns the time left before the next transition. A dormant
// timeline never transitions and reports zero.
func (t *Timeline) Until() time.Duration {
	if t.st.waiting {
		return 0
	}
	return t.next - t.elapsed
}

// Step jumps to the next transition and applies it.
func (t *Timeline) Step() {
	if t.st.waiting {
		return
	}
	t.elapsed = t.next
	t.apply()
}

// Elapse advances virtual time by d, applying every transition due at or
// before the new time.
func (t *Timeline) Elapse(d time.Duration) {
	if t.st.waiting {
		return
	}
	target := t.elapsed + d
	for t.next <= target {
		t.elapsed = t.next
		t.apply()
	}
	t.elapsed = target
}

// Frame returns the current display state.
func (t *Timeline) Frame() Frame {
	f := Frame{
		Script:     t.script.Name,
		Waiting:    t.st.waiting,
		Cycle:      t.st.cycle,
		PhaseIndex: t.st.phase,
		Prompt:     string(t.st.prompt),
		Terminal:   append([]string{}, t.st.terminal...),
		Result:     append([]string{}, t.st.result...),
	}
	if !t.st.waiting {
		f.Phase = t.script.Phases[t.st.phase].Name
	}
	return f
}

func (t *Timeline) enter(i int) {
	t.st.phase = i
	t.st.cursor = 0
	p := t.script.Phases[i]
	if p.Reveal.units() > 0 {
		t.st.dwelling = false
		t.next = t.elapsed + p.Reveal.Tick
		return
	}
	t.st.dwelling = true
	t.next = t.elapsed + p.Dwell
}

func (t *Timeline) apply() {
	p := t.script.Phases[t.st.phase]
	if !t.st.dwelling {
		t.revealUnit(p.Reveal)
		t.st.cursor++
		if t.st.cursor < p.Reveal.units() {
			t.next = t.elapsed + p.Reveal.Tick
			return
		}
		t.st.dwelling = true
		t.next = t.elapsed + p.Dwell
		return
	}

	if t.st.phase+1 < len(t.script.Phases) {
		t.enter(t.st.phase + 1)
		return
	}
	t.st.prompt = nil
	t.st.terminal = nil
	t.st.result = nil
	t.st.cycle++
	t.enter(0)
}

func (t *Timeline) revealUnit(r *Reveal) {
	switch r.Target {
	case TargetPrompt:
		t.st.prompt = append(t.st.prompt, []rune(r.Text)[t.st.cursor])
	case TargetTerminal:
		t.st.terminal = append(t.st.terminal, r.Lines[t.st.cursor])
	case TargetResult:
		t.st.result = append(t.st.result, r.Lines[t.st.cursor])
	}
}
