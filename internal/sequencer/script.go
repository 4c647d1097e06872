// Package sequencer plays the looping demo animations: scripted phases that
// type out a prompt, print terminal lines and reveal a result panel, then
// reset and start over.
package sequencer

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Target is the buffer a reveal appends to.
type Target string

const (
	TargetPrompt   Target = "prompt"   // one character per tick
	TargetTerminal Target = "terminal" // one line per tick
	TargetResult   Target = "result"   // one line per tick
)

// Reveal is the inner per-unit loop of a phase.
type Reveal struct {
	Target Target
	Text   string   // for TargetPrompt
	Lines  []string // for TargetTerminal and TargetResult
	Tick   time.Duration
}

func (r *Reveal) units() int {
	if r == nil {
		return 0
	}
	if r.Target == TargetPrompt {
		return utf8.RuneCountInString(r.Text)
	}
	return len(r.Lines)
}

// Validate validates the reveal.
func (r Reveal) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Target, validation.Required, validation.In(TargetPrompt, TargetTerminal, TargetResult)),
		validation.Field(&r.Tick, validation.When(r.units() > 0, validation.Required, validation.Min(time.Millisecond))),
	)
}

// Phase is one named step of a script. Its duration is the reveal length
// times the tick plus the dwell that follows.
type Phase struct {
	Name   string
	Dwell  time.Duration
	Reveal *Reveal
}

// Duration returns the total time spent in the phase.
func (p Phase) Duration() time.Duration {
	d := p.Dwell
	if n := p.Reveal.units(); n > 0 {
		d += time.Duration(n) * p.Reveal.Tick
	}
	return d
}

// Validate validates the phase.
func (p Phase) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Dwell, validation.Min(time.Duration(0))),
		validation.Field(&p.Reveal),
	); err != nil {
		return err
	}
	if p.Duration() <= 0 {
		return errors.New("phase has zero duration")
	}
	return nil
}

// Script is a named phase table.
type Script struct {
	Name   string
	Title  string
	Phases []Phase
}

// Validate validates the script.
func (s Script) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Phases, validation.Required),
	)
}

// CycleDuration is the sum of all phase durations.
func (s Script) CycleDuration() time.Duration {
	var total time.Duration
	for _, p := range s.Phases {
		total += p.Duration()
	}
	return total
}

// Builder assembles a Script phase by phase.
type Builder struct {
	script Script
}

// NewScript starts a script named name.
func NewScript(name, title string) *Builder {
	return &Builder{script: Script{Name: name, Title: title}}
}

// Type types text into the prompt one character per tick, then dwells.
func (b *Builder) Type(phase, text string, tick, dwell time.Duration) *Builder {
	return b.add(Phase{Name: phase, Dwell: dwell, Reveal: &Reveal{Target: TargetPrompt, Text: text, Tick: tick}})
}

// Print appends lines to target one per tick, then dwells.
func (b *Builder) Print(phase string, target Target, lines []string, tick, dwell time.Duration) *Builder {
	return b.add(Phase{Name: phase, Dwell: dwell, Reveal: &Reveal{Target: target, Lines: lines, Tick: tick}})
}

// Hold adds a phase that only waits.
func (b *Builder) Hold(phase string, dwell time.Duration) *Builder {
	return b.add(Phase{Name: phase, Dwell: dwell})
}

func (b *Builder) add(p Phase) *Builder {
	b.script.Phases = append(b.script.Phases, p)
	return b
}

// Build validates and returns the script.
func (b *Builder) Build() (Script, error) {
	if err := b.script.Validate(); err != nil {
		return Script{}, fmt.Errorf("sequencer: script %q: %w", b.script.Name, err)
	}
	return b.script, nil
}

// MustBuild is Build for package-level script tables.
func (b *Builder) MustBuild() Script {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
