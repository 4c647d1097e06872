package sequencer

import (
	"sort"
	"time"
)

const (
	charTick = 45 * time.Millisecond
	lineTick = 350 * time.Millisecond
)

// Library is a read-only set of scripts by name.
type Library struct {
	scripts map[string]Script
}

// NewLibrary builds a library from scripts.
func NewLibrary(scripts ...Script) *Library {
	l := &Library{scripts: make(map[string]Script, len(scripts))}
	for _, s := range scripts {
		l.scripts[s.Name] = s
	}
	return l
}

// Lookup returns the script called name.
func (l *Library) Lookup(name string) (Script, bool) {
	s, ok := l.scripts[name]
	return s, ok
}

// Names returns the script names in lexical order.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.scripts))
	for k := range l.scripts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Builtin returns the demo scripts used by the built-in site documents.
func Builtin() *Library {
	return NewLibrary(agentTerminal(), chatTyping(), reportReveal())
}

func agentTerminal() Script {
	return NewScript("agent-terminal", "Coding agent picks up a ticket").
		Type("typing", "Fix the flaky checkout test and open a PR", charTick, 400*time.Millisecond).
		Hold("sending", 600*time.Millisecond).
		Hold("terminal-open", 400*time.Millisecond).
		Print("terminal-running", TargetTerminal, []string{
			"$ go test ./checkout/...",
			"--- FAIL: TestCheckout_Retry (0.31s)",
			"reading checkout/retry.go",
			"patching retry backoff to use injected clock",
			"$ go test ./checkout/...",
			"ok   checkout  0.42s",
		}, lineTick, 500*time.Millisecond).
		Hold("terminal-close", 300*time.Millisecond).
		Hold("result-reveal", 300*time.Millisecond).
		Print("result-build", TargetResult, []string{
			"PR #482 opened: Make retry test deterministic",
			"1 file changed, 14 insertions, 6 deletions",
			"CI: all checks passed",
		}, lineTick, 0).
		Hold("hold", 2500*time.Millisecond).
		Hold("fade-out", 600*time.Millisecond).
		MustBuild()
}

func chatTyping() Script {
	return NewScript("chat-typing", "Prototype assistant answers a user").
		Type("typing", "Which of last week's claims need a human review?", charTick, 300*time.Millisecond).
		Hold("sending", 500*time.Millisecond).
		Hold("thinking", 1200*time.Millisecond).
		Print("answering", TargetResult, []string{
			"3 claims are above the fraud threshold.",
			"2 are missing a signed photo of the damage.",
			"I drafted follow-up emails for all five.",
		}, 600*time.Millisecond, 0).
		Hold("hold", 3000*time.Millisecond).
		Hold("fade-out", 500*time.Millisecond).
		MustBuild()
}

func reportReveal() Script {
	return NewScript("report-reveal", "Weekly gains report").
		Type("typing", "Summarise this week's automations", charTick, 300*time.Millisecond).
		Hold("sending", 500*time.Millisecond).
		Print("terminal-running", TargetTerminal, []string{
			"collecting run logs from 4 workflows",
			"estimating time saved per run",
		}, lineTick, 300*time.Millisecond).
		Hold("result-reveal", 300*time.Millisecond).
		Print("result-build", TargetResult, []string{
			"Invoice matching: 6.5 hours saved",
			"Lead enrichment: 3 hours saved",
			"Support triage: 41 tickets auto-routed",
			"Total: 1.2% of team capacity returned",
		}, 450*time.Millisecond, 0).
		Hold("hold", 3000*time.Millisecond).
		Hold("fade-out", 600*time.Millisecond).
		MustBuild()
}
