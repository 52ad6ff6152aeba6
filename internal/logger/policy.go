package logger

import "sync"

// targets names the sinks an entry is routed to.
type targets struct {
	console bool
	file    bool
}

func (t targets) empty() bool { return !t.console && !t.file }

// policy holds the per-sink thresholds and the disabled-level set. Producers
// may change thresholds at runtime, so reads take a shared lock. Resolution
// is pure: the same entry against the same state always yields the same
// targets.
type policy struct {
	mu       sync.RWMutex
	console  Level
	file     Level
	disabled map[Level]struct{}
}

func newPolicy(console, file Level, disabled []Level) *policy {
	p := &policy{
		console:  console,
		file:     file,
		disabled: make(map[Level]struct{}, len(disabled)),
	}
	for _, lvl := range disabled {
		if lvl != LevelForce {
			p.disabled[lvl] = struct{}{}
		}
	}
	return p
}

// targetsFor resolves the sinks an entry should reach. Force bypasses both
// thresholds and the disabled set; every other level must clear its sink's
// threshold and stay off the deny-list.
func (p *policy) targetsFor(e Entry) targets {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if e.Level == LevelNone {
		return targets{}
	}
	if _, off := p.disabled[e.Level]; off && e.Level != LevelForce {
		return targets{}
	}

	var t targets
	if e.Print && p.console != LevelNone && (e.Level == LevelForce || e.Level >= p.console) {
		t.console = true
	}
	if e.WriteToFile && p.file != LevelNone && (e.Level == LevelForce || e.Level >= p.file) {
		t.file = true
	}
	return t
}

func (p *policy) setConsoleLevel(lvl Level) {
	p.mu.Lock()
	p.console = lvl
	p.mu.Unlock()
}

func (p *policy) setFileLevel(lvl Level) {
	p.mu.Lock()
	p.file = lvl
	p.mu.Unlock()
}

func (p *policy) consoleLevel() Level {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.console
}

func (p *policy) fileLevel() Level {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.file
}

func (p *policy) disableLevel(lvl Level) {
	if lvl == LevelForce {
		return
	}
	p.mu.Lock()
	p.disabled[lvl] = struct{}{}
	p.mu.Unlock()
}

func (p *policy) enableLevel(lvl Level) {
	p.mu.Lock()
	delete(p.disabled, lvl)
	p.mu.Unlock()
}
